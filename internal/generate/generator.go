// Package generate orchestrates plan generation: one completion for the plan,
// one per exercise for instructions, plus best-effort video lookups.
package generate

import (
	"context"
	"time"

	"go.uber.org/zap"

	"chiseled/internal/llm"
	"chiseled/internal/plan"
	"chiseled/internal/profile"
	"chiseled/internal/video"
)

// VideoFinder resolves an exercise name to a tutorial link.
type VideoFinder interface {
	Find(ctx context.Context, name string) video.Link
}

// Result is a finished generation: the stamped record and its segment view.
type Result struct {
	Record   profile.AnswerRecord
	Segments []plan.Segment
	// Fallback is set when the plan completion failed and Record carries
	// the substitute text instead of a generated plan.
	Fallback bool
}

// Generator produces workout plans from finalized answers.
type Generator struct {
	client  llm.Client
	videos  VideoFinder
	prompts *PromptSet
	logger  *zap.Logger
	now     func() time.Time
}

// NewGenerator wires a Generator. videos may be nil to skip video lookups;
// prompts nil means the built-in set.
func NewGenerator(client llm.Client, videos VideoFinder, prompts *PromptSet, logger *zap.Logger) *Generator {
	if prompts == nil {
		prompts = DefaultPrompts()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{
		client:  client,
		videos:  videos,
		prompts: prompts,
		logger:  logger,
		now:     time.Now,
	}
}

// Generate runs the full pipeline for rec. A failed plan completion yields a
// fallback result, not an error; only prompt rendering can fail outright.
func (g *Generator) Generate(ctx context.Context, rec profile.AnswerRecord) (*Result, error) {
	prompt, err := g.prompts.PlanPrompt(rec)
	if err != nil {
		return nil, err
	}

	g.logger.Info("generating workout plan", zap.String("model", g.client.Model()))
	planText, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.logger.Error("plan generation failed", zap.Error(err))
		rec.Stamp(plan.FallbackText(rec, err), nil, g.now())
		return &Result{
			Record:   rec,
			Segments: plan.Scan(rec.PlanText),
			Fallback: true,
		}, nil
	}

	segs := plan.Scan(planText)
	names := plan.ExerciseNames(segs)
	g.logger.Info("plan generated", zap.Int("exercises", len(names)))

	rec.Stamp(planText, g.resolveInstructions(ctx, names), g.now())
	rec.Videos = g.resolveVideos(ctx, names)

	return &Result{Record: rec, Segments: segs}, nil
}

// resolveInstructions fetches instruction text for each exercise in turn.
// A failed or empty completion falls back per exercise; one bad lookup never
// poisons the rest.
func (g *Generator) resolveInstructions(ctx context.Context, names []string) map[string]string {
	if len(names) == 0 {
		return nil
	}
	out := make(map[string]string, len(names))
	for _, name := range names {
		out[name] = g.instructionFor(ctx, name)
	}
	return out
}

func (g *Generator) instructionFor(ctx context.Context, name string) string {
	prompt, err := g.prompts.InstructionPrompt(name)
	if err != nil {
		g.logger.Error("instruction prompt failed", zap.String("exercise", name), zap.Error(err))
		return plan.InstructionFallback
	}
	text, err := g.client.Complete(ctx, prompt)
	if err != nil {
		g.logger.Warn("instruction generation failed", zap.String("exercise", name), zap.Error(err))
		return plan.InstructionFallback
	}
	return text
}

func (g *Generator) resolveVideos(ctx context.Context, names []string) map[string]string {
	if g.videos == nil || len(names) == 0 {
		return nil
	}
	out := make(map[string]string, len(names))
	for _, name := range names {
		out[name] = g.videos.Find(ctx, name).URL
	}
	return out
}
