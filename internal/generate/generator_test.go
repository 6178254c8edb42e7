package generate

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"chiseled/internal/plan"
	"chiseled/internal/profile"
	"chiseled/internal/video"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m, goleak.IgnoreTopFunction("go.opencensus.io/stats/view.(*worker).start"))
}

type fakeClient struct {
	planText string
	planErr  error
	// failFor marks exercise names whose instruction completion fails.
	failFor map[string]bool
	calls   []string
}

func (f *fakeClient) Model() string { return "fake-model" }

func (f *fakeClient) Complete(_ context.Context, prompt string) (string, error) {
	f.calls = append(f.calls, prompt)
	if strings.HasPrefix(prompt, "Provide detailed instructions for the exercise: ") {
		name := strings.SplitN(strings.TrimPrefix(prompt, "Provide detailed instructions for the exercise: "), "\n", 2)[0]
		if f.failFor[name] {
			return "", errors.New("instruction lookup failed")
		}
		return "1. Starting Position\nStand tall.", nil
	}
	return f.planText, f.planErr
}

type fakeVideos struct{}

func (fakeVideos) Find(_ context.Context, name string) video.Link {
	return video.Link{URL: "https://www.youtube.com/watch?v=" + name, Source: "YouTube"}
}

func testRecord() profile.AnswerRecord {
	return profile.Finalize(profile.RawAnswers{})
}

func TestGenerateStampsRecord(t *testing.T) {
	client := &fakeClient{planText: "# Plan\n## Day 1\n[Pushups] - 3x10\n[Squats] - 3x12"}
	g := NewGenerator(client, fakeVideos{}, nil, zap.NewNop())
	g.now = func() time.Time { return time.Date(2025, time.March, 9, 14, 5, 0, 0, time.UTC) }

	res, err := g.Generate(context.Background(), testRecord())
	require.NoError(t, err)
	require.False(t, res.Fallback)

	assert.Equal(t, client.planText, res.Record.PlanText)
	assert.Equal(t, "March 9, 2025 | 2:05pm", res.Record.Timestamp)
	assert.Equal(t, []string{"Pushups", "Squats"}, plan.ExerciseNames(res.Segments))
	assert.Len(t, res.Record.Instructions, 2)
	assert.Equal(t, "https://www.youtube.com/watch?v=Pushups", res.Record.Videos["Pushups"])
}

func TestGenerateIsolatesInstructionFailures(t *testing.T) {
	client := &fakeClient{
		planText: "[A]\n[B]\n[C]",
		failFor:  map[string]bool{"B": true},
	}
	g := NewGenerator(client, nil, nil, zap.NewNop())

	res, err := g.Generate(context.Background(), testRecord())
	require.NoError(t, err)

	require.Len(t, res.Record.Instructions, 3)
	assert.Equal(t, plan.InstructionFallback, res.Record.Instructions["B"])
	assert.NotEqual(t, plan.InstructionFallback, res.Record.Instructions["A"])
	assert.NotEqual(t, plan.InstructionFallback, res.Record.Instructions["C"])
	assert.Nil(t, res.Record.Videos)
}

func TestGenerateFallsBackOnPlanFailure(t *testing.T) {
	client := &fakeClient{planErr: errors.New("quota exceeded")}
	g := NewGenerator(client, fakeVideos{}, nil, zap.NewNop())

	res, err := g.Generate(context.Background(), testRecord())
	require.NoError(t, err)
	require.True(t, res.Fallback)

	assert.Contains(t, res.Record.PlanText, "YOUR PERSONALIZED WORKOUT PLAN")
	assert.Contains(t, res.Record.PlanText, "quota exceeded")
	assert.Empty(t, res.Record.Instructions)
	// Only the single plan attempt; no instruction or video calls.
	assert.Len(t, client.calls, 1)
}

func TestPlanPromptIncludesAnswers(t *testing.T) {
	rec := profile.Finalize(profile.RawAnswers{
		Focus:        profile.FocusTargetMuscles,
		MuscleGroups: []string{"Chest", "Back"},
		InjuryFlag:   "Yes",
		InjuryNote:   "sore wrist",
	})

	prompt, err := DefaultPrompts().PlanPrompt(rec)
	require.NoError(t, err)

	assert.Contains(t, prompt, "Workout Focus: Target muscle group")
	assert.Contains(t, prompt, "Targeted Muscles: Chest, Back")
	assert.Contains(t, prompt, "Injuries/Restrictions: sore wrist")
	assert.Contains(t, prompt, "[brackets]")
}

func TestPlanPromptOmitsEmptyOptionalLines(t *testing.T) {
	prompt, err := DefaultPrompts().PlanPrompt(testRecord())
	require.NoError(t, err)

	assert.NotContains(t, prompt, "Targeted Muscles")
	assert.NotContains(t, prompt, "Injuries/Restrictions")
}

func TestLoadPromptsMissingFileUsesDefaults(t *testing.T) {
	set, err := LoadPrompts(filepath.Join(t.TempDir(), "prompts.yaml"))
	require.NoError(t, err)

	prompt, err := set.InstructionPrompt("Pushups")
	require.NoError(t, err)
	assert.Contains(t, prompt, "Provide detailed instructions for the exercise: Pushups")
}

func TestLoadPromptsOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prompts.yaml")
	require.NoError(t, os.WriteFile(path, []byte("instruction: \"How do I do {{.Name}}?\"\n"), 0o644))

	set, err := LoadPrompts(path)
	require.NoError(t, err)

	prompt, err := set.InstructionPrompt("Lunges")
	require.NoError(t, err)
	assert.Equal(t, "How do I do Lunges?", prompt)

	// Plan template keeps its default when not overridden.
	planPrompt, err := set.PlanPrompt(testRecord())
	require.NoError(t, err)
	assert.Contains(t, planPrompt, "Formatting Guidelines")
}
