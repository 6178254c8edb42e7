package plan

import (
	"strings"

	"chiseled/internal/profile"
)

// FallbackText builds the fixed substitute plan shown when generation fails
// or returns empty: the user's answers plus a visible, non-fatal error
// notice. Retry is manual via the Refresh action.
func FallbackText(rec profile.AnswerRecord, genErr error) string {
	var b strings.Builder
	b.WriteString("# YOUR PERSONALIZED WORKOUT PLAN\n\n")
	b.WriteString("Workout Focus: " + rec.Focus + "\n")
	if len(rec.MuscleGroups) > 0 {
		b.WriteString("Targeted Muscles: " + strings.Join(rec.MuscleGroups, ", ") + "\n")
	}
	b.WriteString("Goal: " + rec.Goal + "\n")
	b.WriteString("Experience Level: " + rec.Experience + "\n")
	b.WriteString("Equipment: " + strings.Join(rec.Equipment, ", ") + "\n")
	b.WriteString("Duration: " + rec.Duration + "\n")
	b.WriteString("Location: " + rec.Location + "\n")
	if rec.Injuries != "" {
		b.WriteString("Injuries/Restrictions: " + rec.Injuries + "\n")
	}
	b.WriteString("Workout Style: " + rec.Style + "\n\n")
	b.WriteString("Note: We encountered an error while generating your workout plan. " +
		"Please try again later or contact support if the issue persists.\n")
	if genErr != nil {
		b.WriteString("Error details: " + genErr.Error() + "\n")
	}
	return b.String()
}

// Fallback is FallbackText pre-scanned into segments.
func Fallback(rec profile.AnswerRecord, genErr error) []Segment {
	return Scan(FallbackText(rec, genErr))
}
