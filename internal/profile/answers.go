package profile

import (
	"strings"
	"time"
)

// Answer defaults substituted at finalization time for blank inputs.
const (
	DefaultFocus      = FocusFullBody
	DefaultGoal       = "General fitness"
	DefaultExperience = "Beginner"
	DefaultEquipment  = "Bodyweight only"
	DefaultDuration   = "60 minutes"
	DefaultLocation   = "Home"
	DefaultStyle      = "Traditional sets"
)

// TimestampLayout matches the saved-plan timestamp format, with AM/PM
// lowercased after formatting.
const TimestampLayout = "January 2, 2006 | 3:04PM"

// RawAnswers collects the wizard's unvalidated inputs before finalization.
type RawAnswers struct {
	Focus          string
	MuscleGroups   []string
	Goal           string
	Experience     string
	Equipment      []string
	EquipmentOther string
	Duration       string
	Location       string
	InjuryFlag     string // "Yes" or "No"
	InjuryNote     string
	Style          string
}

// AnswerRecord is the finalized answer set. The JSON field names are the
// historical on-disk keys; saved plans from earlier releases load unchanged.
// After generation the record is stamped with the plan text, a timestamp,
// and the per-exercise maps; it is otherwise immutable.
type AnswerRecord struct {
	Focus        string   `json:"Workout Focus"`
	MuscleGroups []string `json:"Muscle Groups"`
	Goal         string   `json:"Goal"`
	Experience   string   `json:"Experience"`
	Equipment    []string `json:"Equipment"`
	Duration     string   `json:"Duration"`
	Location     string   `json:"Location"`
	Injuries     string   `json:"Injuries,omitempty"`
	Style        string   `json:"Workout Style"`

	PlanText     string            `json:"plan_text,omitempty"`
	Timestamp    string            `json:"timestamp,omitempty"`
	Instructions map[string]string `json:"exercise_instructions,omitempty"`
	Videos       map[string]string `json:"exercise_videos,omitempty"`
}

// Generated reports whether the record already carries a generated plan.
func (r *AnswerRecord) Generated() bool {
	return r != nil && r.PlanText != "" && r.Timestamp != ""
}

// Stamp records the generated plan text and instruction map along with the
// generation time.
func (r *AnswerRecord) Stamp(planText string, instructions map[string]string, now time.Time) {
	r.PlanText = planText
	r.Instructions = instructions
	r.Timestamp = FormatTimestamp(now)
}

// FormatTimestamp renders t in the saved-plan timestamp format.
func FormatTimestamp(t time.Time) string {
	s := t.Format(TimestampLayout)
	s = strings.ReplaceAll(s, "AM", "am")
	return strings.ReplaceAll(s, "PM", "pm")
}

// Finalize turns raw wizard inputs into a complete AnswerRecord. Every field
// is guaranteed present: blank answers receive their documented default.
// Muscle groups are kept only on the targeted-muscle path. An equipment
// selection of "Other" is merged with its free-text description, or dropped
// when the description is empty.
func Finalize(raw RawAnswers) AnswerRecord {
	rec := AnswerRecord{
		Focus:      defaultIfBlank(raw.Focus, DefaultFocus),
		Goal:       defaultIfBlank(raw.Goal, DefaultGoal),
		Experience: defaultIfBlank(raw.Experience, DefaultExperience),
		Duration:   defaultIfBlank(raw.Duration, DefaultDuration),
		Location:   defaultIfBlank(raw.Location, DefaultLocation),
		Style:      defaultIfBlank(raw.Style, DefaultStyle),
	}

	if raw.Focus == FocusTargetMuscles {
		rec.MuscleGroups = append([]string(nil), raw.MuscleGroups...)
	}

	rec.Equipment = mergeEquipment(raw.Equipment, raw.EquipmentOther)
	if len(rec.Equipment) == 0 {
		rec.Equipment = []string{DefaultEquipment}
	}

	if raw.InjuryFlag == "Yes" {
		rec.Injuries = strings.TrimSpace(raw.InjuryNote)
	}

	return rec
}

func mergeEquipment(selected []string, other string) []string {
	out := make([]string, 0, len(selected))
	for _, eq := range selected {
		if eq != "Other" {
			out = append(out, eq)
			continue
		}
		if desc := strings.TrimSpace(other); desc != "" {
			out = append(out, "Other: "+desc)
		}
	}
	return out
}

func defaultIfBlank(v, def string) string {
	if strings.TrimSpace(v) == "" {
		return def
	}
	return v
}
