// Package plan turns raw generated plan text into typed display segments
// and formats per-exercise instruction text.
package plan

// Kind classifies a display segment.
type Kind int

const (
	// KindText is unstyled running text.
	KindText Kind = iota
	// KindHeader is a top-level `#` heading.
	KindHeader
	// KindSubheader is a `##` heading.
	KindSubheader
	// KindBullet is a `-` list item, dash stripped.
	KindBullet
	// KindExerciseLink is a clickable exercise name; Content is the name.
	KindExerciseLink
	// KindBreak is a blank line.
	KindBreak
)

// Segment is one classified unit of the rendered plan.
//
// Inline marks a segment that continues the current display line rather than
// starting a new one; it is set on the pieces that follow the first segment
// of a bracket line (text around exercise names, and subsequent names).
type Segment struct {
	Kind    Kind
	Content string
	Inline  bool
}

// Header builds a header segment.
func Header(s string) Segment { return Segment{Kind: KindHeader, Content: s} }

// Subheader builds a subheader segment.
func Subheader(s string) Segment { return Segment{Kind: KindSubheader, Content: s} }

// Bullet builds a bullet segment.
func Bullet(s string) Segment { return Segment{Kind: KindBullet, Content: s} }

// Text builds a plain text segment.
func Text(s string) Segment { return Segment{Kind: KindText, Content: s} }

// Break is the blank-line segment.
func Break() Segment { return Segment{Kind: KindBreak} }

// ExerciseLink builds a link segment for the named exercise.
func ExerciseLink(name string) Segment { return Segment{Kind: KindExerciseLink, Content: name} }

// ExerciseNames returns the distinct exercise names referenced by segs, in
// first-seen order.
func ExerciseNames(segs []Segment) []string {
	seen := make(map[string]bool)
	var names []string
	for _, seg := range segs {
		if seg.Kind != KindExerciseLink || seen[seg.Content] {
			continue
		}
		seen[seg.Content] = true
		names = append(names, seg.Content)
	}
	return names
}
