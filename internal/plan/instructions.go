package plan

import (
	"regexp"
	"strings"
)

// InstructionFallback replaces instruction text for an exercise whose
// lookup failed. Failures are isolated per exercise.
const InstructionFallback = "Instructions not available."

var numberedHeading = regexp.MustCompile(`^[1-9]\.\s+`)

// FormatInstructions parses per-exercise instruction text with a looser
// grammar than Scan: markdown decoration is stripped, numbered "N. Title"
// lines become headers, non-empty lines under a heading become bullets, and
// ungrouped lines before the first heading stay plain text.
func FormatInstructions(raw string) []Segment {
	var segs []Segment
	sawHeading := false
	for _, line := range strings.Split(raw, "\n") {
		line = stripDecoration(line)
		if line == "" {
			if len(segs) > 0 && segs[len(segs)-1].Kind != KindBreak {
				segs = append(segs, Break())
			}
			continue
		}

		switch {
		case numberedHeading.MatchString(line):
			sawHeading = true
			segs = append(segs, Header(line))
		case sawHeading:
			segs = append(segs, Bullet(line))
		default:
			segs = append(segs, Text(line))
		}
	}
	return segs
}

func stripDecoration(line string) string {
	for _, mark := range []string{"***", "**", "*", "###", "##", "#"} {
		line = strings.ReplaceAll(line, mark, "")
	}
	return strings.TrimSpace(line)
}
