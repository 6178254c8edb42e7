package plan

import "strings"

// Scan classifies raw plan text into display segments, one pass, line by
// line. Classification priority per line: header, subheader, bracketed
// exercise names, bullet, plain text. Blank lines become Break segments.
// Stray markdown emphasis asterisks are stripped before classification; the
// model emits them despite the formatting instructions.
func Scan(raw string) []Segment {
	var segs []Segment
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			segs = append(segs, Break())
			continue
		}
		line = strings.ReplaceAll(line, "*", "")

		switch {
		case strings.HasPrefix(line, "#") && !strings.HasPrefix(line, "##"):
			segs = append(segs, Header(strings.TrimSpace(strings.TrimLeft(line, "#"))))
		case strings.HasPrefix(line, "##"):
			segs = append(segs, Subheader(strings.TrimSpace(strings.TrimLeft(line, "#"))))
		case hasBracketPair(line):
			segs = append(segs, scanBracketLine(line)...)
		case strings.HasPrefix(line, "-"):
			segs = append(segs, Bullet(strings.TrimSpace(strings.TrimLeft(line, "-"))))
		default:
			segs = append(segs, Text(line))
		}
	}
	return segs
}

func hasBracketPair(line string) bool {
	open := strings.Index(line, "[")
	if open < 0 {
		return false
	}
	return strings.Index(line[open:], "]") > 0
}

// scanBracketLine splits a line containing one or more [Name] tokens into
// interleaved link and text segments. The first segment starts the display
// line; the rest are inline continuations.
func scanBracketLine(line string) []Segment {
	var segs []Segment
	emit := func(seg Segment) {
		seg.Inline = len(segs) > 0
		segs = append(segs, seg)
	}

	rest := line
	for {
		open := strings.Index(rest, "[")
		if open < 0 {
			break
		}
		end := strings.Index(rest[open:], "]")
		if end <= 0 {
			break
		}
		if open > 0 {
			emit(Text(rest[:open]))
		}
		emit(ExerciseLink(rest[open+1 : open+end]))
		rest = rest[open+end+1:]
	}
	if rest != "" {
		emit(Text(rest))
	}
	return segs
}

// RenderText renders segments as plain text, used by the non-interactive
// CLI paths. Bullets get the same "• " marker as the TUI.
func RenderText(segs []Segment) string {
	var b strings.Builder
	for i, seg := range segs {
		if i > 0 && !seg.Inline {
			b.WriteByte('\n')
		}
		switch seg.Kind {
		case KindBreak:
			// The newline above is the blank line.
		case KindBullet:
			b.WriteString("• ")
			b.WriteString(seg.Content)
		default:
			b.WriteString(seg.Content)
		}
	}
	return b.String()
}
