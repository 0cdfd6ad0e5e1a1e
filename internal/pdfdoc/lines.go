package pdfdoc

import (
	"sort"
	"strings"
)

// TextLine is one assembled line of flowing text with its vertical offset.
type TextLine struct {
	Top  float64
	Text string
}

// lineTolerance is the vertical distance within which glyphs are considered
// part of the same line.
const lineTolerance = 3.0

// TextLines assembles the view's glyphs into lines of text ordered top to
// bottom. Glyphs are grouped by vertical proximity, ordered left to right
// within a line, and separated by spaces where the horizontal gap between
// neighbors exceeds a size-relative threshold.
func (p *Page) TextLines() ([]TextLine, error) {
	type rawLine struct {
		top    float64
		glyphs []Glyph
	}

	var lines []rawLine
	for _, g := range p.glyphs {
		if strings.TrimSpace(g.Text) == "" {
			continue
		}
		placed := false
		for i := range lines {
			if abs(lines[i].top-g.Top) < lineTolerance {
				lines[i].glyphs = append(lines[i].glyphs, g)
				if g.Top < lines[i].top {
					lines[i].top = g.Top
				}
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, rawLine{top: g.Top, glyphs: []Glyph{g}})
		}
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].top < lines[j].top
	})

	out := make([]TextLine, 0, len(lines))
	for _, ln := range lines {
		sort.SliceStable(ln.glyphs, func(i, j int) bool {
			return ln.glyphs[i].X0 < ln.glyphs[j].X0
		})

		var sb strings.Builder
		var lastEnd float64
		for i, g := range ln.glyphs {
			if i > 0 {
				gap := g.X0 - lastEnd
				threshold := g.Height * 0.2
				if threshold < 1.0 {
					threshold = 1.0
				}
				if gap > threshold && !strings.HasSuffix(sb.String(), " ") {
					sb.WriteString(" ")
				}
			}
			sb.WriteString(g.Text)
			lastEnd = g.X0 + g.Width
		}

		text := strings.TrimSpace(sb.String())
		if text == "" {
			continue
		}
		out = append(out, TextLine{Top: ln.top, Text: text})
	}

	return out, nil
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
