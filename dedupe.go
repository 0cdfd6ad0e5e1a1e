package pdf2md

import (
	"math"

	"github.com/nicholasgasior/pdf2md-go/internal/pdfdoc"
)

// glyphKey identifies one rendered artifact. Glyphs sharing a key are
// duplicates of the same character, typically produced by outline or shadow
// effects that paint the glyph more than once at the same spot.
type glyphKey struct {
	x0   float64
	top  float64
	text string
}

// dedupePage returns a view of the page containing one glyph per distinct
// (rounded x0, rounded top, text) key, preserving the order of first
// occurrences. Identical characters at different positions are untouched;
// only the positional key defines a duplicate. When nothing is removed the
// input view is returned unchanged.
func dedupePage(p *pdfdoc.Page, tolerance float64) *pdfdoc.Page {
	glyphs := p.Glyphs()
	if len(glyphs) == 0 {
		return p
	}
	if tolerance <= 0 {
		tolerance = DefaultDedupeTolerance
	}

	seen := make(map[glyphKey]struct{}, len(glyphs))
	kept := make([]pdfdoc.Glyph, 0, len(glyphs))
	for _, g := range glyphs {
		key := glyphKey{
			x0:   roundTo(g.X0, tolerance),
			top:  roundTo(g.Top, tolerance),
			text: g.Text,
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, g)
	}

	if len(kept) == len(glyphs) {
		return p
	}
	return p.WithGlyphs(kept)
}

// roundTo rounds v to the nearest multiple of step.
func roundTo(v, step float64) float64 {
	return math.Round(v/step) * step
}
