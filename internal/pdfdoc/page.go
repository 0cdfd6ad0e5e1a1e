package pdfdoc

import (
	"fmt"

	"github.com/tsawler/tabula/pages"
)

// Page is a view of a single page: its dimensions plus the glyphs currently
// visible in the view. Filtering methods return derived views sharing the
// same underlying page, mirroring how the PDF library's own page filters
// behave; the source page is never mutated.
type Page struct {
	number int
	width  float64
	height float64
	glyphs []Glyph

	// Backing document and page object, nil for synthetic pages.
	doc *Document
	src *pages.Page
}

// NewPage builds a synthetic page view from raw glyphs. It is the seam used
// by tests and by callers that already hold positioned text.
func NewPage(number int, width, height float64, glyphs []Glyph) *Page {
	return &Page{number: number, width: width, height: height, glyphs: glyphs}
}

// Number returns the 1-based page number.
func (p *Page) Number() int { return p.number }

// Width returns the page width in points.
func (p *Page) Width() float64 { return p.width }

// Height returns the page height in points.
func (p *Page) Height() float64 { return p.height }

// Glyphs returns the glyphs visible in this view, in discovery order.
func (p *Page) Glyphs() []Glyph { return p.glyphs }

// WithGlyphs returns a view of the same page restricted to the given glyph
// subset.
func (p *Page) WithGlyphs(glyphs []Glyph) *Page {
	derived := *p
	derived.glyphs = glyphs
	return &derived
}

// OutsideBBox returns a view containing only glyphs whose center point lies
// outside the given box. An invalid box cannot be subtracted and is an
// error; callers treat that as non-fatal and keep the current view.
func (p *Page) OutsideBBox(b BBox) (*Page, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("cannot subtract degenerate bbox %+v", b)
	}
	kept := make([]Glyph, 0, len(p.glyphs))
	for _, g := range p.glyphs {
		cx := g.X0 + g.Width/2
		cy := g.Top + g.Height/2
		if !b.Contains(cx, cy) {
			kept = append(kept, g)
		}
	}
	return p.WithGlyphs(kept), nil
}

// WithinBBox returns a view containing only glyphs whose center point lies
// inside the given box.
func (p *Page) WithinBBox(b BBox) (*Page, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("cannot select degenerate bbox %+v", b)
	}
	kept := make([]Glyph, 0, len(p.glyphs))
	for _, g := range p.glyphs {
		cx := g.X0 + g.Width/2
		cy := g.Top + g.Height/2
		if b.Contains(cx, cy) {
			kept = append(kept, g)
		}
	}
	return p.WithGlyphs(kept), nil
}
