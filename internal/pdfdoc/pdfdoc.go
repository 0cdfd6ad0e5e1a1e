// Package pdfdoc wraps the PDF-processing library behind the small surface
// the conversion pipeline needs: page iteration, positioned glyphs, region
// filtering, text-line building, table detection, and image access.
//
// All coordinates exposed by this package are top-based: Top is the distance
// from the top edge of the page, increasing downward. The underlying PDF
// coordinate system (bottom-up) is converted at the boundary and never leaks
// out.
package pdfdoc

import (
	"fmt"

	"github.com/tsawler/tabula/reader"
)

// Glyph is a single positioned piece of rendered text. X0 and Top identify
// the glyph for deduplication purposes; Width and Height are carried along
// for geometry (line building, table detection).
type Glyph struct {
	Text   string
	X0     float64
	Top    float64
	Width  float64
	Height float64
}

// BBox is an axis-aligned box in top-based page coordinates.
type BBox struct {
	X0     float64
	Top    float64
	X1     float64
	Bottom float64
}

// Width returns the horizontal extent of the box.
func (b BBox) Width() float64 { return b.X1 - b.X0 }

// Height returns the vertical extent of the box.
func (b BBox) Height() float64 { return b.Bottom - b.Top }

// Valid reports whether the box has positive area.
func (b BBox) Valid() bool { return b.X1 > b.X0 && b.Bottom > b.Top }

// Contains reports whether the point (x, top) lies inside the box.
func (b BBox) Contains(x, top float64) bool {
	return x >= b.X0 && x <= b.X1 && top >= b.Top && top <= b.Bottom
}

// HorizontalStrategy selects how the table detector infers cell boundaries.
type HorizontalStrategy string

const (
	// StrategyLines infers boundaries from drawn ruling lines.
	StrategyLines HorizontalStrategy = "lines"
	// StrategyText infers boundaries from text alignment.
	StrategyText HorizontalStrategy = "text"
)

// Document is an open PDF source document.
type Document struct {
	r         *reader.Reader
	pageCount int
}

// Open opens a PDF file for reading. The caller must Close the document.
func Open(path string) (*Document, error) {
	r, err := reader.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open PDF: %w", err)
	}
	n, err := r.PageCount()
	if err != nil {
		r.Close()
		return nil, fmt.Errorf("read page tree: %w", err)
	}
	return &Document{r: r, pageCount: n}, nil
}

// Close releases the underlying file. Safe to call more than once.
func (d *Document) Close() error {
	if d.r == nil {
		return nil
	}
	err := d.r.Close()
	d.r = nil
	return err
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int { return d.pageCount }

// Page loads page n (1-based) with its glyphs.
func (d *Document) Page(n int) (*Page, error) {
	if d.r == nil {
		return nil, fmt.Errorf("document is closed")
	}
	if n < 1 || n > d.pageCount {
		return nil, fmt.Errorf("page %d out of range [1,%d]", n, d.pageCount)
	}

	src, err := d.r.GetPage(n - 1)
	if err != nil {
		return nil, fmt.Errorf("load page %d: %w", n, err)
	}

	width, err := src.Width()
	if err != nil {
		return nil, fmt.Errorf("page %d width: %w", n, err)
	}
	height, err := src.Height()
	if err != nil {
		return nil, fmt.Errorf("page %d height: %w", n, err)
	}

	fragments, err := d.r.ExtractTextFragments(src)
	if err != nil {
		return nil, fmt.Errorf("extract text from page %d: %w", n, err)
	}

	glyphs := make([]Glyph, 0, len(fragments))
	for _, f := range fragments {
		glyphs = append(glyphs, Glyph{
			Text:   f.Text,
			X0:     f.X,
			Top:    height - f.Y - f.Height,
			Width:  f.Width,
			Height: f.Height,
		})
	}

	return &Page{
		number: n,
		width:  width,
		height: height,
		glyphs: glyphs,
		doc:    d,
		src:    src,
	}, nil
}
