package pdf2md

import (
	"sort"

	"github.com/nicholasgasior/pdf2md-go/internal/pdfdoc"
)

// ContentBlock is one unit of page content: a line of text or a table,
// tagged with its vertical offset for reading-order assembly.
type ContentBlock interface {
	// Top is the block's vertical offset from the top of the page.
	Top() float64
}

// TextBlock is a single extracted line of flowing text.
type TextBlock struct {
	Offset float64
	Text   string
}

func (b TextBlock) Top() float64 { return b.Offset }

// TableBlock is a detected table with its extracted cell grid.
type TableBlock struct {
	Offset float64
	Rows   [][]string
}

func (b TableBlock) Top() float64 { return b.Offset }

// warnFunc reports a non-fatal extraction degradation.
type warnFunc func(op string, err error)

// extractContents produces the page's content blocks in reading order:
// deduplicate glyphs, detect tables, extract flowing text from the
// non-table remainder, then merge everything sorted by vertical offset.
// Every failure degrades to an empty contribution and a warning; none
// aborts the page.
func extractContents(page *pdfdoc.Page, opts ConvertOptions, warn warnFunc) []ContentBlock {
	page = dedupePage(page, opts.DedupeTolerance)

	tables, err := page.FindTables(pdfdoc.HorizontalStrategy(opts.Strategy))
	if err != nil {
		warn("table extraction failed", err)
		tables = nil
	}

	// Subtract each table region so its cells never reappear as text.
	// A region that can no longer be subtracted is skipped, not fatal.
	remainder := page
	for _, t := range tables {
		reduced, err := remainder.OutsideBBox(t.BBox())
		if err != nil {
			continue
		}
		remainder = reduced
	}

	var blocks []ContentBlock

	lines, err := remainder.TextLines()
	if err != nil {
		warn("text extraction failed", err)
	} else {
		for _, ln := range lines {
			blocks = append(blocks, TextBlock{Offset: ln.Top, Text: ln.Text})
		}
	}

	for _, t := range tables {
		rows, err := t.Extract()
		if err != nil {
			warn("table cell extraction failed", err)
			continue
		}
		blocks = append(blocks, TableBlock{Offset: t.BBox().Top, Rows: rows})
	}

	// Stable: ties keep text-line order, then table discovery order.
	sort.SliceStable(blocks, func(i, j int) bool {
		return blocks[i].Top() < blocks[j].Top()
	})

	return blocks
}
