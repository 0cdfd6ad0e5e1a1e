package pdfdoc

import (
	"fmt"

	"github.com/tsawler/tabula/model"
	"github.com/tsawler/tabula/tables"
)

// Table is one detected table region on a page: its bounding box plus the
// ability to extract the cell grid.
type Table struct {
	bbox BBox
	src  *model.Table
}

// BBox returns the table's bounding box in top-based coordinates.
func (t *Table) BBox() BBox { return t.bbox }

// Extract returns the table's cell grid as strings, row-major. Cell text is
// returned raw; sanitization is the renderer's job.
func (t *Table) Extract() ([][]string, error) {
	if t.src == nil {
		return nil, fmt.Errorf("table has no backing detection result")
	}
	rows := make([][]string, 0, len(t.src.Rows))
	for _, row := range t.src.Rows {
		cells := make([]string, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell.Text)
		}
		rows = append(rows, cells)
	}
	return rows, nil
}

// FindTables runs table detection over the view's glyphs. The strategy
// selects whether cell boundaries come from drawn ruling lines or from text
// alignment. Tables are returned in discovery order.
func (p *Page) FindTables(strategy HorizontalStrategy) ([]*Table, error) {
	if len(p.glyphs) == 0 {
		return nil, nil
	}

	mp := model.NewPage(p.width, p.height)
	mp.Number = p.number
	mp.RawText = make([]model.TextFragment, 0, len(p.glyphs))
	for _, g := range p.glyphs {
		mp.RawText = append(mp.RawText, model.TextFragment{
			Text: g.Text,
			BBox: model.BBox{
				X:      g.X0,
				Y:      p.height - g.Top - g.Height,
				Width:  g.Width,
				Height: g.Height,
			},
		})
	}

	cfg := tables.DefaultConfig()
	switch strategy {
	case StrategyLines:
		// Without whitespace evidence the grid must stand on its own.
		cfg.UseWhitespace = false
		cfg.MinConfidence = 0.7
	case StrategyText:
		cfg.UseLines = false
	default:
		return nil, fmt.Errorf("unknown table strategy %q", strategy)
	}

	detector := tables.NewGeometricDetector()
	if err := detector.Configure(cfg); err != nil {
		return nil, fmt.Errorf("configure table detector: %w", err)
	}

	detected, err := detector.Detect(mp)
	if err != nil {
		return nil, fmt.Errorf("detect tables: %w", err)
	}

	out := make([]*Table, 0, len(detected))
	for _, dt := range detected {
		out = append(out, &Table{
			bbox: BBox{
				X0:     dt.BBox.Left(),
				Top:    p.height - dt.BBox.Top(),
				X1:     dt.BBox.Right(),
				Bottom: p.height - dt.BBox.Bottom(),
			},
			src: dt,
		})
	}
	return out, nil
}
