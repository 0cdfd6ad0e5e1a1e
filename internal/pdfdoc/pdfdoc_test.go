package pdfdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func g(text string, x0, top float64) Glyph {
	return Glyph{Text: text, X0: x0, Top: top, Width: 6, Height: 10}
}

func word(text string, x0, top float64) []Glyph {
	glyphs := make([]Glyph, 0, len(text))
	for i, r := range text {
		glyphs = append(glyphs, g(string(r), x0+float64(i)*6, top))
	}
	return glyphs
}

func page(glyphs ...Glyph) *Page {
	return NewPage(1, 612, 792, glyphs)
}

func TestBBox(t *testing.T) {
	b := BBox{X0: 10, Top: 20, X1: 110, Bottom: 70}

	assert.Equal(t, 100.0, b.Width())
	assert.Equal(t, 50.0, b.Height())
	assert.True(t, b.Valid())
	assert.True(t, b.Contains(50, 30))
	assert.False(t, b.Contains(5, 30))
	assert.False(t, b.Contains(50, 80))

	assert.False(t, BBox{X0: 10, Top: 20, X1: 10, Bottom: 70}.Valid())
	assert.False(t, BBox{X0: 10, Top: 70, X1: 110, Bottom: 20}.Valid())
}

func TestWithGlyphsLeavesOriginalIntact(t *testing.T) {
	p := page(g("a", 10, 20), g("b", 16, 20))
	derived := p.WithGlyphs(p.Glyphs()[:1])

	assert.Len(t, derived.Glyphs(), 1)
	assert.Len(t, p.Glyphs(), 2)
	assert.Equal(t, p.Number(), derived.Number())
	assert.Equal(t, p.Width(), derived.Width())
	assert.Equal(t, p.Height(), derived.Height())
}

func TestOutsideBBox(t *testing.T) {
	inside := g("a", 10, 20)  // center (13, 25)
	outside := g("b", 200, 400)
	p := page(inside, outside)

	reduced, err := p.OutsideBBox(BBox{X0: 0, Top: 0, X1: 100, Bottom: 100})
	require.NoError(t, err)
	require.Len(t, reduced.Glyphs(), 1)
	assert.Equal(t, "b", reduced.Glyphs()[0].Text)
}

func TestWithinBBox(t *testing.T) {
	inside := g("a", 10, 20)
	outside := g("b", 200, 400)
	p := page(inside, outside)

	selected, err := p.WithinBBox(BBox{X0: 0, Top: 0, X1: 100, Bottom: 100})
	require.NoError(t, err)
	require.Len(t, selected.Glyphs(), 1)
	assert.Equal(t, "a", selected.Glyphs()[0].Text)
}

func TestRegionFiltersRejectDegenerateBBox(t *testing.T) {
	p := page(g("a", 10, 20))

	_, err := p.OutsideBBox(BBox{X0: 50, Top: 50, X1: 50, Bottom: 60})
	assert.Error(t, err)

	_, err = p.WithinBBox(BBox{X0: 50, Top: 60, X1: 100, Bottom: 60})
	assert.Error(t, err)
}

func TestTextLinesGroupsByVerticalProximity(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("ab", 10, 10.0)...)
	glyphs = append(glyphs, word("cd", 30, 11.5)...) // same line, within tolerance
	glyphs = append(glyphs, word("ef", 10, 40.0)...) // separate line

	lines, err := page(glyphs...).TextLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, 10.0, lines[0].Top)
	assert.Equal(t, 40.0, lines[1].Top)
}

func TestTextLinesOrderedTopToBottom(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("low", 10, 500)...)
	glyphs = append(glyphs, word("high", 10, 50)...)

	lines, err := page(glyphs...).TextLines()
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "high", lines[0].Text)
	assert.Equal(t, "low", lines[1].Text)
}

func TestTextLinesInsertsWordSpacing(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("Hello", 10, 10)...) // ends at x=40
	glyphs = append(glyphs, word("World", 50, 10)...) // 10pt gap

	lines, err := page(glyphs...).TextLines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Hello World", lines[0].Text)
}

func TestTextLinesJoinsAdjacentGlyphs(t *testing.T) {
	var glyphs []Glyph
	glyphs = append(glyphs, word("He", 10, 10)...) // ends at x=22
	glyphs = append(glyphs, word("llo", 22, 10)...)

	lines, err := page(glyphs...).TextLines()
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Hello", lines[0].Text)
}

func TestTextLinesSkipsBlankGlyphs(t *testing.T) {
	lines, err := page(g(" ", 10, 10), g("\t", 16, 10)).TextLines()
	require.NoError(t, err)
	assert.Empty(t, lines)
}

func TestFindTablesEmptyPage(t *testing.T) {
	tables, err := page().FindTables(StrategyText)
	require.NoError(t, err)
	assert.Empty(t, tables)
}

func TestFindTablesUnknownStrategy(t *testing.T) {
	_, err := page(g("a", 10, 20)).FindTables(HorizontalStrategy("magic"))
	assert.Error(t, err)
}

func TestFindTablesRunsOnProse(t *testing.T) {
	// Plain flowing text must not error; whether the detector finds
	// anything is its own business, but prose should not look tabular.
	var glyphs []Glyph
	glyphs = append(glyphs, word("some", 10, 10)...)
	glyphs = append(glyphs, word("text", 44, 10)...)

	for _, strategy := range []HorizontalStrategy{StrategyLines, StrategyText} {
		tables, err := page(glyphs...).FindTables(strategy)
		require.NoError(t, err)
		assert.Empty(t, tables)
	}
}

func TestTableExtractWithoutBacking(t *testing.T) {
	tb := &Table{bbox: BBox{X0: 0, Top: 0, X1: 10, Bottom: 10}}
	_, err := tb.Extract()
	assert.Error(t, err)
}

func TestSyntheticPageHasNoImages(t *testing.T) {
	images, err := page(g("a", 10, 20)).Images()
	require.NoError(t, err)
	assert.Empty(t, images)
}
