package pdf2md

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// sanitizeCell collapses all whitespace runs (including newlines) in a cell
// to single spaces and normalizes the text to NFC. A missing cell renders as
// the empty string.
func sanitizeCell(cell string) string {
	return strings.Join(strings.Fields(norm.NFC.String(cell)), " ")
}

// tableToMarkdown renders a cell grid as a Markdown table. The first row is
// the header; a separator row with one |:--: per column follows it. A table
// with zero rows renders as the empty string.
func tableToMarkdown(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows)+1)
	for i, row := range rows {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = sanitizeCell(cell)
		}
		lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
		if i == 0 {
			lines = append(lines, strings.Repeat("|:--:", len(row))+"|")
		}
	}
	return strings.Join(lines, "\n")
}

// renderBlocks serializes content blocks, already in reading order, to
// Markdown. Text lines are emitted as-is; tables that render empty are
// dropped. Parts are joined by a blank line.
func renderBlocks(blocks []ContentBlock) string {
	var parts []string
	for _, b := range blocks {
		switch blk := b.(type) {
		case TextBlock:
			parts = append(parts, blk.Text)
		case TableBlock:
			if md := tableToMarkdown(blk.Rows); md != "" {
				parts = append(parts, md)
			}
		}
	}
	return strings.Join(parts, "\n\n")
}
