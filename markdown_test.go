package pdf2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain", "abc", "abc"},
		{"inner newline", "a\nb", "a b"},
		{"whitespace runs", "  a \t b\n\n c  ", "a b c"},
		{"only whitespace", " \n\t ", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, sanitizeCell(tc.in))
		})
	}
}

func TestTableToMarkdown(t *testing.T) {
	tests := []struct {
		name string
		rows [][]string
		want string
	}{
		{
			name: "two by two",
			rows: [][]string{{"A", "B"}, {"1", "2"}},
			want: "| A | B |\n|:--:|:--:|\n| 1 | 2 |",
		},
		{
			name: "zero rows",
			rows: nil,
			want: "",
		},
		{
			name: "header only",
			rows: [][]string{{"X"}},
			want: "| X |\n|:--:|",
		},
		{
			name: "cells with embedded newlines",
			rows: [][]string{{"a\nb", "c"}, {"d", "e  f"}},
			want: "| a b | c |\n|:--:|:--:|\n| d | e f |",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tableToMarkdown(tc.rows))
		})
	}
}

func TestTableMarkdownRowAndColumnCounts(t *testing.T) {
	rows := [][]string{
		{"h1", "h2", "h3"},
		{"a", "b", "c"},
		{"d", "e", "f"},
	}

	md := tableToMarkdown(rows)
	lines := splitLines(md)

	// R extracted rows render as R+1 Markdown lines (header separator).
	assert.Len(t, lines, len(rows)+1)
	for _, line := range lines {
		assert.Equal(t, countPipes(lines[1]), countPipes(line),
			"every row must have the separator's column count")
	}
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}

func countPipes(s string) int {
	n := 0
	for _, r := range s {
		if r == '|' {
			n++
		}
	}
	return n
}

func TestRenderBlocks(t *testing.T) {
	blocks := []ContentBlock{
		TextBlock{Offset: 10, Text: "Intro line"},
		TableBlock{Offset: 20, Rows: [][]string{{"A"}, {"1"}}},
		TableBlock{Offset: 30, Rows: nil}, // extracts to nothing, dropped
		TextBlock{Offset: 40, Text: "Outro line"},
	}

	got := renderBlocks(blocks)
	want := "Intro line\n\n| A |\n|:--:|\n| 1 |\n\nOutro line"
	assert.Equal(t, want, got)
}

func TestRenderBlocksEmpty(t *testing.T) {
	assert.Equal(t, "", renderBlocks(nil))
}

func TestNormalizeOutput(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"crlf", "a\r\nb", "a\nb"},
		{"trailing spaces", "a  \nb", "a\nb"},
		{"collapse newlines", "a\n\n\n\nb", "a\n\nb"},
		{"trim", "\n\n hello \n\n", "hello"},
		{"empty", "", ""},
		{"control chars", "a\x00b", "ab"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalizeOutput(tc.in))
		})
	}
}
