// Copyright 2026 Conductor OSS
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.

// Package pdf2md converts PDF documents to Markdown. It extracts paragraphs
// and tables in reading order, suppresses duplicate glyph artifacts, and
// optionally exports page images. The heavy lifting (PDF parsing, glyph
// positioning, table geometry) is delegated to the PDF-processing library
// behind internal/pdfdoc.
package pdf2md

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/nicholasgasior/pdf2md-go/internal/pdfdoc"
)

// Converter is the PDF-to-Markdown conversion engine. A Converter is
// stateless across runs and may be reused.
type Converter struct {
	opts ConvertOptions
}

// New creates a Converter with the given options.
func New(opts ...Option) *Converter {
	c := &Converter{opts: defaultConvertOptions()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Options returns a copy of the converter's effective options.
func (c *Converter) Options() ConvertOptions { return c.opts }

// ConvertFile converts the PDF at path and returns the per-page results.
// The input must exist and be a PDF; anything else is an error. Extraction
// degradations on individual pages do not fail the run; they are recorded as
// warnings on the result.
func (c *Converter) ConvertFile(path string) (*DocumentResult, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".pdf" {
		return nil, &UnsupportedInputError{Path: path, Extension: ext}
	}
	if mt, err := mimetype.DetectFile(path); err == nil && !mt.Is("application/pdf") {
		return nil, &UnsupportedInputError{Path: path, Extension: ext, MIMEType: mt.String()}
	}

	doc, err := pdfdoc.Open(path)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	result := &DocumentResult{
		SourceName: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
	}

	for n := 1; n <= doc.PageCount(); n++ {
		result.Pages = append(result.Pages, c.convertPage(doc, n, result))
	}

	return result, nil
}

// convertPage converts a single page, degrading to an empty page on load
// failure.
func (c *Converter) convertPage(doc *pdfdoc.Document, n int, result *DocumentResult) PageResult {
	warn := func(op string, err error) {
		w := Warning{Page: n, Op: op, Err: err}
		result.Warnings = append(result.Warnings, w)
		if c.opts.LogWriter != nil {
			fmt.Fprintf(c.opts.LogWriter, "Warning: %s\n", w)
		}
	}

	page, err := doc.Page(n)
	if err != nil {
		warn("page load failed", err)
		return PageResult{PageNumber: n}
	}

	blocks := extractContents(page, c.opts, warn)
	markdown := renderBlocks(blocks)

	var tables [][][]string
	for _, b := range blocks {
		if tb, ok := b.(TableBlock); ok && len(tb.Rows) > 0 {
			tables = append(tables, tb.Rows)
		}
	}

	var images []string
	if c.opts.ExtractImages && c.opts.OutputDir != "" {
		images = exportPageImages(page, result.SourceName, c.opts.OutputDir, c.opts.ImageResolution, warn)
		if len(images) > 0 {
			markdown += "\n\n" + strings.Join(imageRefs(images), "\n\n")
		}
	}

	return PageResult{
		PageNumber: n,
		Markdown:   normalizeOutput(markdown),
		Images:     images,
		Tables:     tables,
	}
}
