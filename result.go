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

package pdf2md

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PageResult holds the conversion output for one page.
type PageResult struct {
	PageNumber int          // 1-based
	Markdown   string       // rendered page content
	Images     []string     // paths of extracted image files, possibly empty
	Tables     [][][]string // extracted cell grids, retained for workbook export
}

// DocumentResult holds the conversion output for a whole document.
type DocumentResult struct {
	SourceName string // base name of the source file, without extension
	Pages      []PageResult
	Warnings   []Warning
}

// CombinedMarkdown joins all pages into one Markdown string. Each page is
// prefixed with a "## Page N" heading and pages are joined by separator.
func (r *DocumentResult) CombinedMarkdown(separator string) string {
	if separator == "" {
		separator = DefaultPageSeparator
	}
	parts := make([]string, 0, len(r.Pages))
	for _, page := range r.Pages {
		parts = append(parts, fmt.Sprintf("## Page %d\n\n%s", page.PageNumber, page.Markdown))
	}
	return strings.Join(parts, separator)
}

// Save writes the conversion result to outputDir according to the
// converter's output mode: one {prefix}.md file in combined mode, or one
// {prefix}_page_{N}.md file per page otherwise. An empty prefix falls back
// to the source file's base name. It returns the paths of the files created.
func (c *Converter) Save(result *DocumentResult, outputDir, prefix string) ([]string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory: %w", err)
	}

	if prefix == "" {
		prefix = result.SourceName
	}

	var created []string

	if c.opts.OutputMode == OutputSingle {
		path := filepath.Join(outputDir, prefix+".md")
		content := result.CombinedMarkdown(c.opts.PageSeparator)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("write %s: %w", path, err)
		}
		return append(created, path), nil
	}

	for _, page := range result.Pages {
		path := filepath.Join(outputDir, fmt.Sprintf("%s_page_%d.md", prefix, page.PageNumber))
		content := fmt.Sprintf("# Page %d\n\n%s", page.PageNumber, page.Markdown)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return created, fmt.Errorf("write %s: %w", path, err)
		}
		created = append(created, path)
	}
	return created, nil
}
