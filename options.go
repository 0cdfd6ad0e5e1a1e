package pdf2md

import (
	"fmt"
	"io"
	"os"
)

// OutputMode selects how a converted document is written to disk.
type OutputMode string

const (
	// OutputPerPage writes one Markdown file per page.
	OutputPerPage OutputMode = "per_page"
	// OutputSingle writes the whole document to one combined file.
	OutputSingle OutputMode = "single"
)

// Strategy selects how the table detector infers cell boundaries.
type Strategy string

const (
	// StrategyLines infers boundaries from drawn ruling lines.
	StrategyLines Strategy = "lines"
	// StrategyText infers boundaries from text alignment.
	StrategyText Strategy = "text"
)

// ParseStrategy validates a strategy name from user input.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyLines, StrategyText:
		return Strategy(s), nil
	}
	return "", fmt.Errorf("unknown table strategy %q (want %q or %q)", s, StrategyLines, StrategyText)
}

// Defaults for the tunable constants. Both values are empirically chosen, so
// they stay configurable rather than hard-coded.
const (
	// DefaultDedupeTolerance is the positional rounding step, in points,
	// under which two identical glyphs count as the same artifact.
	DefaultDedupeTolerance = 0.1
	// DefaultImageResolution is the export resolution for extracted images,
	// in dots per inch.
	DefaultImageResolution = 150.0
	// DefaultPageSeparator joins pages in combined output.
	DefaultPageSeparator = "\n---\n"
)

// ConvertOptions holds the configuration for one conversion run.
type ConvertOptions struct {
	OutputMode      OutputMode
	Strategy        Strategy
	PageSeparator   string
	ExtractImages   bool
	OutputDir       string // image destination, required when ExtractImages is set
	DedupeTolerance float64
	ImageResolution float64
	LogWriter       io.Writer // destination for warning diagnostics
}

func defaultConvertOptions() ConvertOptions {
	return ConvertOptions{
		OutputMode:      OutputPerPage,
		Strategy:        StrategyText,
		PageSeparator:   DefaultPageSeparator,
		DedupeTolerance: DefaultDedupeTolerance,
		ImageResolution: DefaultImageResolution,
		LogWriter:       os.Stderr,
	}
}

// Option configures a Converter.
type Option func(*Converter)

// WithOutputMode selects per-page or combined output.
func WithOutputMode(mode OutputMode) Option {
	return func(c *Converter) {
		c.opts.OutputMode = mode
	}
}

// WithStrategy selects the table-detection horizontal strategy.
func WithStrategy(s Strategy) Option {
	return func(c *Converter) {
		c.opts.Strategy = s
	}
}

// WithPageSeparator sets the string joining pages in combined output.
func WithPageSeparator(sep string) Option {
	return func(c *Converter) {
		c.opts.PageSeparator = sep
	}
}

// WithImageExtraction enables image export into an images/ subdirectory of
// outputDir.
func WithImageExtraction(outputDir string) Option {
	return func(c *Converter) {
		c.opts.ExtractImages = true
		c.opts.OutputDir = outputDir
	}
}

// WithDedupeTolerance overrides the glyph position rounding step.
func WithDedupeTolerance(tolerance float64) Option {
	return func(c *Converter) {
		if tolerance > 0 {
			c.opts.DedupeTolerance = tolerance
		}
	}
}

// WithImageResolution overrides the image export resolution in DPI.
func WithImageResolution(dpi float64) Option {
	return func(c *Converter) {
		if dpi > 0 {
			c.opts.ImageResolution = dpi
		}
	}
}

// WithLogWriter redirects warning diagnostics (default: stderr).
func WithLogWriter(w io.Writer) Option {
	return func(c *Converter) {
		if w != nil {
			c.opts.LogWriter = w
		}
	}
}
