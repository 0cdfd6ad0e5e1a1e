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

// Package main is the pdf2md command line interface.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	pdf2md "github.com/nicholasgasior/pdf2md-go"
)

// version is set at build time via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "pdf2md [flags] <input.pdf>",
	Short:   "Convert a PDF document to Markdown",
	Version: version,
	Long: `pdf2md converts a PDF document to Markdown. Paragraphs and tables are
extracted in reading order, duplicate glyph artifacts (shadow/outline
effects) are suppressed, and images can optionally be exported alongside
the text.

By default each page is written to its own file; with --single the whole
document goes into one file, pages joined by a separator.`,
	Example: `  # one Markdown file per page (default)
  pdf2md input.pdf -o output/

  # single combined file with a custom name
  pdf2md input.pdf -o output/ --single --name merged

  # extract images as well
  pdf2md input.pdf -o output/ --images`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Flags().StringP("output", "o", "./output", "output directory, created if absent")
	rootCmd.Flags().BoolP("single", "s", false, "write all pages to a single Markdown file")
	rootCmd.Flags().StringP("name", "n", "", "output filename prefix (default: source file's base name)")
	rootCmd.Flags().String("strategy", "text", "table-detection horizontal strategy: lines or text")
	rootCmd.Flags().BoolP("images", "i", false, "extract images into images/ under the output directory")
	rootCmd.Flags().String("tables", "", "also write detected tables to the given .xlsx workbook")
}

// initConfig wires the tunable defaults: a pdf2md.yaml config file and
// PDF2MD_* environment variables may override the page separator, the glyph
// dedup tolerance, and the image export resolution.
func initConfig() {
	viper.SetConfigName("pdf2md")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "pdf2md"))
	}

	viper.SetEnvPrefix("PDF2MD")
	viper.AutomaticEnv()

	viper.SetDefault("page_separator", pdf2md.DefaultPageSeparator)
	viper.SetDefault("dedupe_tolerance", pdf2md.DefaultDedupeTolerance)
	viper.SetDefault("image_resolution", pdf2md.DefaultImageResolution)

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func run(cmd *cobra.Command, args []string) error {
	input := args[0]

	if _, err := os.Stat(input); err != nil {
		return fmt.Errorf("file not found: %s", input)
	}
	if !strings.EqualFold(filepath.Ext(input), ".pdf") {
		return fmt.Errorf("not a PDF file: %s", input)
	}

	output, _ := cmd.Flags().GetString("output")
	single, _ := cmd.Flags().GetBool("single")
	name, _ := cmd.Flags().GetString("name")
	strategyFlag, _ := cmd.Flags().GetString("strategy")
	images, _ := cmd.Flags().GetBool("images")
	tablesPath, _ := cmd.Flags().GetString("tables")

	strategy, err := pdf2md.ParseStrategy(strategyFlag)
	if err != nil {
		return err
	}

	opts := []pdf2md.Option{
		pdf2md.WithStrategy(strategy),
		pdf2md.WithPageSeparator(viper.GetString("page_separator")),
		pdf2md.WithDedupeTolerance(viper.GetFloat64("dedupe_tolerance")),
		pdf2md.WithImageResolution(viper.GetFloat64("image_resolution")),
	}
	if single {
		opts = append(opts, pdf2md.WithOutputMode(pdf2md.OutputSingle))
	}
	if images {
		opts = append(opts, pdf2md.WithImageExtraction(output))
	}

	conv := pdf2md.New(opts...)

	fmt.Printf("Converting: %s\n", input)

	result, err := conv.ConvertFile(input)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	fmt.Printf("Total pages: %d\n", len(result.Pages))

	created, err := conv.Save(result, output, name)
	for _, f := range created {
		fmt.Printf("Created: %s\n", f)
	}
	if err != nil {
		return err
	}

	if tablesPath != "" {
		if err := pdf2md.ExportTablesXLSX(result, tablesPath); err != nil {
			return err
		}
		fmt.Printf("Created: %s\n", tablesPath)
	}

	fmt.Printf("\nDone: %d file(s) created\n", len(created))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
