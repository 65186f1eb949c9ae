package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sheetdown/sheetdown/internal/config"
	"github.com/sheetdown/sheetdown/internal/source"
)

var (
	outPath   string
	cfgPath   string
	sheetName string
)

func init() {
	rootCmd.Flags().StringVarP(&outPath, "out", "o", "", "output workbook path (default: input with .xlsx extension)")
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "YAML file with layout and style options")
	rootCmd.Flags().StringVar(&sheetName, "sheet", "", "base sheet name (overrides config)")
}

var rootCmd = &cobra.Command{
	Use:   "sheetdown [flags] input.md",
	Short: "Convert line-oriented markdown into a styled spreadsheet",
	Long: `sheetdown parses a markdown file into styled text runs and places them on a
row/column grid: one row per source line, columns derived from indentation,
hyperlinks deduplicated into a numbered appendix. The grid is written as an
.xlsx workbook; if the workbook already exists the document is appended as a
new sheet.`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		in := args[0]
		out := outPath
		if out == "" {
			out = strings.TrimSuffix(in, filepath.Ext(in)) + ".xlsx"
		}
		opts, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if sheetName != "" {
			opts.Sheet = sheetName
		}
		name, err := convert(source.File(in), out, opts)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (sheet %q)\n", out, name)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
