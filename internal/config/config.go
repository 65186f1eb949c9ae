// Package config loads the recognized layout and style options from an
// optional YAML file. Every option has a default; unrecognized keys are
// dropped.
package config

import (
	"fmt"
	"strconv"

	"github.com/spf13/viper"

	"github.com/sheetdown/sheetdown/grid"
	"github.com/sheetdown/sheetdown/mark"
)

// Options is the full configuration surface.
type Options struct {
	Sheet       string         `mapstructure:"sheet"`
	CellWidth   float64        `mapstructure:"cell_width"`
	RowHeight   float64        `mapstructure:"row_height"`
	IndentCols  int            `mapstructure:"indent_cols"`
	GapRows     int            `mapstructure:"gap_rows"`
	BodyFont    string         `mapstructure:"body_font"`
	CodeFont    string         `mapstructure:"code_font"`
	BaseSize    int            `mapstructure:"base_size"`
	HeaderSizes map[string]int `mapstructure:"header_sizes"`
	Colors      Colors         `mapstructure:"colors"`
}

// Colors names every configurable color role.
type Colors struct {
	Code        string `mapstructure:"code"`
	InlineCode  string `mapstructure:"inline_code"`
	Link        string `mapstructure:"link"`
	Image       string `mapstructure:"image"`
	QuoteBG     string `mapstructure:"quote_bg"`
	QuoteBorder string `mapstructure:"quote_border"`
	RuleBorder  string `mapstructure:"rule_border"`
	CodeBG      string `mapstructure:"code_bg"`
	ImageBG     string `mapstructure:"image_bg"`
}

// Load reads options from the named file, or returns the defaults when path
// is empty. A missing default file is not an error; a named file that cannot
// be read or parsed is.
func Load(path string) (*Options, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	st := mark.DefaultStyles()
	lay := grid.DefaultLayout()
	v.SetDefault("sheet", lay.SheetName)
	v.SetDefault("cell_width", lay.CellWidth)
	v.SetDefault("row_height", lay.RowHeight)
	v.SetDefault("indent_cols", lay.IndentCols)
	v.SetDefault("gap_rows", lay.GapRows)
	v.SetDefault("body_font", st.BodyFont)
	v.SetDefault("code_font", st.CodeFont)
	v.SetDefault("base_size", st.BaseSize)
	for i, sz := range st.HeaderSizes {
		v.SetDefault(fmt.Sprintf("header_sizes.%d", i+1), sz)
	}
	v.SetDefault("colors.code", st.CodeColor)
	v.SetDefault("colors.inline_code", st.InlineCodeColor)
	v.SetDefault("colors.link", st.LinkColor)
	v.SetDefault("colors.image", st.ImageColor)
	v.SetDefault("colors.quote_bg", lay.QuoteBG)
	v.SetDefault("colors.quote_border", lay.QuoteBorder)
	v.SetDefault("colors.rule_border", lay.RuleBorder)
	v.SetDefault("colors.code_bg", lay.CodeBG)
	v.SetDefault("colors.image_bg", lay.ImageBG)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var opts Options
	if err := v.Unmarshal(&opts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &opts, nil
}

// Styles builds the parser palette from the options.
func (o *Options) Styles() mark.Styles {
	st := mark.Styles{
		BodyFont:        o.BodyFont,
		CodeFont:        o.CodeFont,
		BaseSize:        o.BaseSize,
		CodeColor:       o.Colors.Code,
		InlineCodeColor: o.Colors.InlineCode,
		LinkColor:       o.Colors.Link,
		ImageColor:      o.Colors.Image,
	}
	for key, sz := range o.HeaderSizes {
		if level, err := strconv.Atoi(key); err == nil && level >= 1 && level <= len(st.HeaderSizes) {
			st.HeaderSizes[level-1] = sz
		}
	}
	return st
}

// Layout builds the placement configuration from the options.
func (o *Options) Layout() grid.Layout {
	lay := grid.DefaultLayout()
	lay.SheetName = o.Sheet
	lay.CellWidth = o.CellWidth
	lay.RowHeight = o.RowHeight
	lay.IndentCols = o.IndentCols
	lay.GapRows = o.GapRows
	lay.LinkColor = o.Colors.Link
	lay.QuoteBG = o.Colors.QuoteBG
	lay.QuoteBorder = o.Colors.QuoteBorder
	lay.RuleBorder = o.Colors.RuleBorder
	lay.CodeBG = o.Colors.CodeBG
	lay.ImageBG = o.Colors.ImageBG
	return lay
}
