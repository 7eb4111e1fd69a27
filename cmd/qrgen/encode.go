/*
 * Copyright © 2026, QRGen Lab.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"fmt"
	"image/color"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qrgenlab/qrsymbol"
	"github.com/qrgenlab/qrsymbol/render"
)

var encodeCmd = &cobra.Command{
	Use:   "encode [text]",
	Short: "Encode text as a QR code",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var (
	flagLevel    string
	flagVersion  int
	flagMode     string
	flagFormat   string
	flagCellSize int
	flagMargin   int
	flagFg       string
	flagBg       string
	flagOut      string
)

func init() {
	encodeCmd.Flags().StringVarP(&flagLevel, "level", "l", "", "error correction level: L, M, Q, or H (overrides config)")
	encodeCmd.Flags().IntVar(&flagVersion, "symbol-version", 0, "symbol version 1-40 (0 = auto)")
	encodeCmd.Flags().StringVarP(&flagMode, "mode", "m", "", "encoding mode: Numeric, Alphanumeric, Byte, or Kanji (default: auto)")
	encodeCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: ascii, html, svg, svgpath, png, or gif (overrides config)")
	encodeCmd.Flags().IntVar(&flagCellSize, "cell-size", 0, "module size in pixels or characters (overrides config)")
	encodeCmd.Flags().IntVar(&flagMargin, "margin", -1, "quiet zone width (overrides config)")
	encodeCmd.Flags().StringVar(&flagFg, "fg", "", "PNG foreground color, #RRGGBB")
	encodeCmd.Flags().StringVar(&flagBg, "bg", "", "PNG background color, #RRGGBB")
	encodeCmd.Flags().StringVarP(&flagOut, "out", "o", "", "write image bytes to file instead of printing a data URL")
}

func runEncode(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := setupLogging(cfg.LogLevel); err != nil {
		return err
	}

	levelName := cfg.Level
	if flagLevel != "" {
		levelName = flagLevel
	}
	format := cfg.Format
	if flagFormat != "" {
		format = flagFormat
	}
	cellSize := cfg.CellSize
	if flagCellSize != 0 {
		cellSize = flagCellSize
	}
	margin := cfg.Margin
	if flagMargin >= 0 {
		margin = flagMargin
	}
	fg := cfg.Foreground
	if flagFg != "" {
		fg = flagFg
	}
	bg := cfg.Background
	if flagBg != "" {
		bg = flagBg
	}

	symbol, err := buildSymbol(args[0], levelName)
	if err != nil {
		return err
	}
	slog.Debug("symbol built", "version", symbol.Version(), "modules", symbol.ModuleCount(), "mask", symbol.MaskPattern())

	opts := []render.Option{render.WithCellSize(cellSize)}
	if margin >= 0 {
		opts = append(opts, render.WithMargin(margin))
	}
	if fg != "" && bg != "" {
		fgc, err := parseHexColor(fg)
		if err != nil {
			return err
		}
		bgc, err := parseHexColor(bg)
		if err != nil {
			return err
		}
		opts = append(opts, render.WithColors(fgc, bgc))
	}

	switch format {
	case "ascii":
		fmt.Print(render.ASCII(symbol, asciiOptions(symbol, cellSize, margin)...))
	case "html":
		fmt.Print(render.HTMLTable(symbol, opts...))
	case "svg":
		fmt.Print(render.SVG(symbol, opts...))
	case "svgpath":
		fmt.Println(render.SVGPath(symbol, opts...))
	case "png":
		if flagOut != "" {
			return writeImage(flagOut, func(f *os.File) error { return render.PNG(f, symbol, opts...) })
		}
		fmt.Println(render.PNGDataURL(symbol, opts...))
	case "gif":
		if flagOut != "" {
			return writeImage(flagOut, func(f *os.File) error { return render.GIF(f, symbol, opts...) })
		}
		fmt.Println(render.GIFDataURL(symbol, opts...))
	default:
		return fmt.Errorf("unknown output format %q", format)
	}

	return nil
}

func buildSymbol(text, levelName string) (*qrsymbol.Symbol, error) {
	level, err := qrsymbol.ParseLevel(levelName)
	if err != nil {
		return nil, err
	}

	if flagMode == "" && flagVersion == 0 {
		return qrsymbol.EncodeText(text, level)
	}

	symbol, err := qrsymbol.New(flagVersion, level)
	if err != nil {
		return nil, err
	}
	mode := qrsymbol.Byte
	if flagMode != "" {
		if mode, err = qrsymbol.ParseMode(flagMode); err != nil {
			return nil, err
		}
	}
	if err := symbol.AddData(text, mode); err != nil {
		return nil, err
	}
	if err := symbol.Make(); err != nil {
		return nil, err
	}

	return symbol, nil
}

// asciiOptions drops to half-block rendering when stdout is a terminal too
// narrow for the full-block symbol.
func asciiOptions(symbol *qrsymbol.Symbol, cellSize, margin int) []render.Option {
	if margin < 0 {
		margin = 2
	}
	if cellSize >= 2 && term.IsTerminal(int(os.Stdout.Fd())) {
		width, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && (symbol.ModuleCount()+2*margin)*cellSize*2 > width {
			slog.Debug("terminal too narrow, using half-block output", "width", width)
			cellSize = 1
		}
	}

	return []render.Option{render.WithCellSize(cellSize), render.WithMargin(margin)}
}

func writeImage(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func parseHexColor(s string) (color.RGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q (want #RRGGBB)", s)
	}

	return color.RGBA{R: r, G: g, B: b, A: 0xFF}, nil
}
