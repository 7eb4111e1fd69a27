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
	"html"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/qrgenlab/qrsymbol/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview [text]",
	Short: "Render a QR code to a temporary HTML page and open it in the browser",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&flagLevel, "level", "l", "", "error correction level: L, M, Q, or H (overrides config)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	levelName := cfg.Level
	if flagLevel != "" {
		levelName = flagLevel
	}

	symbol, err := buildSymbol(args[0], levelName)
	if err != nil {
		return err
	}

	opts := []render.Option{render.WithCellSize(6)}
	page := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>qrgen preview</title></head>
<body>
<h1>%s</h1>
<p>version %d, %d&times;%d modules</p>
<img alt="PNG" src="%s">
<img alt="GIF" src="%s">
%s
</body>
</html>
`,
		html.EscapeString(args[0]),
		symbol.Version(), symbol.ModuleCount(), symbol.ModuleCount(),
		render.PNGDataURL(symbol, opts...),
		render.GIFDataURL(symbol, opts...),
		render.SVG(symbol, opts...))

	f, err := os.CreateTemp("", "qrgen-*.html")
	if err != nil {
		return err
	}
	if _, err := f.WriteString(page); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return browser.OpenFile(f.Name())
}
