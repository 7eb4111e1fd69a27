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

// Package config holds the qrgen CLI defaults file. The core library takes
// no configuration; everything here only seeds command-line flags.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	CellSize   int    `yaml:"cell_size"`
	Margin     int    `yaml:"margin"` // -1 selects the renderer default.
	Foreground string `yaml:"foreground"`
	Background string `yaml:"background"`
	LogLevel   string `yaml:"loglevel"`
}

func Defaults() *Config {
	return &Config{
		Level:    "M",
		Format:   "ascii",
		CellSize: 2,
		Margin:   -1,
		LogLevel: "info",
	}
}

// Load reads a config file and fills unset fields with defaults. A missing
// file surfaces as an os.IsNotExist error so callers can fall back to
// Defaults.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, err
	}
	if cfg.Level == "" {
		cfg.Level = "M"
	}
	if cfg.Format == "" {
		cfg.Format = "ascii"
	}
	if cfg.CellSize == 0 {
		cfg.CellSize = 2
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}
