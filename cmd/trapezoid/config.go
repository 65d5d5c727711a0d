// seehuhn.de/go/trapezoid - trapezoid shapes with curved sides
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"os"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"seehuhn.de/go/trapezoid"
)

// Config describes one drawing. It can be read from a YAML file;
// command line flags override the values from the file.
type Config struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Cot is the cotangent of the side angle. Angle, if non-zero,
	// takes precedence.
	Cot   float64 `yaml:"cot"`
	Angle float64 `yaml:"angle"`
	Clamp bool    `yaml:"clamp"`

	Color     string  `yaml:"color"`
	AntiAlias bool    `yaml:"antialias"`
	Scale     float64 `yaml:"scale"`

	Backend string `yaml:"backend"` // "raster" or "vector"
	Format  string `yaml:"format"`  // "png" or "pdf"
	Output  string `yaml:"output"`

	LogLevel string `yaml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Width:     320,
		Height:    48,
		Cot:       trapezoid.Cot45,
		Color:     "#000000",
		AntiAlias: true,
		Scale:     1,
		Backend:   "raster",
		Format:    "png",
		Output:    "trapezoid.png",
		LogLevel:  "info",
	}
}

// loadConfig reads a YAML file. Keys missing from the file keep their
// default values.
func loadConfig(fname string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(fname)
	if err != nil {
		return cfg, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if !(c.Width > 0 && c.Height > 0) {
		return fmt.Errorf("invalid surface size %gx%g", c.Width, c.Height)
	}
	if !(c.Scale > 0) {
		return fmt.Errorf("invalid scale %g", c.Scale)
	}
	switch c.Backend {
	case "raster", "vector":
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	switch c.Format {
	case "png", "pdf":
	default:
		return fmt.Errorf("unknown output format %q", c.Format)
	}
	if c.Output == "" {
		return fmt.Errorf("no output file given")
	}
	return nil
}

func (c Config) shape() (trapezoid.Shape, error) {
	if c.Angle != 0 {
		s, err := trapezoid.FromAngle(c.Angle)
		if err != nil {
			return s, fmt.Errorf("angle %g: %w", c.Angle, err)
		}
		s.Clamp = c.Clamp
		return s, nil
	}
	return trapezoid.Shape{Cot: c.Cot, Clamp: c.Clamp}, nil
}

func (c Config) paint() (trapezoid.Paint, error) {
	col, err := colorful.Hex(c.Color)
	if err != nil {
		return trapezoid.Paint{}, fmt.Errorf("color %q: %w", c.Color, err)
	}
	r, g, b := col.RGB255()

	p := trapezoid.DefaultPaint
	p.Color = color.NRGBA{R: r, G: g, B: b, A: 255}
	p.AntiAlias = c.AntiAlias
	return p, nil
}

func (c Config) level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return l
}
