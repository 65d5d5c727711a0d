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

// Command trapezoid draws a curved trapezoid into a PNG or PDF file.
//
// Usage:
//
//	trapezoid [-config file.yaml] [-width w] [-height h] [-cot c | -angle deg]
//	          [-clamp] [-color #rrggbb] [-aa=false] [-scale s]
//	          [-backend raster|vector] [-format png|pdf] [-o file]
//	          [-log-level debug|info|warn|error]
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log/slog"
	"math"
	"os"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/canvas"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "trapezoid:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	def := defaultConfig()

	fs := flag.NewFlagSet("trapezoid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configFile := fs.String("config", "", "read settings from this YAML `file`")
	width := fs.Float64("width", def.Width, "surface width")
	height := fs.Float64("height", def.Height, "surface height")
	cot := fs.Float64("cot", def.Cot, "cotangent of the side angle")
	angle := fs.Float64("angle", 0, "side angle in degrees, overrides -cot")
	clamp := fs.Bool("clamp", def.Clamp, "keep the top length non-negative")
	col := fs.String("color", def.Color, "fill color as #rrggbb")
	aa := fs.Bool("aa", def.AntiAlias, "anti-alias the edges")
	scale := fs.Float64("scale", def.Scale, "device pixels per unit (PNG only)")
	backend := fs.String("backend", def.Backend, "rasterizer: raster or vector")
	format := fs.String("format", def.Format, "output format: png or pdf")
	output := fs.String("o", def.Output, "output `file`")
	logLevel := fs.String("log-level", def.LogLevel, "log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() > 0 {
		return fmt.Errorf("unexpected arguments %q", fs.Args())
	}

	cfg := def
	if *configFile != "" {
		var err error
		cfg, err = loadConfig(*configFile)
		if err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "cot":
			cfg.Cot = *cot
			cfg.Angle = 0
		case "angle":
			cfg.Angle = *angle
		case "clamp":
			cfg.Clamp = *clamp
		case "color":
			cfg.Color = *col
		case "aa":
			cfg.AntiAlias = *aa
		case "scale":
			cfg.Scale = *scale
		case "backend":
			cfg.Backend = *backend
		case "format":
			cfg.Format = *format
		case "o":
			cfg.Output = *output
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.level()}))
	return draw(cfg, logger)
}

// draw plays the part of the host toolkit: it sets up a surface, asks
// the view to paint itself once, and stores the result.
func draw(cfg Config, logger *slog.Logger) error {
	if err := cfg.validate(); err != nil {
		return err
	}
	shape, err := cfg.shape()
	if err != nil {
		return err
	}
	paint, err := cfg.paint()
	if err != nil {
		return err
	}
	v := &trapezoid.View{Shape: shape, Paint: paint}

	g := shape.Geometry(cfg.Width, cfg.Height)
	logger.Debug("geometry",
		"cot", shape.Cot,
		"top_length", g.TopLength,
		"top_offset_start", g.TopOffsetStart,
		"top_offset_end", g.TopOffsetEnd)
	if g.Degenerate() {
		logger.Warn("surface too tall for its width, the sides cross over",
			"width", cfg.Width, "height", cfg.Height, "cot", shape.Cot)
	}

	switch cfg.Format {
	case "pdf":
		err = drawPDF(v, cfg)
	default:
		err = drawPNG(v, cfg)
	}
	if err != nil {
		return err
	}

	logger.Info("written", "file", cfg.Output, "format", cfg.Format)
	return nil
}

func drawPNG(v *trapezoid.View, cfg Config) (err error) {
	w := int(math.Ceil(cfg.Width * cfg.Scale))
	h := int(math.Ceil(cfg.Height * cfg.Scale))
	img := image.NewNRGBA(image.Rect(0, 0, w, h))

	var c trapezoid.Canvas
	switch cfg.Backend {
	case "vector":
		vc := canvas.NewVector(img)
		vc.Scale = cfg.Scale
		c = vc
	default:
		ic := canvas.NewImage(img)
		ic.Scale = cfg.Scale
		c = ic
	}
	if err := v.Draw(c, cfg.Width, cfg.Height); err != nil {
		return err
	}

	f, err := os.Create(cfg.Output)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func drawPDF(v *trapezoid.View, cfg Config) (err error) {
	c, err := canvas.CreatePDF(cfg.Output, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}()
	return v.Draw(c, cfg.Width, cfg.Height)
}
