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

// Package canvas implements drawing surfaces for trapezoid views.
//
// [Image] rasterizes paths using package raster, [Vector] uses
// golang.org/x/image/vector, and [PDF] writes the paths into a PDF file.
// All of them implement [trapezoid.Canvas].
package canvas

import (
	"errors"
	"image"

	"golang.org/x/image/draw"

	"seehuhn.de/go/trapezoid"
)

var errNoColor = errors.New("canvas: paint has no color")

// alphaMask returns a cleared mask with the given bounds, reusing m if
// possible.
func alphaMask(m *image.Alpha, bounds image.Rectangle) *image.Alpha {
	if m == nil || m.Rect != bounds {
		return image.NewAlpha(bounds)
	}
	clear(m.Pix)
	return m
}

// coverageToAlpha converts coverage in [0, 1] to an 8-bit alpha value.
// Without anti-aliasing, pixels are either fully painted or not at all.
func coverageToAlpha(c float32, antiAlias bool) uint8 {
	if !antiAlias {
		if c >= 0.5 {
			return 255
		}
		return 0
	}
	return uint8(max(0, min(255, int(c*256))))
}

// composite paints the color of paint through mask onto dst.
func composite(dst draw.Image, r image.Rectangle, mask *image.Alpha, mp image.Point, paint trapezoid.Paint) {
	src := image.NewUniform(paint.Color)
	draw.DrawMask(dst, r, src, image.Point{}, mask, mp, draw.Over)
}

// scale returns s, or 1 if s is not positive.
func scale(s float64) float64 {
	if s > 0 {
		return s
	}
	return 1
}
