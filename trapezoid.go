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

// Package trapezoid builds isosceles trapezoid outlines whose slanted sides
// are bowed into cubic Bézier S-curves. The shape always fills the full
// width of the drawing surface; the base lies along y = height and the top
// edge along y = 0, so coordinates follow the usual top-left screen
// convention.
//
//	     ________b________
//	    /|               |\
//	   / |               | \
//	  /  |               |h \
//	 / α |               |   \
//	/____|_______________|____\
//	  x          a          x
//
// With a = width and h = height, the top length is b = a - h·2·cot(α)
// and the inset of the top edge is x = (a-b)/2.
package trapezoid

//go:generate go run ./testcases/export
//go:generate go run ./testcases/genpdf

import (
	"errors"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Cotangents for commonly used side angles.
const (
	// Cot45 gives sides at 45 degrees.
	Cot45 = 1.0

	// Cot30 gives sides at roughly 30 degrees. The value is rounded
	// to one decimal place (cot 30° ≈ 1.732).
	Cot30 = 1.7
)

// ErrAngle is returned by [FromAngle] for angles outside (0°, 180°).
var ErrAngle = errors.New("trapezoid: side angle out of range")

// Shape describes a family of curved trapezoids. The zero value has
// vertical sides (cot = 0) and produces a rectangle.
type Shape struct {
	// Cot is the cotangent of the angle between the base and each side.
	// Larger values give shallower sides.
	Cot float64

	// Clamp limits the top length to be non-negative. Without clamping,
	// a surface which is too tall for its width gives a top edge running
	// backwards, and the two sides cross over.
	Clamp bool
}

// FromAngle returns the shape whose sides meet the base at the given angle,
// in degrees.
func FromAngle(deg float64) (Shape, error) {
	if !(deg > 0 && deg < 180) {
		return Shape{}, ErrAngle
	}
	if deg == 90 {
		return Shape{}, nil
	}
	return Shape{Cot: 1 / math.Tan(deg*math.Pi/180)}, nil
}

// Geometry holds the key x-coordinates of a curved trapezoid for one
// surface size.
type Geometry struct {
	Width, Height float64

	TopLength      float64 // length of the top edge, possibly negative
	TopOffsetStart float64 // x-coordinate where the top edge starts
	TopOffsetEnd   float64 // x-coordinate where the top edge ends

	// Control point abscissae for the left and right side curves.
	BottomLeftCurveX float64
	TopRightCurveX   float64
}

// Geometry computes the trapezoid geometry for a surface of the given size.
// Inputs are not validated.
func (s Shape) Geometry(width, height float64) Geometry {
	topLength := width - height*(s.Cot+s.Cot)
	if s.Clamp && topLength < 0 {
		topLength = 0
	}
	start := (width - topLength) / 2
	end := width - start

	return Geometry{
		Width:            width,
		Height:           height,
		TopLength:        topLength,
		TopOffsetStart:   start,
		TopOffsetEnd:     end,
		BottomLeftCurveX: start / 2,
		TopRightCurveX:   end + start/2,
	}
}

// Degenerate reports whether the top edge runs backwards, so that the
// sides of the outline intersect.
func (g Geometry) Degenerate() bool {
	return g.TopLength < 0
}

// Outline returns a new path for the trapezoid. The path starts at the
// bottom left corner, follows the left side up to the top edge, runs
// along the top edge, and comes back down the right side to the bottom
// right corner. The path is not closed; filling it closes the base.
func (g Geometry) Outline() *path.Data {
	w, h := g.Width, g.Height
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: h}).
		CubeTo(
			vec.Vec2{X: g.BottomLeftCurveX, Y: h},
			vec.Vec2{X: g.BottomLeftCurveX, Y: 0},
			vec.Vec2{X: g.TopOffsetStart, Y: 0}).
		LineTo(vec.Vec2{X: g.TopOffsetEnd, Y: 0}).
		CubeTo(
			vec.Vec2{X: g.TopRightCurveX, Y: 0},
			vec.Vec2{X: g.TopRightCurveX, Y: h},
			vec.Vec2{X: w, Y: h})
}

// Outline is a shortcut for s.Geometry(width, height).Outline().
func (s Shape) Outline(width, height float64) *path.Data {
	return s.Geometry(width, height).Outline()
}
