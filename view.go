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

package trapezoid

import (
	"image/color"

	"seehuhn.de/go/geom/path"
)

// Paint describes how an outline is filled.
type Paint struct {
	Color     color.Color
	AntiAlias bool

	// StrokeWidth is kept for hosts which also stroke outlines.
	// Fills ignore it.
	StrokeWidth float64
}

// DefaultPaint is solid black with anti-aliasing.
var DefaultPaint = Paint{
	Color:       color.Black,
	AntiAlias:   true,
	StrokeWidth: 8,
}

// Canvas is a drawing surface which can fill paths.
// Open subpaths are closed implicitly.
type Canvas interface {
	FillPath(p *path.Data, paint Paint) error
}

// View draws a curved trapezoid which fills the surface it is drawn on.
//
// The host calls Draw whenever the surface needs repainting. No state is
// carried from one call to the next.
type View struct {
	Shape Shape
	Paint Paint
}

// NewView returns a view for the given shape using [DefaultPaint].
func NewView(s Shape) *View {
	return &View{Shape: s, Paint: DefaultPaint}
}

// Render returns the outline for a surface of the given size.
func (v *View) Render(width, height float64) *path.Data {
	return v.Shape.Outline(width, height)
}

// Draw fills the outline for a surface of the given size onto c.
func (v *View) Draw(c Canvas, width, height float64) error {
	return c.FillPath(v.Render(width, height), v.Paint)
}
