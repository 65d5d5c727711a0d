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

package canvas

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trapezoid"
)

// Vector fills paths into a raster image using golang.org/x/image/vector.
// It behaves like [Image] and is mainly useful for cross-checking.
type Vector struct {
	Dst draw.Image

	// Scale is the number of device pixels per user space unit.
	// Values <= 0 mean 1.
	Scale float64

	z    *vector.Rasterizer
	mask *image.Alpha
}

// NewVector returns a canvas which draws into dst.
func NewVector(dst draw.Image) *Vector {
	return &Vector{Dst: dst}
}

// FillPath implements [trapezoid.Canvas].
func (c *Vector) FillPath(p *path.Data, paint trapezoid.Paint) error {
	if paint.Color == nil {
		return errNoColor
	}

	b := c.Dst.Bounds()
	w, h := b.Dx(), b.Dy()
	if c.z == nil {
		c.z = vector.NewRasterizer(w, h)
	} else {
		c.z.Reset(w, h)
	}

	s := scale(c.Scale)
	dev := func(v vec.Vec2) (float32, float32) {
		return float32(s * v.X), float32(s * v.Y)
	}

	z := c.z
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(dev(p.Coords[k]))
			open = false
			k++
		case path.CmdLineTo:
			z.LineTo(dev(p.Coords[k]))
			open = true
			k++
		case path.CmdQuadTo:
			bx, by := dev(p.Coords[k])
			cx, cy := dev(p.Coords[k+1])
			z.QuadTo(bx, by, cx, cy)
			open = true
			k += 2
		case path.CmdCubeTo:
			bx, by := dev(p.Coords[k])
			cx, cy := dev(p.Coords[k+1])
			dx, dy := dev(p.Coords[k+2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
			open = true
			k += 3
		case path.CmdClose:
			z.ClosePath()
			open = false
		}
	}
	if open {
		z.ClosePath()
	}

	c.mask = alphaMask(c.mask, image.Rect(0, 0, w, h))
	z.DrawOp = draw.Src
	z.Draw(c.mask, c.mask.Bounds(), image.Opaque, image.Point{})
	if !paint.AntiAlias {
		for i, a := range c.mask.Pix {
			c.mask.Pix[i] = coverageToAlpha(float32(a)/255, false)
		}
	}

	composite(c.Dst, b, c.mask, image.Point{}, paint)
	return nil
}
