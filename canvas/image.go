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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/raster"
)

// Image fills paths into a raster image. User space coordinate (0, 0)
// maps to the top left corner of Dst.
type Image struct {
	Dst draw.Image

	// Scale is the number of device pixels per user space unit.
	// Values <= 0 mean 1.
	Scale float64

	r    *raster.Rasterizer
	mask *image.Alpha
}

// NewImage returns a canvas which draws into dst.
func NewImage(dst draw.Image) *Image {
	return &Image{
		Dst: dst,
		r:   raster.NewRasterizer(rect.Rect{}),
	}
}

// FillPath implements [trapezoid.Canvas], using the nonzero winding rule.
func (c *Image) FillPath(p *path.Data, paint trapezoid.Paint) error {
	if paint.Color == nil {
		return errNoColor
	}

	b := c.Dst.Bounds()
	c.r.Reset(rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	})
	s := scale(c.Scale)
	c.r.CTM = matrix.Matrix{s, 0, 0, s, float64(b.Min.X), float64(b.Min.Y)}

	c.mask = alphaMask(c.mask, b)
	mask := c.mask
	c.r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		row := mask.Pix[mask.PixOffset(xMin, y):]
		for i, v := range coverage {
			row[i] = coverageToAlpha(v, paint.AntiAlias)
		}
	})

	composite(c.Dst, b, mask, b.Min, paint)
	return nil
}
