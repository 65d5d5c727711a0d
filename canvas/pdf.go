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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	pdfcolor "seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/trapezoid"
)

// PDF draws onto the only page of a new PDF file. One user space unit
// is one PDF point, and the origin is at the top left corner of the page.
//
// Colors are converted to DeviceGray; transparency is ignored.
type PDF struct {
	page *document.Page
}

// CreatePDF creates a PDF file with a single page of the given size,
// in points. The file is complete after [PDF.Close] has been called.
func CreatePDF(fname string, width, height float64) (*PDF, error) {
	paper := &pdf.Rectangle{URx: width, URy: height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}

	// PDF places the origin in the bottom left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, height})

	return &PDF{page: page}, nil
}

// FillPath implements [trapezoid.Canvas], using the nonzero winding rule.
// Quadratic segments are written as cubic Bézier curves.
func (c *PDF) FillPath(p *path.Data, paint trapezoid.Paint) error {
	if paint.Color == nil {
		return errNoColor
	}

	gray := color.Gray16Model.Convert(paint.Color).(color.Gray16)
	c.page.SetFillColor(pdfcolor.DeviceGray(float64(gray.Y) / 0xffff))

	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			c.page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			c.page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			c.page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			c.page.ClosePath()
		}
	}
	c.page.Fill()
	return nil
}

// Close writes the page and closes the file.
func (c *PDF) Close() error {
	return c.page.Close()
}
