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

package raster

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/trapezoid"
	"seehuhn.de/go/trapezoid/testcases"
)

// render fills p into a w×h coverage buffer.
func render(r *Rasterizer, p *path.Data, w, h int, evenOdd bool) []float32 {
	buf := make([]float32, w*h)
	emit := func(y, xMin int, coverage []float32) {
		copy(buf[y*w+xMin:], coverage)
	}
	if evenOdd {
		r.FillEvenOdd(p, emit)
	} else {
		r.FillNonZero(p, emit)
	}
	return buf
}

func sum(buf []float32) float64 {
	var s float64
	for _, c := range buf {
		s += float64(c)
	}
	return s
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	coverage := render(r, triangle, 10, 1, false)

	const epsilon = 1e-6
	for x := range 10 {
		want := float32(2*x+1) / 20
		if math.Abs(float64(coverage[x]-want)) > epsilon {
			t.Errorf("pixel %d: got coverage %.4f, want %.4f", x, coverage[x], want)
		}
	}
}

// TestImplicitClose checks that open subpaths are filled as if closed.
func TestImplicitClose(t *testing.T) {
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 14, Y: 3}).
		LineTo(vec.Vec2{X: 8, Y: 14}).
		Close().
		MoveTo(vec.Vec2{X: 20, Y: 2}).
		LineTo(vec.Vec2{X: 30, Y: 2}).
		LineTo(vec.Vec2{X: 25, Y: 12}).
		Close()
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 14, Y: 3}).
		LineTo(vec.Vec2{X: 8, Y: 14}).
		MoveTo(vec.Vec2{X: 20, Y: 2}).
		LineTo(vec.Vec2{X: 30, Y: 2}).
		LineTo(vec.Vec2{X: 25, Y: 12})

	r := NewRasterizer(rect.Rect{URx: 32, URy: 16})
	want := render(r, closed, 32, 16, false)
	got := render(r, open, 32, 16, false)
	if !slices.Equal(got, want) {
		t.Error("open and closed subpaths differ")
	}
	if sum(want) == 0 {
		t.Error("nothing was drawn")
	}
}

// TestTrapezoidArea compares the total coverage with the exact area.
// Each curved side is point symmetric around the midpoint of its chord,
// so the area equals that of the trapezoid with straight sides.
func TestTrapezoidArea(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				g := tc.Shape.Geometry(float64(tc.Width), float64(tc.Height))
				if g.Degenerate() {
					t.Skip("sides cross over")
				}

				r := NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
				buf := render(r, g.Outline(), tc.Width, tc.Height, false)

				want := (g.Width + g.TopLength) / 2 * g.Height
				got := sum(buf)
				if math.Abs(got-want) > 0.01*want+1 {
					t.Errorf("area = %.2f, want %.2f", got, want)
				}
			})
		}
	}
}

// TestApproaches checks that both rasterization strategies agree.
func TestApproaches(t *testing.T) {
	shape := trapezoid.Shape{Cot: trapezoid.Cot30}
	paths := map[string]*path.Data{
		"trapezoid": shape.Outline(200, 40),
		"crossed":   shape.Outline(60, 40),
	}
	for name, p := range paths {
		for _, evenOdd := range []bool{false, true} {
			t.Run(fmt.Sprintf("%s_%t", name, evenOdd), func(t *testing.T) {
				clip := rect.Rect{URx: 200, URy: 40}
				small := NewRasterizer(clip)
				small.smallPathThreshold = 1 << 30
				large := NewRasterizer(clip)
				large.smallPathThreshold = 0

				a := render(small, p, 200, 40, evenOdd)
				b := render(large, p, 200, 40, evenOdd)
				for i := range a {
					if math.Abs(float64(a[i]-b[i])) > 1e-5 {
						t.Fatalf("pixel (%d,%d): %g != %g", i%200, i/200, a[i], b[i])
					}
				}
			})
		}
	}
}

func TestCTM(t *testing.T) {
	p := trapezoid.Shape{Cot: trapezoid.Cot45}.Outline(50, 10)

	r := NewRasterizer(rect.Rect{URx: 100, URy: 20})
	r.CTM = matrix.Scale(2, 2)
	got := sum(render(r, p, 100, 20, false))

	want := (50.0 + 30.0) / 2 * 10 * 4
	if math.Abs(got-want) > 0.01*want {
		t.Errorf("scaled area = %.2f, want %.2f", got, want)
	}
}

func TestClip(t *testing.T) {
	p := trapezoid.Shape{Cot: trapezoid.Cot45}.Outline(100, 20)

	r := NewRasterizer(rect.Rect{LLx: 40, LLy: 5, URx: 60, URy: 15})
	r.FillNonZero(p, func(y, xMin int, coverage []float32) {
		if y < 5 || y >= 15 || xMin < 40 || xMin+len(coverage) > 60 {
			t.Errorf("row %d, columns [%d,%d) outside the clip region",
				y, xMin, xMin+len(coverage))
		}
		for _, c := range coverage {
			if c < 1-1e-5 {
				t.Fatalf("row %d: coverage %g inside the trapezoid", y, c)
			}
		}
	})

	r.Reset(rect.Rect{URx: 10, URy: 10})
	if r.CTM != matrix.Identity || r.Flatness != DefaultFlatness {
		t.Error("Reset did not restore the defaults")
	}
	called := false
	far := (&path.Data{}).
		MoveTo(vec.Vec2{X: 50, Y: 50}).
		LineTo(vec.Vec2{X: 60, Y: 50}).
		LineTo(vec.Vec2{X: 60, Y: 60})
	r.FillNonZero(far, func(int, int, []float32) { called = true })
	if called {
		t.Error("path outside the clip region produced output")
	}
}

func BenchmarkFill(b *testing.B) {
	for _, size := range []int{64, 512, 2048} {
		b.Run(fmt.Sprintf("%dx%d", size, size/4), func(b *testing.B) {
			w, h := float64(size), float64(size/4)
			clip := rect.Rect{URx: w, URy: h}
			r := NewRasterizer(clip)
			shape := trapezoid.Shape{Cot: trapezoid.Cot30}

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(shape.Outline(w, h), func(y, xMin int, coverage []float32) {})
			}
		})
	}
}
