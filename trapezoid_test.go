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
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

const epsilon = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) <= epsilon*max(1, math.Abs(a), math.Abs(b))
}

func TestGeometryScenarios(t *testing.T) {
	cases := []struct {
		name               string
		width, height, cot float64
		clamp              bool
		topLength          float64
		start, end         float64
		degenerate         bool
	}{
		{"rectangle", 100, 0, Cot45, false, 100, 0, 100, false},
		{"cot45", 100, 10, Cot45, false, 80, 10, 90, false},
		{"cot30", 100, 10, Cot30, false, 66, 17, 83, false},
		{"crossed", 50, 30, Cot45, false, -10, 30, 20, true},
		{"clamped", 50, 30, Cot45, true, 0, 25, 25, false},
		{"flat", 100, 10, 0, false, 100, 0, 100, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := Shape{Cot: c.cot, Clamp: c.clamp}
			g := s.Geometry(c.width, c.height)
			if !near(g.TopLength, c.topLength) {
				t.Errorf("TopLength = %g, want %g", g.TopLength, c.topLength)
			}
			if !near(g.TopOffsetStart, c.start) {
				t.Errorf("TopOffsetStart = %g, want %g", g.TopOffsetStart, c.start)
			}
			if !near(g.TopOffsetEnd, c.end) {
				t.Errorf("TopOffsetEnd = %g, want %g", g.TopOffsetEnd, c.end)
			}
			if g.Degenerate() != c.degenerate {
				t.Errorf("Degenerate() = %t, want %t", g.Degenerate(), c.degenerate)
			}
		})
	}
}

func TestGeometryExact(t *testing.T) {
	g := Shape{Cot: Cot45}.Geometry(100, 10)
	want := Geometry{
		Width:            100,
		Height:           10,
		TopLength:        80,
		TopOffsetStart:   10,
		TopOffsetEnd:     90,
		BottomLeftCurveX: 5,
		TopRightCurveX:   95,
	}
	if g != want {
		t.Errorf("got %+v, want %+v", g, want)
	}
}

func TestGeometryInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for range 1000 {
		width := 1 + rng.Float64()*1000
		cot := rng.Float64() * 3
		height := rng.Float64() * 2000
		clamp := rng.IntN(2) == 0

		g := Shape{Cot: cot, Clamp: clamp}.Geometry(width, height)

		if !near(g.TopOffsetStart+g.TopOffsetEnd, width) {
			t.Fatalf("w=%g h=%g cot=%g: start+end = %g",
				width, height, cot, g.TopOffsetStart+g.TopOffsetEnd)
		}
		if !near(g.TopOffsetStart, width-g.TopOffsetEnd) {
			t.Fatalf("w=%g h=%g cot=%g: no mirror symmetry", width, height, cot)
		}
		if g.BottomLeftCurveX != g.TopOffsetStart/2 {
			t.Fatalf("BottomLeftCurveX = %g, want %g", g.BottomLeftCurveX, g.TopOffsetStart/2)
		}
		if g.TopRightCurveX != g.TopOffsetEnd+g.TopOffsetStart/2 {
			t.Fatalf("TopRightCurveX = %g, want %g",
				g.TopRightCurveX, g.TopOffsetEnd+g.TopOffsetStart/2)
		}
		if clamp && g.TopLength < 0 {
			t.Fatalf("clamped TopLength = %g", g.TopLength)
		}
	}
}

func TestFromAngle(t *testing.T) {
	cases := []struct {
		deg float64
		cot float64
	}{
		{45, 1},
		{30, math.Sqrt(3)},
		{60, 1 / math.Sqrt(3)},
		{90, 0},
		{135, -1},
	}
	for _, c := range cases {
		s, err := FromAngle(c.deg)
		if err != nil {
			t.Errorf("FromAngle(%g): %v", c.deg, err)
			continue
		}
		if !near(s.Cot, c.cot) {
			t.Errorf("FromAngle(%g).Cot = %g, want %g", c.deg, s.Cot, c.cot)
		}
	}

	for _, deg := range []float64{0, -10, 180, 270, math.NaN()} {
		if _, err := FromAngle(deg); !errors.Is(err, ErrAngle) {
			t.Errorf("FromAngle(%g): got %v, want ErrAngle", deg, err)
		}
	}
}

func TestOutline(t *testing.T) {
	p := Shape{Cot: Cot45}.Outline(100, 10)

	wantCmds := []path.Command{path.CmdMoveTo, path.CmdCubeTo, path.CmdLineTo, path.CmdCubeTo}
	if !slices.Equal(p.Cmds, wantCmds) {
		t.Fatalf("commands = %v, want %v", p.Cmds, wantCmds)
	}

	wantCoords := []vec.Vec2{
		{X: 0, Y: 10},
		{X: 5, Y: 10}, {X: 5, Y: 0}, {X: 10, Y: 0},
		{X: 90, Y: 0},
		{X: 95, Y: 0}, {X: 95, Y: 10}, {X: 100, Y: 10},
	}
	if !slices.Equal(p.Coords, wantCoords) {
		t.Errorf("coordinates = %v, want %v", p.Coords, wantCoords)
	}
}

// TestOutlineFresh checks that repeated calls do not accumulate segments.
func TestOutlineFresh(t *testing.T) {
	v := NewView(Shape{Cot: Cot30})

	first := v.Render(320, 48)
	for range 5 {
		next := v.Render(320, 48)
		if !slices.Equal(first.Cmds, next.Cmds) || !slices.Equal(first.Coords, next.Coords) {
			t.Fatal("outline changed between identical redraws")
		}
		if next == first {
			t.Fatal("outline storage is shared between redraws")
		}
	}

	// resizing must not leave traces of the old size
	v.Render(10, 10)
	again := v.Render(320, 48)
	if !slices.Equal(first.Coords, again.Coords) {
		t.Error("outline depends on earlier surface sizes")
	}
}
