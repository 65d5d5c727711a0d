// Command export writes the geometry and outline of every test case to
// testdata/testcases.json.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/trapezoid/testcases"
)

func main() {
	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name             string        `json:"name"`
	Width            int           `json:"width"`
	Height           int           `json:"height"`
	Cot              float64       `json:"cot"`
	Clamp            bool          `json:"clamp,omitempty"`
	TopLength        float64       `json:"top_length"`
	TopOffsetStart   float64       `json:"top_offset_start"`
	TopOffsetEnd     float64       `json:"top_offset_end"`
	BottomLeftCurveX float64       `json:"bottom_left_curve_x"`
	TopRightCurveX   float64       `json:"top_right_curve_x"`
	Degenerate       bool          `json:"degenerate,omitempty"`
	Path             []jsonSegment `json:"path"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	g := tc.Shape.Geometry(float64(tc.Width), float64(tc.Height))
	return jsonTestCase{
		Name:             category + "_" + tc.Name,
		Width:            tc.Width,
		Height:           tc.Height,
		Cot:              tc.Shape.Cot,
		Clamp:            tc.Shape.Clamp,
		TopLength:        g.TopLength,
		TopOffsetStart:   g.TopOffsetStart,
		TopOffsetEnd:     g.TopOffsetEnd,
		BottomLeftCurveX: g.BottomLeftCurveX,
		TopRightCurveX:   g.TopRightCurveX,
		Degenerate:       g.Degenerate(),
		Path:             pathToJSON(g.Outline()),
	}
}

func pathToJSON(p *path.Data) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p.Iter() {
		seg := jsonSegment{Pts: make([][]float64, len(pts))}
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd = "M"
		case path.CmdLineTo:
			seg.Cmd = "L"
		case path.CmdQuadTo:
			seg.Cmd = "Q"
		case path.CmdCubeTo:
			seg.Cmd = "C"
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		for i, pt := range pts {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
