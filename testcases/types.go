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

// Package testcases holds named trapezoid shapes shared by tests,
// benchmarks and the reference generators.
package testcases

import "seehuhn.de/go/trapezoid"

// TestCase is a shape drawn onto a surface of a given size.
type TestCase struct {
	Name   string // lowercase a-z, 0-9 and _ only
	Width  int    // surface width in pixels
	Height int    // surface height in pixels
	Shape  trapezoid.Shape
}

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"cot45":      cot45Cases,
	"cot30":      cot30Cases,
	"degenerate": degenerateCases,
}

var (
	cot45 = trapezoid.Shape{Cot: trapezoid.Cot45}
	cot30 = trapezoid.Shape{Cot: trapezoid.Cot30}
)

var cot45Cases = []TestCase{
	{Name: "wide", Width: 320, Height: 48, Shape: cot45},
	{Name: "tab", Width: 120, Height: 32, Shape: cot45},
	{Name: "square_top", Width: 128, Height: 42, Shape: cot45},
	{Name: "tall", Width: 200, Height: 96, Shape: cot45},
}

var cot30Cases = []TestCase{
	{Name: "wide", Width: 320, Height: 48, Shape: cot30},
	{Name: "tab", Width: 160, Height: 24, Shape: cot30},
	{Name: "thin", Width: 256, Height: 8, Shape: cot30},
}

var degenerateCases = []TestCase{
	{Name: "crossed", Width: 50, Height: 30, Shape: cot45},
	{Name: "clamped", Width: 50, Height: 30, Shape: trapezoid.Shape{Cot: trapezoid.Cot45, Clamp: true}},
	{Name: "peak", Width: 96, Height: 48, Shape: cot45},
	{Name: "rectangle", Width: 64, Height: 32},
}
