// seehuhn.de/go/grays - an anti-aliased scan converter
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


// Command export renders every test scene with the grays scan converter and
// writes the results as PNG files. With -json, the scene definitions are
// also written as JSON, for use by external reference renderers.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/grays"
	"seehuhn.de/go/grays/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/output", "output directory for PNG files")
	jsonFile := flag.String("json", "", "write the scene definitions to this file")
	flag.Parse()

	if err := run(*outDir, *jsonFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(outDir, jsonFile string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var out struct {
		TestCases []jsonTestCase `json:"testcases"`
	}
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := writePNG(filepath.Join(outDir, name+".png"), tc); err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			out.TestCases = append(out.TestCases, toJSON(name, tc))
		}
	}

	if jsonFile == "" {
		return nil
	}
	f, err := os.Create(jsonFile)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writePNG(fname string, tc testcases.TestCase) error {
	img := image.NewGray(image.Rect(0, 0, tc.Width, tc.Height))
	err := grays.RenderExample(tc, img.Pix, tc.Width, tc.Height, img.Stride)
	if err != nil {
		return err
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

type jsonTestCase struct {
	Name       string        `json:"name"`
	Width      int           `json:"width"`
	Height     int           `json:"height"`
	CTM        []float64     `json:"ctm,omitempty"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
	Dash       []float64     `json:"dash,omitempty"`
	DashPhase  float64       `json:"dash_phase,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func toJSON(name string, tc testcases.TestCase) jsonTestCase {
	jtc := jsonTestCase{
		Name:   name,
		Width:  tc.Width,
		Height: tc.Height,
		Path:   pathToJSON(tc.Path.Iter()),
	}
	if tc.CTM != (matrix.Matrix{}) {
		jtc.CTM = tc.CTM[:]
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		jtc.Op = "fill"
		jtc.FillRule = "nonzero"
		if op.Rule == testcases.EvenOdd {
			jtc.FillRule = "evenodd"
		}
	case testcases.Stroke:
		jtc.Op = "stroke"
		jtc.LineWidth = op.Width
		jtc.LineCap = op.Cap.String()
		jtc.LineJoin = op.Join.String()
		jtc.MiterLimit = op.MiterLimit
		jtc.Dash = op.Dash
		jtc.DashPhase = op.DashPhase
	}
	return jtc
}

var cmdNames = map[path.Command]string{
	path.CmdMoveTo: "M",
	path.CmdLineTo: "L",
	path.CmdQuadTo: "Q",
	path.CmdCubeTo: "C",
	path.CmdClose:  "Z",
}

func pathToJSON(p path.Path) []jsonSegment {
	var segs []jsonSegment
	for cmd, pts := range p {
		seg := jsonSegment{Cmd: cmdNames[cmd], Pts: make([][]float64, len(pts))}
		for i, q := range pts {
			seg.Pts[i] = []float64{q.X, q.Y}
		}
		segs = append(segs, seg)
	}
	return segs
}
