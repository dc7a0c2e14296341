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


// Command genpdf writes every test scene as a single-page PDF file and asks
// Ghostscript to rasterize it, producing the reference coverage images in
// testdata/reference. Run it from the module root directory.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"os/exec"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/grays/testcases"
)

func main() {
	outDir := flag.String("o", "testdata/reference", "output directory")
	only := flag.String("only", "", "comma-separated list of categories to generate")
	keep := flag.Bool("keep", false, "keep the intermediate PDF files")
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var wanted map[string]bool
	if *only != "" {
		wanted = make(map[string]bool)
		for _, c := range strings.Split(*only, ",") {
			wanted[strings.TrimSpace(c)] = true
		}
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		if wanted != nil && !wanted[category] {
			continue
		}
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			pdfPath := filepath.Join(*outDir, name+".pdf")
			pngPath := filepath.Join(*outDir, name+".png")

			err := writePDF(tc, pdfPath)
			if err == nil {
				err = renderPNG(pdfPath, pngPath)
			}
			if !*keep {
				os.Remove(pdfPath)
			}
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
				os.Exit(1)
			}
		}
	}
}

// writePDF draws the scene in white on a black page, so that the gray
// value of every pixel is its coverage.
func writePDF(tc testcases.TestCase, pdfPath string) error {
	paper := &pdf.Rectangle{
		URx: float64(tc.Width),
		URy: float64(tc.Height),
	}
	page, err := document.CreateSinglePage(pdfPath, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	page.SetFillColor(color.DeviceGray(0))
	page.Rectangle(0, 0, float64(tc.Width), float64(tc.Height))
	page.Fill()

	// the scenes use device coordinates with y pointing down
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, float64(tc.Height)})
	if tc.CTM != (matrix.Matrix{}) && tc.CTM != matrix.Identity {
		page.Transform(tc.CTM)
	}

	page.SetFillColor(color.DeviceGray(1))
	page.SetStrokeColor(color.DeviceGray(1))
	if op, ok := tc.Op.(testcases.Stroke); ok {
		page.SetLineWidth(op.Width)
		page.SetLineCap(op.Cap)
		page.SetLineJoin(op.Join)
		page.SetMiterLimit(op.MiterLimit)
		if len(op.Dash) > 0 {
			page.SetLineDash(op.Dash, op.DashPhase)
		}
	}

	// PDF has no quadratic curves
	for cmd, pts := range tc.Path.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			page.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			page.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			page.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		if op.Rule == testcases.EvenOdd {
			page.FillEvenOdd()
		} else {
			page.Fill()
		}
	case testcases.Stroke:
		page.Stroke()
	}

	return page.Close()
}

// renderPNG converts the PDF into an 8-bit gray PNG at one pixel per point,
// with 4x4 anti-aliasing.
func renderPNG(pdfPath, pngPath string) error {
	cmd := exec.Command(
		"gs", "-q",
		"-sDEVICE=pnggray",
		"-r72",
		"-dGraphicsAlphaBits=4",
		"-o", pngPath,
		pdfPath,
	)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
