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


package grays

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/image/math/fixed"
)

// logSink records the calls made by decompose.
type logSink struct {
	calls []string
	fail  int // return an error from call number fail, if positive
}

var errStop = errors.New("stop")

func (s *logSink) add(format string, args ...any) error {
	s.calls = append(s.calls, fmt.Sprintf(format, args...))
	if len(s.calls) == s.fail {
		return errStop
	}
	return nil
}

// pixel coordinates, for readability
func px(p fixed.Point26_6) string {
	return fmt.Sprintf("%g,%g", float64(p.X)/64, float64(p.Y)/64)
}

func (s *logSink) moveTo(to fixed.Point26_6) error { return s.add("M %s", px(to)) }
func (s *logSink) lineTo(to fixed.Point26_6) error { return s.add("L %s", px(to)) }

func (s *logSink) conicTo(c, to fixed.Point26_6) error {
	return s.add("Q %s %s", px(c), px(to))
}

func (s *logSink) cubicTo(c1, c2, to fixed.Point26_6) error {
	return s.add("C %s %s %s", px(c1), px(c2), px(to))
}

func outline(tags []Tag, coords ...float64) *Outline {
	o := &Outline{Tags: tags}
	for i := 0; i < len(coords); i += 2 {
		o.Points = append(o.Points, pt26(coords[i], coords[i+1]))
	}
	o.Contours = []int{len(o.Points) - 1}
	return o
}

func TestDecompose(t *testing.T) {
	const (
		on = TagOn
		q  = TagConic
		c  = TagCubic
	)
	cases := []struct {
		name string
		o    *Outline
		want []string
	}{
		{
			name: "triangle",
			o:    outline([]Tag{on, on, on}, 0, 0, 4, 0, 4, 4),
			want: []string{"M 0,0", "L 4,0", "L 4,4", "L 0,0"},
		},
		{
			name: "conic",
			o:    outline([]Tag{on, q, on}, 0, 0, 2, 2, 4, 0),
			want: []string{"M 0,0", "Q 2,2 4,0", "L 0,0"},
		},
		{
			name: "conic run",
			o:    outline([]Tag{on, q, q, on}, 0, 0, 2, 2, 4, 2, 6, 0),
			want: []string{"M 0,0", "Q 2,2 3,2", "Q 4,2 6,0", "L 0,0"},
		},
		{
			name: "closing conic",
			o:    outline([]Tag{on, on, q}, 0, 0, 4, 0, 4, 4),
			want: []string{"M 0,0", "L 4,0", "Q 4,4 0,0"},
		},
		{
			name: "leading conic, last on",
			o:    outline([]Tag{q, on, on}, 2, 2, 4, 0, 0, 0),
			want: []string{"M 0,0", "Q 2,2 4,0", "L 0,0"},
		},
		{
			name: "leading and trailing conic",
			o:    outline([]Tag{q, on, q}, 2, 2, 4, 0, 0, 4),
			want: []string{"M 1,3", "Q 2,2 4,0", "Q 0,4 1,3"},
		},
		{
			name: "cubic",
			o:    outline([]Tag{on, c, c, on}, 0, 0, 1, 2, 3, 2, 4, 0),
			want: []string{"M 0,0", "C 1,2 3,2 4,0", "L 0,0"},
		},
		{
			name: "closing cubic",
			o:    outline([]Tag{on, on, c, c}, 0, 0, 4, 0, 4, 4, 0, 4),
			want: []string{"M 0,0", "L 4,0", "C 4,4 0,4 0,0"},
		},
		{
			name: "tag flags ignored",
			o:    outline([]Tag{on | 0x80, on | 0x04, on}, 0, 0, 4, 0, 4, 4),
			want: []string{"M 0,0", "L 4,0", "L 4,4", "L 0,0"},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &logSink{}
			if err := decompose(tc.o, s); err != nil {
				t.Fatal(err)
			}
			diff(t, tc.want, s.calls)
		})
	}
}

// TestDecomposeLeadingConicMoves checks that a contour which starts with a
// control point, and ends on the curve, uses its last point as the start,
// so that one point fewer is visited as a segment end point.
func TestDecomposeLeadingConicMoves(t *testing.T) {
	o := outline([]Tag{TagConic, TagOn, TagOn, TagOn}, 2, -2, 4, 0, 4, 4, 0, 0)
	s := &logSink{}
	if err := decompose(o, s); err != nil {
		t.Fatal(err)
	}
	if len(s.calls) != 4 {
		t.Fatalf("got %d calls, want 4: %v", len(s.calls), s.calls)
	}
	if s.calls[0] != "M 0,0" {
		t.Errorf("contour starts with %q, want \"M 0,0\"", s.calls[0])
	}
}

func TestDecomposeInvalid(t *testing.T) {
	const (
		on = TagOn
		q  = TagConic
		c  = TagCubic
	)
	cases := []struct {
		name string
		o    *Outline
	}{
		{"leading cubic", outline([]Tag{c, c, on}, 0, 0, 1, 1, 2, 0)},
		{"single cubic control", outline([]Tag{on, c, on}, 0, 0, 1, 1, 2, 0)},
		{"cubic then conic", outline([]Tag{on, c, c, q, on}, 0, 0, 1, 1, 2, 1, 3, 1, 4, 0)},
		{"three cubic controls", outline([]Tag{on, c, c, c, on}, 0, 0, 1, 1, 2, 1, 3, 1, 4, 0)},
		{"conic then cubic", outline([]Tag{on, q, c, c, on}, 0, 0, 1, 1, 2, 1, 3, 1, 4, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := decompose(tc.o, &logSink{})
			if !errors.Is(err, ErrInvalidOutline) {
				t.Errorf("got %v, want ErrInvalidOutline", err)
			}
		})
	}
}

func TestDecomposeSinkError(t *testing.T) {
	o := outline([]Tag{TagOn, TagOn, TagOn}, 0, 0, 4, 0, 4, 4)
	s := &logSink{fail: 2}
	err := decompose(o, s)
	if err != errStop {
		t.Errorf("got %v, want errStop", err)
	}
	if len(s.calls) != 2 {
		t.Errorf("got %d calls after the error, want 2", len(s.calls))
	}
}

func TestDecomposeContours(t *testing.T) {
	o := &Outline{}
	addRect(o, 0, 0, 1, 1)
	addRect(o, 2, 2, 3, 3)
	s := &logSink{}
	if err := decompose(o, s); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"M 0,0", "L 1,0", "L 1,1", "L 0,1", "L 0,0",
		"M 2,2", "L 3,2", "L 3,3", "L 2,3", "L 2,2",
	}
	diff(t, want, s.calls)
}
