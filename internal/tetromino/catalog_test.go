package tetromino

import (
	"testing"

	"github.com/vovakirdan/tetris-wars/internal/core"
)

func TestLayoutEveryShapeHasFourDistinctCells(t *testing.T) {
	for _, s := range Shapes() {
		t.Run(s.String(), func(t *testing.T) {
			cells, _ := Layout(s)

			seen := make(map[core.Vec2]bool)
			for _, c := range cells {
				if seen[c] {
					t.Errorf("cell %v appears twice", c)
				}
				seen[c] = true
			}
			if len(seen) != 4 {
				t.Errorf("expected 4 distinct cells, got %d", len(seen))
			}
		})
	}
}

func TestLayoutPivots(t *testing.T) {
	tests := []struct {
		shape Shape
		pivot core.Vec2
	}{
		{ShapeZ, core.V(1, 1)},
		{ShapeS, core.V(1, 1)},
		{ShapeO, core.V(1.5, 0.5)},
		{ShapeL, core.V(1, 1)},
		{ShapeJ, core.V(1, 1)},
		{ShapeI, core.V(1.5, 1.5)},
		{ShapeT, core.V(1, 1)},
	}

	for _, tc := range tests {
		_, pivot := Layout(tc.shape)
		if pivot != tc.pivot {
			t.Errorf("Layout(%s) pivot = %v, expected %v", tc.shape, pivot, tc.pivot)
		}
	}
}

func TestCatalogIsExhaustive(t *testing.T) {
	if len(Shapes()) != 7 {
		t.Fatalf("expected 7 shapes, got %d", len(Shapes()))
	}
	for _, s := range Shapes() {
		if _, ok := catalog[s]; !ok {
			t.Errorf("shape %s missing from catalog", s)
		}
	}
}

func TestLocalOffsetsAreRelativeToPivot(t *testing.T) {
	offsets := LocalOffsets(ShapeI, 40)
	expected := [4]core.Vec2{core.V(-60, -20), core.V(-20, -20), core.V(20, -20), core.V(60, -20)}

	if offsets != expected {
		t.Errorf("LocalOffsets(I, 40) = %v, expected %v", offsets, expected)
	}

	// Corner-pivot shapes have one block exactly on the pivot
	for _, s := range []Shape{ShapeZ, ShapeS, ShapeL, ShapeJ, ShapeT} {
		found := false
		for _, off := range LocalOffsets(s, 40) {
			if off == (core.Vec2{}) {
				found = true
			}
		}
		if !found {
			t.Errorf("shape %s should have a block centred on its pivot", s)
		}
	}
}

func TestParseShape(t *testing.T) {
	for _, s := range Shapes() {
		got, err := ParseShape(s.String())
		if err != nil {
			t.Fatalf("ParseShape(%q) failed: %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseShape(%q) = %s, expected %s", s.String(), got, s)
		}
	}

	if got, err := ParseShape(" t "); err != nil || got != ShapeT {
		t.Errorf("ParseShape should ignore case and space, got %s, %v", got, err)
	}
	if _, err := ParseShape("Q"); err == nil {
		t.Error("ParseShape(\"Q\") should fail")
	}
}

func TestShapeNextWraps(t *testing.T) {
	if ShapeT.Next() != ShapeZ {
		t.Errorf("T.Next() = %s, expected Z", ShapeT.Next())
	}
	if ShapeZ.Next() != ShapeS {
		t.Errorf("Z.Next() = %s, expected S", ShapeZ.Next())
	}
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in       string
		expected Direction
		wantErr  bool
	}{
		{"", LeftToRight, false},
		{"left_to_right", LeftToRight, false},
		{"RTL", RightToLeft, false},
		{"right_to_left", RightToLeft, false},
		{"sideways", 0, true},
	}

	for _, tc := range tests {
		got, err := ParseDirection(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseDirection(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if !tc.wantErr && got != tc.expected {
			t.Errorf("ParseDirection(%q) = %s, expected %s", tc.in, got, tc.expected)
		}
	}
}

func TestDiagram(t *testing.T) {
	tests := []struct {
		shape    Shape
		expected []string
	}{
		{ShapeT, []string{"  []", "[][][]"}},
		{ShapeI, []string{"[][][][]"}},
		{ShapeO, []string{"  [][]", "  [][]"}},
		{ShapeL, []string{"  []", "  []", "  [][]"}},
	}

	for _, tc := range tests {
		t.Run(tc.shape.String(), func(t *testing.T) {
			got := Diagram(tc.shape)
			if len(got) != len(tc.expected) {
				t.Fatalf("Diagram(%s) = %q, expected %q", tc.shape, got, tc.expected)
			}
			for i := range got {
				if got[i] != tc.expected[i] {
					t.Errorf("Diagram(%s) row %d = %q, expected %q", tc.shape, i, got[i], tc.expected[i])
				}
			}
		})
	}
}
