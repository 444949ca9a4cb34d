package core

import "testing"

func TestByteGridBounds(t *testing.T) {
	g := NewByteGrid(4, 3)
	g.Set(3, 2, 9)
	g.Set(4, 0, 1)
	g.Set(-1, 0, 1)
	if g.At(3, 2) != 9 {
		t.Fatalf("At(3,2) = %d, want 9", g.At(3, 2))
	}
	if g.At(4, 0) != 0 || g.At(-1, 0) != 0 {
		t.Fatal("out-of-bounds reads must return zero")
	}
	sum := 0
	for _, v := range g.Cells() {
		sum += int(v)
	}
	if sum != 9 {
		t.Fatalf("out-of-bounds writes leaked into the grid: sum=%d", sum)
	}
}

func TestByteGridResize(t *testing.T) {
	g := NewByteGrid(0, 0)
	if g.W != 1 || g.H != 1 {
		t.Fatalf("zero-sized grid should clamp to 1x1, got %dx%d", g.W, g.H)
	}
	g.Resize(5, 2)
	if len(g.Cells()) != 10 {
		t.Fatalf("len(Cells()) = %d, want 10", len(g.Cells()))
	}
	g.Set(1, 1, 3)
	g.Resize(5, 2)
	if g.At(1, 1) != 0 {
		t.Fatal("Resize with the same size must clear the grid")
	}
}
