package core

import "testing"

func TestWrapEuclidean(t *testing.T) {
	g := NewByteGrid(5, 4)

	cases := []struct {
		x, y   int
		wx, wy int
	}{
		{0, 0, 0, 0},
		{4, 3, 4, 3},
		{5, 4, 0, 0},
		{-1, -1, 4, 3},
		{-5, -4, 0, 0},
		{-6, -5, 4, 3},
		{12, 11, 2, 3},
	}
	for _, c := range cases {
		wx, wy := g.Wrap(c.x, c.y)
		if wx != c.wx || wy != c.wy {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.x, c.y, wx, wy, c.wx, c.wy)
		}
	}
}

func TestInBounds(t *testing.T) {
	g := NewByteGrid(3, 3)
	if !g.InBounds(0, 0) || !g.InBounds(2, 2) {
		t.Fatal("corner coordinates must be in bounds")
	}
	for _, c := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if g.InBounds(c[0], c[1]) {
			t.Fatalf("(%d,%d) must be out of bounds", c[0], c[1])
		}
	}
}

func TestIndexRowMajor(t *testing.T) {
	g := NewByteGrid(7, 3)
	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0,0) = %d", got)
	}
	if got := g.Index(6, 0); got != 6 {
		t.Fatalf("Index(6,0) = %d", got)
	}
	if got := g.Index(2, 1); got != 9 {
		t.Fatalf("Index(2,1) = %d", got)
	}
}

func TestSwapExchangesBuffers(t *testing.T) {
	a := NewByteGrid(4, 4)
	b := NewByteGrid(4, 4)
	for i := range a.Cells() {
		a.Cells()[i] = 1
	}

	a.Swap(b)

	for i, v := range a.Cells() {
		if v != 0 {
			t.Fatalf("a[%d] = %d after swap, expected 0", i, v)
		}
	}
	for i, v := range b.Cells() {
		if v != 1 {
			t.Fatalf("b[%d] = %d after swap, expected 1", i, v)
		}
	}
}

func TestClear(t *testing.T) {
	g := NewByteGrid(3, 3)
	g.Cells()[4] = 1
	g.Clear()
	for i, v := range g.Cells() {
		if v != 0 {
			t.Fatalf("cell %d = %d after Clear", i, v)
		}
	}
}
