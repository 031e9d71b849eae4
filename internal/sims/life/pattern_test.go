package life

import (
	"slices"
	"testing"
)

// liveSet collects the live cells of the current generation.
func liveSet(l *Life) map[Offset]bool {
	set := map[Offset]bool{}
	for y := 0; y < l.Height(); y++ {
		for x := 0; x < l.Width(); x++ {
			if l.IsAlive(x, y) {
				set[Offset{x, y}] = true
			}
		}
	}
	return set
}

// normalize shifts a cell set so its bounding box starts at the origin and
// returns the shift that was applied.
func normalize(set map[Offset]bool) (map[Offset]bool, Offset) {
	minX, minY := 1<<30, 1<<30
	for o := range set {
		if o.DX < minX {
			minX = o.DX
		}
		if o.DY < minY {
			minY = o.DY
		}
	}
	out := make(map[Offset]bool, len(set))
	for o := range set {
		out[Offset{o.DX - minX, o.DY - minY}] = true
	}
	return out, Offset{minX, minY}
}

func sameSet(a, b map[Offset]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for o := range a {
		if !b[o] {
			return false
		}
	}
	return true
}

func TestStillLifesStable(t *testing.T) {
	for name, p := range Catalog() {
		if p.Kind() != KindStillLife {
			continue
		}
		l := mustBoard(t, 16, 16)
		l.Seed(p, 5, 5)
		before := append([]uint8(nil), l.Cells()...)

		l.Step()
		if !slices.Equal(before, l.Cells()) {
			t.Fatalf("%s changed after one step", name)
		}
	}
}

func TestBlinkerOscillation(t *testing.T) {
	l := mustBoard(t, 5, 5)
	l.Seed(Blinker, 1, 2)

	l.Step()
	vertical := map[Offset]bool{{2, 1}: true, {2, 2}: true, {2, 3}: true}
	if !sameSet(liveSet(l), vertical) {
		t.Fatal("horizontal blinker must turn vertical around its middle cell")
	}

	l.Step()
	horizontal := map[Offset]bool{{1, 2}: true, {2, 2}: true, {3, 2}: true}
	if !sameSet(liveSet(l), horizontal) {
		t.Fatal("blinker must return to its original row after two steps")
	}
}

func TestOscillatorPeriods(t *testing.T) {
	periods := []struct {
		p      Pattern
		period int
	}{
		{Blinker, 2},
		{Toad, 2},
		{Beacon, 2},
		{Pulsar, 3},
	}
	for _, c := range periods {
		l := mustBoard(t, 40, 40)
		l.Seed(c.p, 13, 13)
		before := append([]uint8(nil), l.Cells()...)

		for i := 0; i < c.period; i++ {
			l.Step()
		}
		if !slices.Equal(before, l.Cells()) {
			t.Fatalf("%s did not return to its seed after %d steps", c.p.Name(), c.period)
		}
	}
}

func TestGliderTranslation(t *testing.T) {
	l := mustBoard(t, 12, 12)
	l.Seed(Glider, 2, 2)
	before := liveSet(l)

	for i := 0; i < 4; i++ {
		l.Step()
	}

	expected := map[Offset]bool{}
	for o := range before {
		expected[Offset{o.DX + 1, o.DY + 1}] = true
	}
	if !sameSet(liveSet(l), expected) {
		t.Fatal("glider must reappear shifted by (1,1) after four steps")
	}
}

func TestLWSSTranslatesHorizontally(t *testing.T) {
	l := mustBoard(t, 24, 16)
	l.Seed(LWSS, 12, 6)
	beforeShape, beforeAnchor := normalize(liveSet(l))

	for i := 0; i < 4; i++ {
		l.Step()
	}
	afterShape, afterAnchor := normalize(liveSet(l))

	if !sameSet(beforeShape, afterShape) {
		t.Fatal("LWSS must reproduce its shape after four steps")
	}
	dx := afterAnchor.DX - beforeAnchor.DX
	dy := afterAnchor.DY - beforeAnchor.DY
	if dy != 0 || (dx != 2 && dx != -2) {
		t.Fatalf("LWSS moved by (%d,%d), expected two cells horizontally", dx, dy)
	}
}

func TestSeedWrapsAroundEdges(t *testing.T) {
	l := mustBoard(t, 5, 5)
	l.Seed(Block, 4, 4)

	for _, o := range []Offset{{4, 4}, {0, 4}, {4, 0}, {0, 0}} {
		if !l.IsAlive(o.DX, o.DY) {
			t.Fatalf("cell (%d,%d) must be alive after wrapped seeding", o.DX, o.DY)
		}
	}
	if l.Population() != 4 {
		t.Fatalf("population %d after seeding a block, expected 4", l.Population())
	}
}

func TestSeedWrapsNegativeOrigins(t *testing.T) {
	l := mustBoard(t, 8, 8)
	l.Seed(Blinker, -1, 0)

	for _, o := range []Offset{{7, 0}, {0, 0}, {1, 0}} {
		if !l.IsAlive(o.DX, o.DY) {
			t.Fatalf("cell (%d,%d) must be alive for a negative anchor", o.DX, o.DY)
		}
	}
}

func TestSeedIsAdditive(t *testing.T) {
	l := mustBoard(t, 10, 10)
	l.Seed(Blinker, 2, 2)
	l.Seed(Block, 2, 2)

	// The overlap at (2,2)..(3,2) must survive both stamps.
	for _, o := range []Offset{{2, 2}, {3, 2}, {4, 2}, {2, 3}, {3, 3}} {
		if !l.IsAlive(o.DX, o.DY) {
			t.Fatalf("cell (%d,%d) lost during additive seeding", o.DX, o.DY)
		}
	}
}

func TestParsePattern(t *testing.T) {
	p := parsePattern("test", KindMethuselah, ".#\n#\nx#", '#')
	expected := []Offset{{1, 0}, {0, 1}, {1, 2}}
	got := p.Offsets()
	if len(got) != len(expected) {
		t.Fatalf("parsed %d offsets, expected %d", len(got), len(expected))
	}
	for i, o := range expected {
		if got[i] != o {
			t.Fatalf("offset %d = %+v, expected %+v", i, got[i], o)
		}
	}

	if n := len(RPentomino.Offsets()); n != 5 {
		t.Fatalf("r-pentomino has %d cells, expected 5", n)
	}
	if n := len(Diehard.Offsets()); n != 7 {
		t.Fatalf("diehard has %d cells, expected 7", n)
	}
	if n := len(Acorn.Offsets()); n != 7 {
		t.Fatalf("acorn has %d cells, expected 7", n)
	}
}

func TestCatalog(t *testing.T) {
	if _, ok := Lookup("glider"); !ok {
		t.Fatal("glider missing from catalog")
	}
	if _, ok := Lookup("nope"); ok {
		t.Fatal("Lookup must miss unknown names")
	}

	kinds := map[Kind]int{}
	for name, p := range Catalog() {
		if len(p.Offsets()) == 0 {
			t.Fatalf("pattern %s has no cells", name)
		}
		if p.Name() != name {
			t.Fatalf("pattern %s registered under %q", p.Name(), name)
		}
		kinds[p.Kind()]++
	}
	if kinds[KindStillLife] != 5 || kinds[KindOscillator] != 5 ||
		kinds[KindSpaceship] != 4 || kinds[KindMethuselah] != 3 {
		t.Fatalf("unexpected catalog composition: %v", kinds)
	}

	// Offsets returns a defensive copy.
	offs := Block.Offsets()
	offs[0] = Offset{99, 99}
	if Block.Offsets()[0] == (Offset{99, 99}) {
		t.Fatal("mutating the returned offsets must not affect the catalog")
	}
}

func TestShowcaseSeedsBoard(t *testing.T) {
	l := mustBoard(t, 120, 120)
	Showcase(l)
	if l.Population() == 0 {
		t.Fatal("showcase must leave live cells on a full-size board")
	}
	if !l.IsAlive(5, 5) {
		t.Fatal("showcase must place the block anchor")
	}

	small := mustBoard(t, 20, 20)
	Showcase(small)
	if small.Population() == 0 {
		t.Fatal("showcase must seed small boards too")
	}
}
