package life

import "strings"

// Kind classifies a pattern by how it behaves on an unbounded board.
type Kind string

const (
	// KindStillLife marks patterns that never change in isolation.
	KindStillLife Kind = "still-life"
	// KindOscillator marks patterns that repeat after a fixed period.
	KindOscillator Kind = "oscillator"
	// KindSpaceship marks patterns that repeat translated across the grid.
	KindSpaceship Kind = "spaceship"
	// KindMethuselah marks small seeds with long unstable evolutions.
	KindMethuselah Kind = "methuselah"
)

// Offset is a cell position relative to a pattern's anchor.
type Offset struct {
	DX int
	DY int
}

// Pattern is an immutable set of live-cell offsets describing a classic
// life form.
type Pattern struct {
	name    string
	kind    Kind
	offsets []Offset
}

// Name returns the catalog identifier of the pattern.
func (p Pattern) Name() string { return p.name }

// Kind returns the pattern's behavioral category.
func (p Pattern) Kind() Kind { return p.kind }

// Offsets returns a copy of the pattern's live-cell offsets.
func (p Pattern) Offsets() []Offset {
	return append([]Offset(nil), p.offsets...)
}

func pattern(name string, kind Kind, offsets ...Offset) Pattern {
	return Pattern{name: name, kind: kind, offsets: offsets}
}

// parsePattern builds a pattern from an ASCII block. Each line is a row and
// marker identifies live cells; every other character is dead. Short rows
// contribute no cells past their length.
func parsePattern(name string, kind Kind, art string, marker rune) Pattern {
	var offsets []Offset
	for dy, line := range strings.Split(art, "\n") {
		for dx, ch := range line {
			if ch == marker {
				offsets = append(offsets, Offset{DX: dx, DY: dy})
			}
		}
	}
	return Pattern{name: name, kind: kind, offsets: offsets}
}

// Still lifes.
var (
	Block = pattern("block", KindStillLife,
		Offset{0, 0}, Offset{1, 0}, Offset{0, 1}, Offset{1, 1})
	Beehive = pattern("beehive", KindStillLife,
		Offset{1, 0}, Offset{2, 0}, Offset{0, 1}, Offset{3, 1}, Offset{1, 2}, Offset{2, 2})
	Loaf = pattern("loaf", KindStillLife,
		Offset{1, 0}, Offset{2, 0}, Offset{0, 1}, Offset{3, 1}, Offset{1, 2}, Offset{3, 2}, Offset{2, 3})
	Boat = pattern("boat", KindStillLife,
		Offset{0, 0}, Offset{1, 0}, Offset{0, 1}, Offset{2, 1}, Offset{1, 2})
	Tub = pattern("tub", KindStillLife,
		Offset{1, 0}, Offset{0, 1}, Offset{2, 1}, Offset{1, 2})
)

// Oscillators.
var (
	Blinker = pattern("blinker", KindOscillator,
		Offset{0, 0}, Offset{1, 0}, Offset{2, 0})
	Toad = pattern("toad", KindOscillator,
		Offset{1, 0}, Offset{2, 0}, Offset{3, 0}, Offset{0, 1}, Offset{1, 1}, Offset{2, 1})
	Beacon = pattern("beacon", KindOscillator,
		Offset{0, 0}, Offset{1, 0}, Offset{0, 1}, Offset{1, 1},
		Offset{2, 2}, Offset{3, 2}, Offset{2, 3}, Offset{3, 3})
	Pulsar = pattern("pulsar", KindOscillator,
		Offset{2, 0}, Offset{3, 0}, Offset{4, 0}, Offset{8, 0}, Offset{9, 0}, Offset{10, 0},
		Offset{0, 2}, Offset{5, 2}, Offset{7, 2}, Offset{12, 2},
		Offset{0, 3}, Offset{5, 3}, Offset{7, 3}, Offset{12, 3},
		Offset{0, 4}, Offset{5, 4}, Offset{7, 4}, Offset{12, 4},
		Offset{2, 5}, Offset{3, 5}, Offset{4, 5}, Offset{8, 5}, Offset{9, 5}, Offset{10, 5},
		Offset{2, 7}, Offset{3, 7}, Offset{4, 7}, Offset{8, 7}, Offset{9, 7}, Offset{10, 7},
		Offset{0, 8}, Offset{5, 8}, Offset{7, 8}, Offset{12, 8},
		Offset{0, 9}, Offset{5, 9}, Offset{7, 9}, Offset{12, 9},
		Offset{0, 10}, Offset{5, 10}, Offset{7, 10}, Offset{12, 10},
		Offset{2, 12}, Offset{3, 12}, Offset{4, 12}, Offset{8, 12}, Offset{9, 12}, Offset{10, 12})
	Pentadecathlon = pattern("pentadecathlon", KindOscillator,
		Offset{1, 0}, Offset{2, 0}, Offset{1, 1}, Offset{2, 1},
		Offset{1, 3}, Offset{2, 3}, Offset{1, 4}, Offset{2, 4},
		Offset{1, 5}, Offset{2, 5}, Offset{1, 6}, Offset{2, 6},
		Offset{1, 8}, Offset{2, 8}, Offset{1, 9}, Offset{2, 9})
)

// Spaceships. The glider travels one cell down and right every four
// generations; the LWSS travels two cells horizontally every four.
var (
	Glider = pattern("glider", KindSpaceship,
		Offset{1, 0}, Offset{2, 1}, Offset{0, 2}, Offset{1, 2}, Offset{2, 2})
	LWSS = pattern("lwss", KindSpaceship,
		Offset{1, 0}, Offset{4, 0}, Offset{0, 1}, Offset{0, 2}, Offset{4, 2},
		Offset{0, 3}, Offset{1, 3}, Offset{2, 3}, Offset{3, 3})
	MWSS = parsePattern("mwss", KindSpaceship,
		"..####.\n.#....#\n#.....#\n#....#.\n.#####.", '#')
	HWSS = parsePattern("hwss", KindSpaceship,
		"..#####.\n.#.....#\n#......#\n#.....#.\n.######.", '#')
)

// Methuselahs.
var (
	RPentomino = parsePattern("r-pentomino", KindMethuselah,
		".##\n##.\n.#.", '#')
	Diehard = parsePattern("diehard", KindMethuselah,
		"......#.\n##......\n.#...###", '#')
	Acorn = parsePattern("acorn", KindMethuselah,
		".#.....\n...#...\n##..###", '#')
)

var catalog = map[string]Pattern{}

func init() {
	for _, p := range []Pattern{
		Block, Beehive, Loaf, Boat, Tub,
		Blinker, Toad, Beacon, Pulsar, Pentadecathlon,
		Glider, LWSS, MWSS, HWSS,
		RPentomino, Diehard, Acorn,
	} {
		catalog[p.name] = p
	}
}

// Lookup returns the catalog pattern registered under name.
func Lookup(name string) (Pattern, bool) {
	p, ok := catalog[name]
	return p, ok
}

// Catalog returns every registered pattern, keyed by name.
func Catalog() map[string]Pattern {
	out := make(map[string]Pattern, len(catalog))
	for name, p := range catalog {
		out[name] = p
	}
	return out
}
