package life

import (
	"math/rand/v2"

	"github.com/pkg/errors"

	"torus-life/internal/core"
	prng "torus-life/pkg/core"
)

// Life implements Conway's Game of Life on a fixed-size toroidal grid.
//
// The state lives in two equally sized row-major buffers. Only cur is
// readable from outside; nxt is scratch space for the generation being
// computed, and the two trade places after every Step.
type Life struct {
	cur *core.ByteGrid
	nxt *core.ByteGrid

	gen     int
	density float64
	workers int
	rnd     *rand.Rand
}

// New returns a Life simulation with the provided dimensions. Both buffers
// start fully dead. Dimensions must be positive.
func New(w, h int) (*Life, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Errorf("life: invalid grid dimensions %dx%d", w, h)
	}
	return &Life{
		cur:     core.NewByteGrid(w, h),
		nxt:     core.NewByteGrid(w, h),
		density: DefaultConfig().Density,
		workers: 1,
		rnd:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}, nil
}

// MustNew is like New but panics on invalid dimensions.
func MustNew(w, h int) *Life {
	l, err := New(w, h)
	if err != nil {
		panic(err)
	}
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cur.W, H: l.cur.H} }

// Width returns the grid width.
func (l *Life) Width() int { return l.cur.W }

// Height returns the grid height.
func (l *Life) Height() int { return l.cur.H }

// Cells exposes the current generation in row-major order. The slice stays
// valid only until the next Step; renderers should consume it within a frame.
func (l *Life) Cells() []uint8 { return l.cur.Cells() }

// Generation returns the number of completed steps since the last Clear or
// Reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the number of live cells in the current generation.
func (l *Life) Population() int {
	count := 0
	for _, c := range l.cur.Cells() {
		if c != 0 {
			count++
		}
	}
	return count
}

// SetAlive marks the cell at (x, y) alive. Out-of-bounds coordinates are
// ignored so callers can stamp shapes near the edges without clipping math.
func (l *Life) SetAlive(x, y int) {
	if l.cur.InBounds(x, y) {
		l.cur.Cells()[l.cur.Index(x, y)] = 1
	}
}

// SetDead marks the cell at (x, y) dead. Out-of-bounds coordinates are
// ignored.
func (l *Life) SetDead(x, y int) {
	if l.cur.InBounds(x, y) {
		l.cur.Cells()[l.cur.Index(x, y)] = 0
	}
}

// IsAlive reports whether the cell at (x, y) is alive in the current
// generation. Out-of-bounds coordinates read as dead.
func (l *Life) IsAlive(x, y int) bool {
	if !l.cur.InBounds(x, y) {
		return false
	}
	return l.cur.Cells()[l.cur.Index(x, y)] == 1
}

// Clear kills every cell in both buffers and resets the generation counter.
func (l *Life) Clear() {
	l.cur.Clear()
	l.nxt.Clear()
	l.gen = 0
}

// Randomize sets each cell alive independently with probability p, dead
// otherwise. p is clamped to [0, 1]. Successive calls draw from a shared
// source, so repeated calls produce different boards.
func (l *Life) Randomize(p float64) {
	prng.FillBernoulli(l.rnd, l.cur.Cells(), p)
	l.nxt.Clear()
	l.gen = 0
}

// Reset fills the board from a deterministic source at the configured
// density, so equal seeds reproduce equal boards.
func (l *Life) Reset(seed int64) {
	prng.FillBernoulli(prng.NewRNG(seed).Source(), l.cur.Cells(), l.density)
	l.nxt.Clear()
	l.gen = 0
}

// SetDensity changes the live-cell density used by Reset. Values outside
// [0, 1] are clamped.
func (l *Life) SetDensity(p float64) {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	l.density = p
}

// Density returns the live-cell density used by Reset.
func (l *Life) Density() float64 { return l.density }

// SetWorkers sets how many goroutines Step partitions the rows across.
// Values below 2 select the serial path.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.workers = n
}

// Seed stamps the pattern's live cells onto the current buffer, anchored at
// (ox, oy). Offsets that leave the grid wrap around the torus. Seeding is
// additive: cells already alive stay alive.
func (l *Life) Seed(p Pattern, ox, oy int) {
	cells := l.cur.Cells()
	for _, o := range p.offsets {
		x, y := l.cur.Wrap(ox+o.DX, oy+o.DY)
		cells[l.cur.Index(x, y)] = 1
	}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		c := FromMap(cfg)
		l := MustNew(c.Width, c.Height)
		l.SetDensity(c.Density)
		l.SetWorkers(c.Workers)
		return l
	})
}
