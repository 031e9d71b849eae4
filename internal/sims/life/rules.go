package life

import "golang.org/x/sync/errgroup"

// nextState applies the Game of Life rule to a cell with n live neighbors.
// The cases are ordered so the rule reads the way it is usually stated:
// underpopulation, survival, overpopulation, reproduction, default dead.
func nextState(alive bool, n int) uint8 {
	switch {
	case alive && n < 2:
		return 0
	case alive && (n == 2 || n == 3):
		return 1
	case alive && n > 3:
		return 0
	case !alive && n == 3:
		return 1
	default:
		return 0
	}
}

// liveNeighbors counts the live cells among the 8 toroidal neighbors of
// (x, y) in the current buffer.
func (l *Life) liveNeighbors(x, y int) int {
	w, h := l.cur.W, l.cur.H
	cells := l.cur.Cells()
	count := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := (x + dx + w) % w
			ny := (y + dy + h) % h
			count += int(cells[ny*w+nx])
		}
	}
	return count
}

// Step advances the simulation by one generation. Every cell of the next
// buffer is computed from a frozen snapshot of the current buffer, then the
// buffers trade roles. The swap is the only externally visible mutation.
func (l *Life) Step() {
	if l.workers > 1 {
		l.stepParallel()
	} else {
		l.stepRows(0, l.cur.H)
	}
	l.cur.Swap(l.nxt)
	l.gen++
}

// stepRows computes rows [y0, y1) of the next generation. Bands passed to
// concurrent callers must not overlap.
func (l *Life) stepRows(y0, y1 int) {
	w := l.cur.W
	cur := l.cur.Cells()
	nxt := l.nxt.Cells()
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			nxt[idx] = nextState(cur[idx] == 1, l.liveNeighbors(x, y))
		}
	}
}

// stepParallel partitions the rows into bands, one goroutine per band. Each
// worker reads only the frozen current buffer and writes a disjoint row range
// of the next buffer.
func (l *Life) stepParallel() {
	var (
		eg   errgroup.Group
		h    = l.cur.H
		band = (h + l.workers - 1) / l.workers
	)
	for start := 0; start < h; start += band {
		y0, y1 := start, min(start+band, h)
		eg.Go(func() error {
			l.stepRows(y0, y1)
			return nil
		})
	}
	// Workers never fail; Wait only joins them.
	_ = eg.Wait()
}
