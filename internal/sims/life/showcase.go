package life

// Showcase seeds the classic demonstration board: a row of still lifes, a
// row of oscillators, a row of spaceships, and a few methuselahs that slowly
// take over the torus. Grids smaller than 120x120 get a reduced layout.
func Showcase(l *Life) {
	l.Clear()
	if l.Width() < 120 || l.Height() < 120 {
		showcaseSmall(l)
		return
	}

	l.Seed(Block, 5, 5)
	l.Seed(Beehive, 15, 5)
	l.Seed(Loaf, 30, 5)
	l.Seed(Boat, 45, 5)
	l.Seed(Tub, 60, 5)

	l.Seed(Blinker, 10, 30)
	l.Seed(Toad, 20, 30)
	l.Seed(Beacon, 30, 28)
	l.Seed(Pulsar, 60, 25)
	l.Seed(Pentadecathlon, 90, 15)

	l.Seed(Glider, 5, 80)
	l.Seed(LWSS, 20, 85)
	l.Seed(MWSS, 40, 85)
	l.Seed(HWSS, 70, 85)

	l.Seed(RPentomino, 100, 60)
	l.Seed(Diehard, 5, 100)
	l.Seed(Acorn, 80, 90)
}

// showcaseSmall places a handful of patterns that fit modest grids.
func showcaseSmall(l *Life) {
	w, h := l.Width(), l.Height()
	if w < 10 || h < 10 {
		l.Seed(Blinker, w/2-1, h/2)
		return
	}
	l.Seed(Glider, 1, 1)
	l.Seed(Blinker, w/2, h/4)
	l.Seed(Block, w/4, 3*h/4)
	if w >= 20 && h >= 20 {
		l.Seed(Toad, 3*w/4, h/2)
		l.Seed(RPentomino, w/2, 3*h/4)
	}
}
