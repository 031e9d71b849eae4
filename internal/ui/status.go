package ui

// Status carries the per-frame readout shown by the HUD.
type Status struct {
	Generation int
	Population int
	TPS        int
	Paused     bool
}
