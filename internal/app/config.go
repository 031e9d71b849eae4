package app

import (
	"encoding/json"
	"flag"
	"os"
	"strconv"

	"github.com/pkg/errors"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim     string  `json:"sim"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Scale   int     `json:"scale"`
	Seed    int64   `json:"seed"`
	Density float64 `json:"density"`
	Workers int     `json:"workers"`
	Start   string  `json:"start"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Width:   120,
		Height:  120,
		Scale:   4,
		Seed:    42,
		Density: 0.20,
		Workers: 1,
		Start:   "showcase",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random boards")
	fs.Float64Var(&c.Density, "density", c.Density, "live-cell density for random boards")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation step")
	fs.StringVar(&c.Start, "start", c.Start, "initial board: showcase or random")
}

// Load merges values from a JSON file over the current configuration.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read config %s", path)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return errors.Wrapf(err, "parse config %s", path)
	}
	return nil
}

// Map converts the config into the key/value form sim factories accept.
func (c *Config) Map() map[string]string {
	return map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
		"workers": strconv.Itoa(c.Workers),
	}
}
