package app

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"
)

// Config represents the command-line parameters for the frontends.
type Config struct {
	Seed    int64  `json:"seed"`
	TPS     int    `json:"tps"`
	Scale   int    `json:"scale"`
	LogFile string `json:"log_file"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{Seed: 0, TPS: 12, Scale: 12}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the population RNG (0 picks one from the clock)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier (GUI only)")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "append logs to this file")
}

// RNGSeed returns the configured seed, or one derived from the clock when the
// seed is 0.
func (c *Config) RNGSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// Load overlays values from a JSON file onto c. Keys missing from the file
// keep their current value.
func (c *Config) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := json.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Parse loads an optional -config file and then applies the flags in args,
// so the command line wins over the file.
func (c *Config) Parse(fs *flag.FlagSet, args []string) error {
	if path := configPath(args); path != "" {
		if err := c.Load(path); err != nil {
			return err
		}
	}
	c.Bind(fs)
	fs.String("config", "", "JSON file with default settings")
	return fs.Parse(args)
}

func configPath(args []string) string {
	for i, arg := range args {
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, value, ok := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name != "config" {
			continue
		}
		if ok {
			return value
		}
		if i+1 < len(args) {
			return args[i+1]
		}
	}
	return ""
}
