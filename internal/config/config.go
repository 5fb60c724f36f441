package config

import (
	"os"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	// Extra include roots, relative to the project path unless absolute.
	// Quoted includes fall back to these after the including file's own
	// directory; angle includes search only these.
	IncludeRoots []string `toml:"include_roots"`

	Extensions []string `toml:"extensions"`
	Exclude    Exclude  `toml:"exclude"`
	Workers    int      `toml:"workers"`
	Watch      Watch    `toml:"watch"`
	Output     Output   `toml:"output"`
	History    History  `toml:"history"`
	Alerts     Alerts   `toml:"alerts"`
}

type Exclude struct {
	Dirs  []string `toml:"dirs"`
	Files []string `toml:"files"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
}

type Output struct {
	TSV string `toml:"tsv"`
	DOT string `toml:"dot"`
}

type History struct {
	Path string `toml:"path"`
}

type Alerts struct {
	Terminal bool `toml:"terminal"`
}

// DefaultExtensions is the recognized C/C++ source and header set.
var DefaultExtensions = []string{
	".c", ".cc", ".cpp", ".cxx", ".h", ".hh", ".hpp", ".hxx", ".inl", ".ipp",
}

func Default() *Config {
	cfg := &Config{Alerts: Alerts{Terminal: true}}
	cfg.applyDefaults()
	return cfg
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, err
	}

	if !meta.IsDefined("alerts", "terminal") {
		cfg.Alerts.Terminal = true
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// LoadOrDefault returns built-in defaults when the config file is absent.
// A file that exists but fails to decode is still an error.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if len(c.Extensions) == 0 {
		c.Extensions = append([]string(nil), DefaultExtensions...)
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Watch.Debounce == 0 {
		c.Watch.Debounce = 500 * time.Millisecond
	}
}
