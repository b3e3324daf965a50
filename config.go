package bootfmt

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DebugEnv is the environment variable that overrides Config.Debug.
const DebugEnv = "BOOTFMT_DEBUG"

// Config describes a Printer in YAML:
//
//	debug: "cc,linux"
//	heap_limit: 65536
//	force_line: true
type Config struct {
	// Debug is the debug word list, see [Printer.DebugEnabled].
	Debug string `yaml:"debug"`
	// HeapLimit caps heap allocations in bytes. Zero means unlimited.
	HeapLimit int `yaml:"heap_limit"`
	// ForceLine emits CR LF for every LF written to the console.
	ForceLine bool `yaml:"force_line"`
}

// LoadConfig decodes a Config from r. An empty document yields the zero
// Config. The DebugEnv environment variable, when set, replaces Debug.
func LoadConfig(r io.Reader) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if cfg.HeapLimit < 0 {
		return Config{}, fmt.Errorf("%w: negative heap_limit %d", ErrInvalidConfig, cfg.HeapLimit)
	}
	if v, ok := os.LookupEnv(DebugEnv); ok {
		cfg.Debug = v
	}
	return cfg, nil
}

// Printer returns a Printer writing to console as the Config describes.
func (c Config) Printer(console io.Writer) *Printer {
	p := &Printer{
		Console: console,
		Debug:   c.Debug,
	}
	if c.HeapLimit > 0 {
		p.Alloc = &Budget{Limit: c.HeapLimit}
	}
	if c.ForceLine {
		p.Console = &LineWriter{W: console}
	}
	return p
}
