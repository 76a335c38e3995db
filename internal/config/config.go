// Package config holds the settings of the conargs command line tool
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/BurntSushi/toml"
)

const FileName = ".conargs.toml"

var ErrInvalid = errors.New("invalid config")

var (
	Formats   = []string{"text", "json", "yaml", "toml"}
	CharModes = []string{"utf8", "bytes"}
)

type Config struct {
	// Format is the output format: text, json, yaml or toml
	Format string `toml:"format"`
	// CharMode is the way command line strings are read: utf8 or bytes
	CharMode string `toml:"char_mode"`
	Verbose  bool   `toml:"verbose"`
	// Workers limits the number of lines tokenized concurrently
	Workers int `toml:"workers"`
}

func Default() Config {
	return Config{
		Format:   "text",
		CharMode: "utf8",
		Workers:  runtime.GOMAXPROCS(0),
	}
}

// DefaultPath returns the config file path in the user home dir
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, FileName)
}

// Load reads the TOML file at path over the defaults. If optional is true, a
// missing file gives the defaults
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if optional && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: %s: unknown key %q", ErrInvalid, path, undecoded[0].String())
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if !slices.Contains(Formats, c.Format) {
		errs = append(errs, fmt.Errorf("%w: format %q, expected one of %v", ErrInvalid, c.Format, Formats))
	}
	if !slices.Contains(CharModes, c.CharMode) {
		errs = append(errs, fmt.Errorf("%w: char_mode %q, expected one of %v", ErrInvalid, c.CharMode, CharModes))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, c.Workers))
	}
	return errors.Join(errs...)
}
