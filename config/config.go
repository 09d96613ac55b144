// Package config loads interpreter settings from a Starlark or YAML file.
//
// A Starlark configuration sets globals, and may compute them:
//
//	tape_size = 4 * DEFAULT_SIZE
//	eof = "keep"
//
// A YAML configuration uses the same keys.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
	"gopkg.in/yaml.v3"

	"github.com/ezrec/bandfuck/band"
	"github.com/ezrec/bandfuck/emulator"
)

// Config holds the interpreter settings.
type Config struct {
	TapeSize int    `yaml:"tape_size"` // Number of band cells.
	EOF      string `yaml:"eof"`       // Input exhaustion policy name.
	Verbose  bool   `yaml:"verbose"`   // Log every tick.
	Trace    string `yaml:"trace"`     // JSON trace log path, if any.
}

// Default returns the default settings.
func Default() Config {
	return Config{
		TapeSize: band.DEFAULT_SIZE,
		EOF:      emulator.EOF_ZERO.String(),
	}
}

// Load reads the configuration file at path, on top of the defaults.
// The format is chosen by the file extension.
func Load(path string) (cfg Config, err error) {
	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return
	}

	defer func() {
		if err != nil {
			err = &ErrConfig{Path: path, Err: err}
		}
	}()

	switch filepath.Ext(path) {
	case ".star", ".bzl":
		err = cfg.parseStarlark(path, data)
	case ".yaml", ".yml":
		err = cfg.parseYaml(data)
	default:
		err = ErrConfigFormat
	}
	if err != nil {
		return
	}

	err = cfg.Validate()
	return
}

// LoadOptional is Load, but a missing file, or an empty path, yields the
// defaults.
func LoadOptional(path string) (cfg Config, err error) {
	if path == "" {
		cfg = Default()
		return
	}

	cfg, err = Load(path)
	if errors.Is(err, os.ErrNotExist) {
		cfg = Default()
		err = nil
	}

	return
}

// Validate checks the settings.
func (cfg *Config) Validate() (err error) {
	if cfg.TapeSize <= 0 {
		err = &ErrConfigValue{Key: "tape_size", Value: cfg.TapeSize}
		return
	}

	_, err = emulator.ParseEOFPolicy(cfg.EOF)
	if err != nil {
		err = &ErrConfigValue{Key: "eof", Value: cfg.EOF}
		return
	}

	return
}

// EOFPolicy returns the input exhaustion policy.
func (cfg *Config) EOFPolicy() (emulator.EOFPolicy, error) {
	return emulator.ParseEOFPolicy(cfg.EOF)
}

func (cfg *Config) parseYaml(data []byte) (err error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err = dec.Decode(cfg)
	if errors.Is(err, io.EOF) {
		// Empty document.
		err = nil
	}

	return
}

func (cfg *Config) parseStarlark(path string, data []byte) (err error) {
	thread := starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"DEFAULT_SIZE": starlark.MakeInt(band.DEFAULT_SIZE),
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, path, data, pred)
	if err != nil {
		return
	}

	for key, value := range dict {
		switch key {
		case "tape_size":
			st_int, ok := value.(starlark.Int)
			if !ok {
				return &ErrConfigValue{Key: key, Value: value}
			}
			st_int64, ok := st_int.Int64()
			if !ok {
				return &ErrConfigValue{Key: key, Value: value}
			}
			cfg.TapeSize = int(st_int64)
		case "eof", "trace":
			st_str, ok := value.(starlark.String)
			if !ok {
				return &ErrConfigValue{Key: key, Value: value}
			}
			if key == "eof" {
				cfg.EOF = st_str.GoString()
			} else {
				cfg.Trace = st_str.GoString()
			}
		case "verbose":
			st_bool, ok := value.(starlark.Bool)
			if !ok {
				return &ErrConfigValue{Key: key, Value: value}
			}
			cfg.Verbose = bool(st_bool)
		default:
			// Helper globals are allowed, but must be private.
			if key[0] != '_' {
				return ErrConfigKey(key)
			}
		}
	}

	return
}
