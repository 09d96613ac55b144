package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/bandfuck/emulator"
)

func writeFile(t *testing.T, name string, text string) (path string) {
	path = filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(text), 0644)
	if err != nil {
		t.Fatal(err)
	}
	return
}

func TestDefault(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	assert.Equal(2048, cfg.TapeSize)
	assert.Equal("zero", cfg.EOF)
	assert.False(cfg.Verbose)
	assert.NoError(cfg.Validate())

	policy, err := cfg.EOFPolicy()
	assert.NoError(err)
	assert.Equal(emulator.EOF_ZERO, policy)
}

func TestLoad_Starlark(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "bandfuck.star", `
_cells = 4
tape_size = _cells * DEFAULT_SIZE
eof = "keep"
verbose = True
trace = "trace.json"
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(Config{TapeSize: 8192, EOF: "keep", Verbose: true, Trace: "trace.json"}, cfg)
}

func TestLoad_Yaml(t *testing.T) {
	assert := assert.New(t)

	path := writeFile(t, "bandfuck.yaml", `
tape_size: 8192
eof: keep
verbose: true
trace: trace.json
`)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(Config{TapeSize: 8192, EOF: "keep", Verbose: true, Trace: "trace.json"}, cfg)
}

func TestLoad_Partial(t *testing.T) {
	assert := assert.New(t)

	for _, path := range []string{
		writeFile(t, "a.yml", "eof: error\n"),
		writeFile(t, "a.star", "eof = 'error'\n"),
	} {
		cfg, err := Load(path)
		assert.NoError(err, path)
		assert.Equal(2048, cfg.TapeSize, path)
		assert.Equal("error", cfg.EOF, path)
	}

	cfg, err := Load(writeFile(t, "empty.yaml", ""))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		text string
		is   error
	}){
		{"bad.toml", "tape_size = 1", ErrConfigFormat},
		{"bad_eof.yaml", "eof: explode\n", nil},
		{"bad_size.yaml", "tape_size: 0\n", nil},
		{"unknown.yaml", "colour: blue\n", nil},
		{"bad_eof.star", "eof = 'explode'\n", nil},
		{"bad_type.star", "tape_size = 'big'\n", nil},
		{"bad_bool.star", "verbose = 1\n", nil},
		{"unknown.star", "colour = 'blue'\n", ErrConfigKey("colour")},
		{"syntax.star", "tape_size = = 1\n", nil},
	}

	for _, entry := range table {
		path := writeFile(t, entry.name, entry.text)
		_, err := Load(path)
		assert.Error(err, entry.name)

		var ce *ErrConfig
		if assert.True(errors.As(err, &ce), entry.name) {
			assert.Equal(path, ce.Path, entry.name)
		}
		if entry.is != nil {
			assert.ErrorIs(err, entry.is, entry.name)
		}
	}
}

func TestLoad_ValueError(t *testing.T) {
	assert := assert.New(t)

	_, err := Load(writeFile(t, "bad.star", "tape_size = -1\n"))

	var ve *ErrConfigValue
	if assert.True(errors.As(err, &ve)) {
		assert.Equal("tape_size", ve.Key)
	}
}

func TestLoadOptional(t *testing.T) {
	assert := assert.New(t)

	cfg, err := LoadOptional("")
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	cfg, err = LoadOptional(filepath.Join(t.TempDir(), "missing.star"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.ErrorIs(err, os.ErrNotExist)
}
