package config

import (
	"errors"

	"github.com/ezrec/bandfuck/translate"
)

var f = translate.From

var (
	ErrConfigFormat = errors.New(f("unknown configuration format"))
)

type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown setting '%v'", string(err))
}

type ErrConfigValue struct {
	Key   string
	Value any
}

func (err *ErrConfigValue) Error() string {
	return f("invalid %v value %v", err.Key, err.Value)
}

// ErrConfig indicates which configuration file failed.
type ErrConfig struct {
	Path string
	Err  error
}

func (err *ErrConfig) Error() string {
	return f("%v: %v", err.Path, err.Err)
}

func (err *ErrConfig) Unwrap() error {
	return err.Err
}
