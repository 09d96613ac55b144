package io

import (
	"github.com/ezrec/bandfuck/translate"
)

var f = translate.From

// ErrPrefix is prepended to every diagnostic line.
var ErrPrefix = f("Error: ")
