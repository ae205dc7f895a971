package elementary

import "errors"

var errNotLine = errors.New("elementary: grid must be one-dimensional")
