package place

import "errors"

var ErrNotFound = errors.New("place not found")
