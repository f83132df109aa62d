package chainmap

import "errors"

// ErrOutOfRange is returned by bounded access to a key that isn't present.
var ErrOutOfRange = errors.New("key out of range")
