package libdiff

import "errors"

var ErrPatch = errors.New("patch error")
