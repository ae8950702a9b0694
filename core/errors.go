package core

import "errors"

// ErrNoFilename is returned by Save when the editor has no file attached.
var ErrNoFilename = errors.New("no filename set")
