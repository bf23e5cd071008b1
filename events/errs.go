package events

import "errors"

var ErrEscape = errors.New("escape error")
