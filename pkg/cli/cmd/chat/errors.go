package chat

import "errors"

var errUnsupportedOutput = errors.New("unsupported output format")
