package repository

import "errors"

var ErrSessionRequired = errors.New("session id is required")
