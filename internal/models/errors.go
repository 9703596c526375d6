package models

import (
	"errors"
)

var (
	ErrNoRecord        = errors.New("models: no matching record found")
	ErrNotAcknowledged = errors.New("models: write not acknowledged")
	ErrUnauthorized    = errors.New("models: unauthorized")
	ErrForbidden       = errors.New("models: forbidden")
	ErrInvalidID       = errors.New("models: invalid identifier")
	ErrInvalidLimit    = errors.New("models: invalid limit")
	ErrInvalidField    = errors.New("models: invalid field")
	ErrEmptyPatch      = errors.New("models: nothing to update")
)
