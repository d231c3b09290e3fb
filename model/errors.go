package model

import "errors"

var (
	// ErrAlreadyExists is returned when second title or footer is requested.
	ErrAlreadyExists = errors.New("already exists, only one allowed")
	// ErrOutOfRange is returned for row, column or element index outside of current bounds.
	ErrOutOfRange = errors.New("index out of range")
)
