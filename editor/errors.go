package editor

import (
	"errors"

	"tpledit/model"
)

var (
	// ErrAlreadyExists is returned when operation would create second title or footer.
	ErrAlreadyExists = model.ErrAlreadyExists
	// ErrNotFound is returned when handle does not name an element of the document.
	ErrNotFound = errors.New("element not found")
	// ErrUnsupported is returned when operation does not apply to the element kind.
	ErrUnsupported = errors.New("operation is not supported for element")
	// ErrInvalidArgument is returned for out of range coordinates and unknown names.
	ErrInvalidArgument = errors.New("invalid argument")
)
