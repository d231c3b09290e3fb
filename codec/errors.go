package codec

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecode is matched by every error Decode returns.
var ErrDecode = errors.New("unable to decode template")

// DecodeError describes why template could not be decoded. Path points to the
// offending part of the document when known.
type DecodeError struct {
	Path string
	Err  error
}

func (e *DecodeError) Error() string {
	var se *json.SyntaxError
	switch {
	case errors.As(e.Err, &se):
		return fmt.Sprintf("%s: syntax error at offset %d: %v", ErrDecode, se.Offset, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s: %s: %v", ErrDecode, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", ErrDecode, e.Err)
}

func (e *DecodeError) Unwrap() []error {
	return []error{ErrDecode, e.Err}
}
