package model

import (
	"github.com/google/uuid"
)

// ID is stable opaque identity of a body element.
type ID string

// Handles of singleton elements.
const (
	TitleID  ID = "title"
	FooterID ID = "footer"
)

// NewID allocates new time ordered identity.
func NewID() ID {
	id, err := uuid.NewV7()
	if err != nil {
		// clock sequence problems, random identity is just as good here
		return ID(uuid.NewString())
	}
	return ID(id.String())
}

func (id ID) String() string {
	return string(id)
}
