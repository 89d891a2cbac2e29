package store

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField         = errors.New("all fields are required")
	ErrWordExists           = errors.New("word already exists")
	ErrUnsupportedDirection = errors.New("only spanish ↔ nasa_yuwe is supported")
)

// WordExistsError reports the headword that already occupies a key.
// It matches ErrWordExists with errors.Is.
type WordExistsError struct {
	Word string
}

func (e *WordExistsError) Error() string {
	return fmt.Sprintf("word %q already exists in the dictionary", e.Word)
}

func (e *WordExistsError) Is(target error) bool {
	return target == ErrWordExists
}
