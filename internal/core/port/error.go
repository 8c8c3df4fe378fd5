package port

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrCorrupted = errors.New("corrupted record")
)
