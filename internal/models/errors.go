package models

import (
	"errors"
)

var (
	ErrReadFile        = errors.New("models: failed to read regions file")
	ErrInvalidEncoding = errors.New("models: regions file is not valid UTF-8")
)
