package bencoding

import "errors"

var (
	// Info span errors
	ErrInfoKeyNotFound       = errors.New("info key not found")
	ErrUnterminatedStructure = errors.New("unterminated structure")
	ErrMalformedValue        = errors.New("malformed bencoded value")

	// General parsing errors
	ErrEmptyData = errors.New("empty data")
)
