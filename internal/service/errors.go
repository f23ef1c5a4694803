package service

import "errors"

var (
	ErrIncompatibleSchema = errors.New("schema uses unsupported JSON Schema features")

	// ErrKeyNotInTier is returned when a key is read through the accessor of
	// a tier it is not declared in.
	ErrKeyNotInTier = errors.New("key is not declared in this tier")

	ErrNoLoader = errors.New("no cascade loader provided")
)
