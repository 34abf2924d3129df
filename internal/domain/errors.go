package domain

import "errors"

var (
	ErrStateNotFound   = errors.New("persisted state not found")
	ErrMalformedState  = errors.New("persisted state is malformed")
	ErrEmptySeed       = errors.New("seed is empty")
	ErrStaleDerivation = errors.New("derivation superseded by a newer seed")
	ErrStaleFeed       = errors.New("feed response superseded by a newer tick")
	ErrRemote          = errors.New("remote service request failed")
	ErrInvalidInput    = errors.New("invalid input")
)
