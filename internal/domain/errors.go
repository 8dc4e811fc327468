package domain

import "errors"

var (
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnknownProvider   = errors.New("unknown mobile money provider")
	ErrInvalidTransition = errors.New("illegal state transition")
)
