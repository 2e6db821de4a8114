package models

import "errors"

var (
	ErrUnknownCipherType  = errors.New("unknown cipher type")
	ErrUnknownMatchType   = errors.New("unknown match type")
	ErrUnknownSensitivity = errors.New("unknown sensitivity")
)
