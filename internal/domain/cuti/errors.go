package cuti

import "errors"

var (
	ErrCutiNotFound = errors.New("cuti not found")
)
