package spur

import "errors"

var (
	// ErrInvalidSpec is returned when a gear specification or a pipeline
	// argument lies outside its valid domain. It is detected before any
	// geometry is derived.
	ErrInvalidSpec = errors.New("invalid gear spec")
	// ErrDegenerateGeometry is returned when derived radii do not admit an
	// involute flank, i.e. the outer radius does not exceed the base radius.
	ErrDegenerateGeometry = errors.New("degenerate gear geometry")
)
