package sg

import "errors"

// Package errors.
var (
	// ErrInvalidShape is returned when a shape has an empty rectangle or a
	// negative radius. Non-fatal: the caller's previous geometry and shape
	// remain untouched.
	ErrInvalidShape = errors.New("sg: invalid shape")

	// ErrIncompatibleGeometry is returned when a geometry passed for
	// in-place rebuild does not carry this builder's fixed layout
	// (triangle-strip topology, static upload patterns).
	ErrIncompatibleGeometry = errors.New("sg: incompatible geometry layout")

	// ErrCurvedElement is returned when a curve element survives path
	// simplification. This indicates the simplification routine no longer
	// matches the triangulation's polyline assumption and must not be
	// silently tolerated.
	ErrCurvedElement = errors.New("sg: curve element in simplified path")

	// ErrNilTexture is returned when a nil texture is set on a node.
	ErrNilTexture = errors.New("sg: nil texture")
)
