package unit

import "errors"

var (
	ErrUnitNotFound   = errors.New("unit not found")
	ErrUnitCodeExists = errors.New("unit code already exists")
	ErrUnitNotEmpty   = errors.New("unit still has assigned employees")
)
