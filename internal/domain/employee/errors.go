package employee

import "errors"

var (
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrMatriculeExists  = errors.New("matricule already registered")
)
