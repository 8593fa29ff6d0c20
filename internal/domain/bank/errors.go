package bank

import "errors"

var (
	ErrIdentityNotFound = errors.New("bank identity not found")
	ErrRIBExists        = errors.New("RIB already registered")
)
