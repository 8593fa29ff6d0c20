package career

import "errors"

var (
	ErrRecordNotFound = errors.New("career record not found")
	ErrUnknownRank    = errors.New("rank not present in hierarchy")
)
