package absence

import "errors"

var ErrRecordNotFound = errors.New("absence record not found")
