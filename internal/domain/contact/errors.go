package contact

import "errors"

var ErrContactNotFound = errors.New("emergency contact not found")
