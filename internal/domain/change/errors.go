package change

import "errors"

var (
	ErrChangeNotFound = errors.New("duty change not found")
	ErrSameEmployee   = errors.New("replacement must differ from the current occupant")
)
