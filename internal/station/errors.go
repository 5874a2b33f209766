package station

import "errors"

var (
	ErrInvalidParams      = errors.New("invalid game params")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrAlreadyScanned     = errors.New("area already scanned")
)
