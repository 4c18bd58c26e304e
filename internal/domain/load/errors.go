package load

import "errors"

var (
	ErrLoadNotFound    = errors.New("load not found")
	ErrCompanyNotFound = errors.New("company not found")
)
