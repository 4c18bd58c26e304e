package trip

import "errors"

var (
	ErrTripNotFound          = errors.New("trip not found")
	ErrMissingOdometer       = errors.New("odometer start and end readings are required before settlement")
	ErrMissingOdometerPhotos = errors.New("odometer start and end photos are required before settlement")
	ErrNonPositiveMiles      = errors.New("actual miles must be greater than zero")
	ErrAlreadySettled        = errors.New("trip is already settled")
	ErrNotSettled            = errors.New("trip has not been settled")
)
