package settlement

import (
	domainTrip "moveboss/internal/domain/trip"
	appErrors "moveboss/pkg/errors"
)

// ValidatePreconditions checks the settle requirements before anything is
// written: both odometer readings with their photo evidence, and a positive
// mileage span between them.
func ValidatePreconditions(t *domainTrip.Trip) error {
	if t.OdometerStart == nil || t.OdometerEnd == nil {
		return appErrors.NewAppError(appErrors.CodeValidation,
			"Odometer start and end readings are required before settlement",
			domainTrip.ErrMissingOdometer)
	}
	if t.OdometerStartPhoto == nil || *t.OdometerStartPhoto == "" ||
		t.OdometerEndPhoto == nil || *t.OdometerEndPhoto == "" {
		return appErrors.NewAppError(appErrors.CodeValidation,
			"Odometer start and end photos are required before settlement",
			domainTrip.ErrMissingOdometerPhotos)
	}
	if *t.OdometerEnd-*t.OdometerStart <= 0 {
		return appErrors.NewAppError(appErrors.CodeValidation,
			"Actual miles must be greater than zero",
			domainTrip.ErrNonPositiveMiles)
	}
	return nil
}
