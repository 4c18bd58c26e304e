package driver

import "errors"

var (
	ErrPayPlanNotFound = errors.New("driver pay plan not found")
)
