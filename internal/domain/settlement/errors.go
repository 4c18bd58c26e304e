package settlement

import "errors"

var (
	ErrSettlementNotFound = errors.New("settlement not found")
	ErrSettlementExists   = errors.New("settlement already exists for this trip")
)
