package filter

import "errors"

var (
	// ErrInvalidSpectrum is returned when spectrum bounds or the scale count
	// are not positive.
	ErrInvalidSpectrum = errors.New("filter: invalid spectrum bounds or scale count")

	// ErrNotImplemented is returned for filter kinds that are named but not built.
	ErrNotImplemented = errors.New("filter: kind not implemented")

	// ErrEmptyBank is returned when coefficients are requested for an empty bank.
	ErrEmptyBank = errors.New("filter: empty filter bank")

	// ErrInvalidOrder is returned for a negative polynomial or grid order.
	ErrInvalidOrder = errors.New("filter: invalid order")

	// ErrInvalidRange is returned when the approximation interval is empty or reversed.
	ErrInvalidRange = errors.New("filter: invalid approximation range")

	// ErrShape is returned when a coefficient table is not rectangular or does
	// not match the expected number of scales.
	ErrShape = errors.New("filter: coefficient table shape mismatch")
)
