package core

import "errors"

var (
	ErrFetchFailed         = errors.New("failed to fetch exchange rates")
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	ErrCorruptStore        = errors.New("corrupt rate cache")
)
