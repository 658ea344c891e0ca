package core

import "errors"

var (
	// ErrMismatchedBatchLength is returned when the four relay batch arrays
	// do not all have the same length. Nothing is written in that case.
	ErrMismatchedBatchLength = errors.New("mismatched relay batch array lengths")

	// ErrUnknownSymbol is returned when a requested symbol was never relayed.
	ErrUnknownSymbol = errors.New("unknown symbol")

	// ErrRefDataNotAvailable is returned when a symbol exists in the store
	// but has never been resolved (resolve time is zero).
	ErrRefDataNotAvailable = errors.New("reference data not available")

	// ErrDivisionByZero is returned when the quote side of a cross-rate
	// query resolved to a zero rate.
	ErrDivisionByZero = errors.New("quote rate is zero")

	// ErrRelayerNotAuthorized is returned when an allow-list is configured
	// and the relay sender is not on it.
	ErrRelayerNotAuthorized = errors.New("relayer not authorized")
)
