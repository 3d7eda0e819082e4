package model

import "errors"

// Error kinds raised by the setup pipeline and the daily kernels. Raise sites
// wrap these with fmt.Errorf("...: %w", ...) so callers can discriminate with
// errors.Is. None of them is retryable: any failure aborts the setup phase,
// since a valid calendar is required before a simulation can run.
var (
	// ErrConfiguration: the supplied records cannot produce a valid setup
	// (missing stress target, stress curve too short, soil column that cannot
	// grow to the rooting depth, weather that does not cover the walk).
	ErrConfiguration = errors.New("aquacrop: invalid configuration")

	// ErrUnsupportedMode: soil fertility stress calibration requested outside
	// growing-degree-day mode.
	ErrUnsupportedMode = errors.New("aquacrop: unsupported calendar mode")

	// ErrDomain: a value left the numeric domain of a formula, e.g. a
	// non-positive curve number that would divide by zero.
	ErrDomain = errors.New("aquacrop: value outside numeric domain")

	// ErrInternalConsistency: a derived invariant broke. Not recoverable.
	ErrInternalConsistency = errors.New("aquacrop: internal consistency violation")
)
