// Package common provides shared utilities and types used across the application.
package common

import "errors"

// Pipeline failure taxonomy. All of these are expected, recoverable outcomes
// at the engine level; none are process-fatal.
var (
	// ErrEmptyInput means no OCR text was supplied at all.
	ErrEmptyInput = errors.New("empty input")
	// ErrNoStoreDetected means no store profile scored above the detection
	// threshold. Triggers the generic fallback, not a failure.
	ErrNoStoreDetected = errors.New("no store detected")
	// ErrNoProductSection means a store parser could not locate the product
	// section boundaries.
	ErrNoProductSection = errors.New("no product section found")
	// ErrNoLineItems means boundaries were found but zero valid items were
	// extracted.
	ErrNoLineItems = errors.New("no line items parsed")

	// ErrInvalidProfile means a store profile failed to compile. This aborts
	// pipeline construction at startup, before any request is processed.
	ErrInvalidProfile = errors.New("invalid store profile")
)
