// pkg/engine/errors.go
package engine

import "errors"

var (
	// ErrInvalidPreset is returned when the preset level is above 9
	ErrInvalidPreset = errors.New("compression preset must be between 0 and 9")

	// ErrInvalidThreads is returned for a negative thread count
	ErrInvalidThreads = errors.New("thread count must not be negative")

	// ErrTarRequired is returned when extraction is asked for without tar mode
	ErrTarRequired = errors.New("extracting members requires tar mode")
)
