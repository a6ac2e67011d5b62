// pkg/config/errors.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrHelp is returned when the help flag was given
	ErrHelp = errors.New("help requested")

	ErrInvalidThreads       = errors.New("Need a non-negative integer argument to -p")
	ErrInvalidQueueSize     = errors.New("Need a positive integer argument to -q")
	ErrInvalidBlockFraction = errors.New("Need a positive floating-point argument to -f")
	ErrInvalidLevel         = errors.New("Compression level must be between 0 and 9")

	ErrTooManyArguments = errors.New("Too many arguments")
	ErrMultipleInputs   = errors.New("Multiple input files specified")
	ErrMultipleOutputs  = errors.New("Multiple output files specified")
	ErrUnknownSuffix    = errors.New("Unknown suffix")
	ErrTerminalOutput   = errors.New("Refusing to output to a TTY")
)

// UsageError is a user-caused invocation error detected before any engine work
type UsageError struct {
	Err error
}

// Usage wraps err as a usage error
func Usage(err error) error {
	return &UsageError{Err: err}
}

func (e *UsageError) Error() string { return e.Err.Error() }

func (e *UsageError) Unwrap() error { return e.Err }

// IOError reports a file that could not be opened or closed
type IOError struct {
	Action string // e.g. "can not open input file"
	Path   string
	Err    error
}

// NewIOError builds an IOError, stripping the path already carried by
// *fs.PathError so the message reads "action: path: reason"
func NewIOError(action, path string, err error) error {
	var pe *fs.PathError
	if errors.As(err, &pe) {
		err = pe.Err
	}
	return &IOError{Action: action, Path: path, Err: err}
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Action, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// IsUsage reports whether err is a usage error (help included)
func IsUsage(err error) bool {
	var ue *UsageError
	return errors.Is(err, ErrHelp) || errors.As(err, &ue)
}
