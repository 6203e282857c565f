// Package apperr defines the failure taxonomy shared by every stage of the
// pipeline and maps each failure kind to a process exit code.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure.
type Kind int

const (
	KindUnknown Kind = iota
	// KindUsage means the command line did not have the required shape.
	KindUsage
	// KindParse means an argument or a data line could not be coerced to its type.
	KindParse
	// KindIO means a file could not be read or written.
	KindIO
	// KindConfiguration means the values parsed fine but do not make sense together.
	KindConfiguration
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindParse:
		return "parse"
	case KindIO:
		return "io"
	case KindConfiguration:
		return "configuration"
	default:
		return "unknown"
	}
}

// ExitCode returns the process exit status for a failure of this kind.
func (k Kind) ExitCode() int {
	switch k {
	case KindConfiguration:
		return 2
	case KindParse:
		return 3
	case KindIO:
		return 4
	default:
		return 1
	}
}

// Error is a classified failure. Op names what was being attempted.
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Op == "" {
		return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s error: %s: %v", e.Kind, e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New returns an *Error of the given kind wrapping err.
func New(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Parse, IO, Configuration and Usage are shorthands for New with a fixed kind.
func Parse(op string, err error) error         { return New(KindParse, op, err) }
func IO(op string, err error) error            { return New(KindIO, op, err) }
func Configuration(op string, err error) error { return New(KindConfiguration, op, err) }
func Usage(op string, err error) error         { return New(KindUsage, op, err) }

// KindOf reports the kind of the first *Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ExitCode maps err to a process exit status. A nil error is 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return KindOf(err).ExitCode()
}
