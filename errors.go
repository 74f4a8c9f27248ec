// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Errors returned by the kernel. Use errors.Cause to test for them.
//
var (
	ErrNilAction       = errors.New("nil action")
	ErrNegativeDelay   = errors.New("negative delay")
	ErrReentrantRun    = errors.New("simulation loop already running")
	ErrNotPrepared     = errors.New("simulation not prepared")
	ErrAlreadyPrepared = errors.New("simulation already prepared")
	ErrForeignItem     = errors.New("item belongs to another design")
	ErrDuplicateClock  = errors.New("clock net already has a clock domain")
	ErrEdgeInProgress  = errors.New("clock edge already in progress")
	ErrUnresolvedClock = errors.New("clock signal does not resolve to a clock")
	ErrInvalidPeriod   = errors.New("period must be positive")
	ErrInvalidOffset   = errors.New("offset must not be negative")
	ErrInvalidCount    = errors.New("count must not be negative")
)

// EventError is returned by a simulation run when a scheduled action fails or
// panics. It identifies the tick and the item that scheduled the action.
//
type EventError struct {
	Tick int64
	Item string
	Err  error
}

func (e *EventError) Error() string {
	return fmt.Sprintf("tick %d: %s: %v", e.Tick, e.Item, e.Err)
}

// Cause returns the error returned (or the panic raised) by the action.
//
func (e *EventError) Cause() error { return e.Err }

// Unwrap returns the error returned (or the panic raised) by the action.
//
func (e *EventError) Unwrap() error { return e.Err }

// ValidationError collects the validation failures of all items in a design.
//
type ValidationError struct {
	Errors []error
}

func (e *ValidationError) add(err error) {
	if err != nil {
		e.Errors = append(e.Errors, err)
	}
}

func (e *ValidationError) errorOrNil() error {
	if len(e.Errors) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return "validation failed: " + e.Errors[0].Error()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "validation failed (%d errors): ", len(e.Errors))
	for i, err := range e.Errors {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}
