// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"context"

	"github.com/pkg/errors"
)

// A TimeLimit stops the simulation at a given tick. Events due after that tick
// do not run; events due at that tick run only if they were scheduled before
// the simulation was prepared.
//
type TimeLimit struct {
	ItemBase
	tick int64
}

// NewTimeLimit returns a time limit at the given absolute tick.
//
func NewTimeLimit(d *Design, tick int64) (*TimeLimit, error) {
	if tick < 0 {
		return nil, errors.Wrapf(ErrInvalidOffset, "time limit %d", tick)
	}
	l := &TimeLimit{tick: tick}
	return l, d.Add(l)
}

// Tick returns the tick at which the simulation stops.
//
func (l *TimeLimit) Tick() int64 { return l.tick }

// InitializeSimulation implements Initializer.
//
func (l *TimeLimit) InitializeSimulation() error {
	d := l.Design()
	delay := l.tick - d.Now()
	if delay < 0 {
		return errors.Wrapf(ErrInvalidOffset, "time limit %d already passed", l.tick)
	}
	return d.Fire(l, func(context.Context) error {
		d.Stop()
		return nil
	}, delay)
}
