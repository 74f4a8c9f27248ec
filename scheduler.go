// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"container/heap"
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// An Action is a scheduled callback. It runs on the goroutine that called
// Scheduler.Run. A non-nil error aborts the run.
//
type Action func(ctx context.Context) error

type event struct {
	due   int64
	seq   uint64
	owner Item
	fn    Action
}

// eventQueue implements heap.Interface. Events are ordered by due tick, then
// by scheduling order.
type eventQueue []*event

func (q eventQueue) Len() int { return len(q) }

func (q eventQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}

func (q eventQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *eventQueue) Push(x interface{}) { *q = append(*q, x.(*event)) }

func (q *eventQueue) Pop() interface{} {
	old := *q
	n := len(old) - 1
	e := old[n]
	old[n] = nil
	*q = old[:n]
	return e
}

// A Scheduler runs actions in simulated time.
//
// Time is counted in ticks and starts at 0. Actions due at the same tick run
// in the order they were scheduled. An action may schedule more actions,
// including at the current tick, but those never run before the actions
// already queued for that tick.
//
type Scheduler struct {
	q       eventQueue
	now     int64
	seq     uint64
	stopped bool
	running bool
	log     logrus.FieldLogger
}

// NewScheduler returns a new scheduler at tick 0. If log is nil,
// logrus.StandardLogger() is used.
//
func NewScheduler(log logrus.FieldLogger) *Scheduler {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Scheduler{log: log}
}

// Now returns the current tick.
//
func (s *Scheduler) Now() int64 { return s.now }

// Pending returns the number of scheduled events.
//
func (s *Scheduler) Pending() int { return len(s.q) }

// Running returns true while Run is executing.
//
func (s *Scheduler) Running() bool { return s.running }

// Fire schedules fn to run at tick Now()+delay. Scheduled events cannot be
// cancelled.
//
func (s *Scheduler) Fire(owner Item, fn Action, delay int64) error {
	if fn == nil {
		return ErrNilAction
	}
	if delay < 0 {
		return errors.Wrapf(ErrNegativeDelay, "delay %d", delay)
	}
	heap.Push(&s.q, &event{due: s.now + delay, seq: s.seq, owner: owner, fn: fn})
	s.seq++
	return nil
}

// Stop requests Run to return after the current action. The queue is left
// untouched and a later Run resumes where this one stopped. Stop has no effect
// on a scheduler that is not running.
//
func (s *Scheduler) Stop() {
	if s.running {
		s.log.WithField("tick", s.now).Debug("simulation stop requested")
		s.stopped = true
	}
}

// Run processes events in order until the queue is empty, Stop is called, an
// action fails or ctx is done. Run must not be called from an action: it
// returns ErrReentrantRun.
//
// A failing or panicking action is reported as an *EventError. The failed
// event is consumed; other pending events are kept.
//
func (s *Scheduler) Run(ctx context.Context) error {
	if s.running {
		return ErrReentrantRun
	}
	s.running, s.stopped = true, false
	defer func() { s.running = false }()

	s.log.WithFields(logrus.Fields{"tick": s.now, "pending": len(s.q)}).Debug("simulation running")
	for !s.stopped && len(s.q) > 0 {
		if err := ctx.Err(); err != nil {
			return errors.Wrapf(err, "simulation interrupted at tick %d", s.now)
		}
		e := heap.Pop(&s.q).(*event)
		s.now = e.due
		if err := s.dispatch(ctx, e); err != nil {
			return err
		}
	}
	s.log.WithFields(logrus.Fields{"tick": s.now, "pending": len(s.q)}).Debug("simulation returned")
	return nil
}

func (s *Scheduler) dispatch(ctx context.Context, e *event) (err error) {
	defer func() {
		if r := recover(); r != nil {
			var cause error
			if perr, ok := r.(error); ok {
				cause = errors.Wrap(perr, "panic")
			} else {
				cause = errors.Errorf("panic: %v", r)
			}
			err = &EventError{Tick: e.due, Item: itemName(e.owner), Err: cause}
		}
	}()
	if err := e.fn(ctx); err != nil {
		return &EventError{Tick: e.due, Item: itemName(e.owner), Err: err}
	}
	return nil
}
