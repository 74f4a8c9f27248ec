// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwtest

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

// A Sample holds the values of the watched signals just before a clock edge.
//
type Sample struct {
	Tick   int64
	Values []bool
}

// A Recorder is a clocked item that samples a set of named signals on each
// edge of its clock.
//
type Recorder struct {
	rtlsim.ItemBase
	clk     rtlsim.ClockSignal
	names   []string
	sigs    []rtlsim.BitSignal
	samples []Sample
	next    Sample
}

// NewRecorder returns a new Recorder.
//
func NewRecorder(d *rtlsim.Design, clk rtlsim.ClockSignal) (*Recorder, error) {
	if clk == nil {
		return nil, errors.New("nil clock signal")
	}
	if err := rtlsim.SameDesign(d, clk); err != nil {
		return nil, err
	}
	r := &Recorder{clk: clk}
	return r, d.Add(r)
}

// Watch adds a signal to the recorded set. It must be called before the
// simulation is prepared.
//
func (r *Recorder) Watch(name string, s rtlsim.BitSignal) error {
	if s == nil {
		return errors.New("nil signal")
	}
	if r.Design().Prepared() {
		return errors.Wrapf(rtlsim.ErrAlreadyPrepared, "watch %s", name)
	}
	if err := rtlsim.SameDesign(r.Design(), s); err != nil {
		return err
	}
	r.names = append(r.names, name)
	r.sigs = append(r.sigs, s)
	return nil
}

// Samples returns all samples in edge order.
//
func (r *Recorder) Samples() []Sample { return r.samples }

// Column returns the recorded values of the named signal, or nil if the name
// is unknown.
//
func (r *Recorder) Column(name string) []bool {
	for i, n := range r.names {
		if n != name {
			continue
		}
		col := make([]bool, len(r.samples))
		for j, s := range r.samples {
			col[j] = s.Values[i]
		}
		return col
	}
	return nil
}

// ClockSignal implements rtlsim.ClockedItem.
//
func (r *Recorder) ClockSignal() rtlsim.ClockSignal { return r.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (r *Recorder) ComputeNextState() {
	vs := make([]bool, len(r.sigs))
	for i, s := range r.sigs {
		vs[i] = s.Value()
	}
	r.next = Sample{Tick: r.Design().Now(), Values: vs}
}

// UpdateState implements rtlsim.ClockedItem.
//
func (r *Recorder) UpdateState() {
	r.samples = append(r.samples, r.next)
}
