// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// A DebugOutput calls a function with the value of its data signal on every
// clock edge where its enable signal is set. Data is read as a signed value.
//
type DebugOutput struct {
	rtlsim.ItemBase
	clk    rtlsim.ClockSignal
	data   VectorSignal
	enable rtlsim.BitSignal
	fn     func(int64)
	sample int64
	fire   bool
}

// NewDebugOutput returns a new DebugOutput. A nil enable means always enabled.
//
func NewDebugOutput(d *rtlsim.Design, clk rtlsim.ClockSignal, data VectorSignal, enable rtlsim.BitSignal, fn func(int64)) (*DebugOutput, error) {
	if clk == nil || data == nil || fn == nil {
		return nil, errors.New("nil clock signal, data signal or callback")
	}
	if err := rtlsim.SameDesign(d, clk, data, enable); err != nil {
		return nil, err
	}
	o := &DebugOutput{clk: clk, data: data, enable: enable, fn: fn}
	return o, d.Add(o)
}

// LogOutput returns a DebugOutput callback that logs values at info level.
//
func LogOutput(log logrus.FieldLogger, name string) func(int64) {
	return func(v int64) {
		log.WithField("signal", name).Info(v)
	}
}

// ClockSignal implements rtlsim.ClockedItem.
//
func (o *DebugOutput) ClockSignal() rtlsim.ClockSignal { return o.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (o *DebugOutput) ComputeNextState() {
	o.fire = o.enable == nil || o.enable.Value()
	if o.fire {
		o.sample = o.data.Value().Int64()
	}
}

// UpdateState implements rtlsim.ClockedItem.
//
func (o *DebugOutput) UpdateState() {
	if o.fire {
		o.fn(o.sample)
	}
}
