// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

// A BitSampler samples a signal on each clock edge. The sample is the value of
// the signal just before the edge.
//
type BitSampler struct {
	rtlsim.ItemBase
	clk    rtlsim.ClockSignal
	in     rtlsim.BitSignal
	sample bool
}

// NewBitSampler returns a new sampler.
//
func NewBitSampler(d *rtlsim.Design, clk rtlsim.ClockSignal, in rtlsim.BitSignal) (*BitSampler, error) {
	if clk == nil || in == nil {
		return nil, errors.New("nil clock or input signal")
	}
	if err := rtlsim.SameDesign(d, clk, in); err != nil {
		return nil, err
	}
	s := &BitSampler{clk: clk, in: in}
	return s, d.Add(s)
}

// Sample returns the last sample.
//
func (s *BitSampler) Sample() bool { return s.sample }

// ClockSignal implements rtlsim.ClockedItem.
//
func (s *BitSampler) ClockSignal() rtlsim.ClockSignal { return s.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (s *BitSampler) ComputeNextState() { s.sample = s.in.Value() }

// UpdateState implements rtlsim.ClockedItem.
//
func (s *BitSampler) UpdateState() {}

// A VectorSampler samples a vector signal on each clock edge.
//
type VectorSampler struct {
	rtlsim.ItemBase
	clk    rtlsim.ClockSignal
	in     VectorSignal
	sample Vector
}

// NewVectorSampler returns a new sampler. The initial sample is 0.
//
func NewVectorSampler(d *rtlsim.Design, clk rtlsim.ClockSignal, in VectorSignal) (*VectorSampler, error) {
	if clk == nil || in == nil {
		return nil, errors.New("nil clock or input signal")
	}
	if err := rtlsim.SameDesign(d, clk, in); err != nil {
		return nil, err
	}
	s := &VectorSampler{clk: clk, in: in, sample: VectorOf(in.Width(), 0)}
	return s, d.Add(s)
}

// Sample returns the last sample.
//
func (s *VectorSampler) Sample() Vector { return s.sample }

// ClockSignal implements rtlsim.ClockedItem.
//
func (s *VectorSampler) ClockSignal() rtlsim.ClockSignal { return s.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (s *VectorSampler) ComputeNextState() { s.sample = s.in.Value() }

// UpdateState implements rtlsim.ClockedItem.
//
func (s *VectorSampler) UpdateState() {}
