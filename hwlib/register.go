// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

// A BitRegister is a clocked data flip flop with an optional enable input.
//
//	Function: if enable { out(t) = in(t-1) } else { out(t) = out(t-1) }
//
// A register without input keeps the value given to SetNext, which allows
// procedural code to drive it between edges.
//
type BitRegister struct {
	rtlsim.ItemBase
	clk    rtlsim.ClockSignal
	in     rtlsim.BitSignal
	enable rtlsim.BitSignal
	value  bool
	next   bool
}

// NewBitRegister returns a new register clocked by clk. in may be nil and set
// later with SetInput.
//
func NewBitRegister(d *rtlsim.Design, clk rtlsim.ClockSignal, in rtlsim.BitSignal) (*BitRegister, error) {
	if clk == nil {
		return nil, errors.New("nil clock signal")
	}
	if err := rtlsim.SameDesign(d, clk, in); err != nil {
		return nil, err
	}
	r := &BitRegister{clk: clk, in: in}
	return r, d.Add(r)
}

// SetInput sets the data input.
//
func (r *BitRegister) SetInput(in rtlsim.BitSignal) error {
	if err := rtlsim.SameDesign(r.Design(), in); err != nil {
		return err
	}
	r.in = in
	return nil
}

// SetEnable sets the enable input. A nil enable means always enabled.
//
func (r *BitRegister) SetEnable(en rtlsim.BitSignal) error {
	if err := rtlsim.SameDesign(r.Design(), en); err != nil {
		return err
	}
	r.enable = en
	return nil
}

// Init sets the current and next value. It must only be called between edges.
//
func (r *BitRegister) Init(v bool) { r.value, r.next = v, v }

// SetNext sets the value loaded on the next edge when the register has no
// input.
//
func (r *BitRegister) SetNext(v bool) { r.next = v }

// Value implements rtlsim.BitSignal.
//
func (r *BitRegister) Value() bool { return r.value }

// ClockSignal implements rtlsim.ClockedItem.
//
func (r *BitRegister) ClockSignal() rtlsim.ClockSignal { return r.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (r *BitRegister) ComputeNextState() {
	switch {
	case r.in == nil:
	case r.enable != nil && !r.enable.Value():
		r.next = r.value
	default:
		r.next = r.in.Value()
	}
}

// UpdateState implements rtlsim.ClockedItem.
//
func (r *BitRegister) UpdateState() { r.value = r.next }

// A VectorRegister is the vector version of BitRegister.
//
type VectorRegister struct {
	rtlsim.ItemBase
	clk    rtlsim.ClockSignal
	in     VectorSignal
	enable rtlsim.BitSignal
	value  Vector
	next   Vector
}

// NewVectorRegister returns a new register of the given width, initialized to
// 0. in may be nil and set later with SetInput.
//
func NewVectorRegister(d *rtlsim.Design, clk rtlsim.ClockSignal, width int, in VectorSignal) (*VectorRegister, error) {
	if clk == nil {
		return nil, errors.New("nil clock signal")
	}
	if width < 1 || width > MaxWidth {
		return nil, errors.Errorf("invalid vector width %d", width)
	}
	if err := rtlsim.SameDesign(d, clk, in); err != nil {
		return nil, err
	}
	v := VectorOf(width, 0)
	r := &VectorRegister{clk: clk, value: v, next: v}
	if err := r.checkInput(in); err != nil {
		return nil, err
	}
	r.in = in
	return r, d.Add(r)
}

func (r *VectorRegister) checkInput(in VectorSignal) error {
	if in != nil && in.Width() != r.value.Width() {
		return errors.Errorf("input width %d, expected %d", in.Width(), r.value.Width())
	}
	return nil
}

// SetInput sets the data input.
//
func (r *VectorRegister) SetInput(in VectorSignal) error {
	if err := rtlsim.SameDesign(r.Design(), in); err != nil {
		return err
	}
	if err := r.checkInput(in); err != nil {
		return err
	}
	r.in = in
	return nil
}

// SetEnable sets the enable input. A nil enable means always enabled.
//
func (r *VectorRegister) SetEnable(en rtlsim.BitSignal) error {
	if err := rtlsim.SameDesign(r.Design(), en); err != nil {
		return err
	}
	r.enable = en
	return nil
}

// Init sets the current and next value. It must only be called between edges.
//
func (r *VectorRegister) Init(v uint64) {
	r.value = VectorOf(r.value.Width(), v)
	r.next = r.value
}

// SetNext sets the value loaded on the next edge when the register has no
// input.
//
func (r *VectorRegister) SetNext(v uint64) { r.next = VectorOf(r.value.Width(), v) }

// Width implements VectorSignal.
//
func (r *VectorRegister) Width() int { return r.value.Width() }

// Value implements VectorSignal.
//
func (r *VectorRegister) Value() Vector { return r.value }

// ClockSignal implements rtlsim.ClockedItem.
//
func (r *VectorRegister) ClockSignal() rtlsim.ClockSignal { return r.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (r *VectorRegister) ComputeNextState() {
	switch {
	case r.in == nil:
	case r.enable != nil && !r.enable.Value():
		r.next = r.value
	default:
		r.next = r.in.Value()
	}
}

// UpdateState implements rtlsim.ClockedItem.
//
func (r *VectorRegister) UpdateState() { r.value = r.next }
