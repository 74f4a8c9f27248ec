// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

// A BitConnector is a placeholder for a signal that is not known when the
// connector is created, like a feedback loop from a register built later.
// It must be connected before the simulation is prepared.
//
type BitConnector struct {
	rtlsim.ItemBase
	connected rtlsim.BitSignal
}

// NewBitConnector returns a new unconnected BitConnector.
//
func NewBitConnector(d *rtlsim.Design) (*BitConnector, error) {
	c := new(BitConnector)
	return c, d.Add(c)
}

// Connect connects c to s.
//
func (c *BitConnector) Connect(s rtlsim.BitSignal) error {
	if s == nil {
		return errors.New("nil signal")
	}
	if err := rtlsim.SameDesign(c.Design(), s); err != nil {
		return err
	}
	c.connected = s
	return nil
}

// Value implements rtlsim.BitSignal. It panics if c is not connected.
//
func (c *BitConnector) Value() bool {
	if c.connected == nil {
		panic(errors.Errorf("%s: bit connector not connected", c.Name()))
	}
	return c.connected.Value()
}

// Validate implements rtlsim.Validator.
//
func (c *BitConnector) Validate() error {
	if c.connected == nil {
		return errors.New("bit connector not connected")
	}
	return nil
}
