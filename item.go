// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package rtlsim

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// An Item is anything registered with a Design. Items are created by
// constructors that take the Design as first argument and call Design.Add.
//
// Custom items get the Item methods by embedding an ItemBase:
//
//	type Probe struct {
//		rtlsim.ItemBase
//		in rtlsim.BitSignal
//	}
//
//	func NewProbe(d *rtlsim.Design, in rtlsim.BitSignal) (*Probe, error) {
//		p := &Probe{in: in}
//		return p, d.Add(p)
//	}
//
type Item interface {
	Design() *Design
	Name() string
	base() *ItemBase
}

// ItemBase implements Item. It must be embedded in every item.
//
type ItemBase struct {
	design *Design
	name   string
}

// Design returns the design the item is registered with, or nil.
//
func (b *ItemBase) Design() *Design { return b.design }

// Name returns the item name. Unnamed items have an empty name.
//
func (b *ItemBase) Name() string { return b.name }

// SetName sets the item name.
//
func (b *ItemBase) SetName(name string) { b.name = name }

func (b *ItemBase) base() *ItemBase { return b }

// Initializer is implemented by items that need a one-time setup once the
// whole design is known. InitializeSimulation is called by Design.Prepare, in
// registration order. This is where driver items schedule their first event.
//
type Initializer interface {
	InitializeSimulation() error
}

// Validator is implemented by items that can check their own wiring. Validate
// is called by Design.Prepare before any InitializeSimulation.
//
type Validator interface {
	Validate() error
}

// SameDesign returns an error if any of the given values is an Item that is
// not registered with d. Values that are not items (constants, gates) are
// ignored.
//
func SameDesign(d *Design, values ...interface{}) error {
	for _, v := range values {
		it, ok := v.(Item)
		if !ok || isNil(it) {
			continue
		}
		if it.Design() != d {
			return errors.Wrapf(ErrForeignItem, "%s", itemName(it))
		}
	}
	return nil
}

// isNil reports whether it is nil or a typed nil pointer.
func isNil(it Item) bool {
	if it == nil {
		return true
	}
	v := reflect.ValueOf(it)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

func itemName(it Item) string {
	if it == nil {
		return "<anonymous>"
	}
	if isNil(it) {
		return fmt.Sprintf("%T(nil)", it)
	}
	if n := it.Name(); n != "" {
		return n
	}
	return fmt.Sprintf("%T", it)
}
