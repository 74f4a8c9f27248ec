// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

func checkVectors(in ...VectorSignal) {
	for _, v := range in {
		if v == nil {
			panic("nil input signal")
		}
	}
}

func checkSameWidth(a, b VectorSignal) {
	checkVectors(a, b)
	if a.Width() != b.Width() {
		panic(errors.Errorf("width mismatch: %d != %d", a.Width(), b.Width()))
	}
}

type adder struct {
	a, b VectorSignal
}

func (s *adder) Width() int    { return s.a.Width() }
func (s *adder) Value() Vector { return s.a.Value().Add(s.b.Value()) }

// Add returns an adder. a and b must have the same width. The carry out is
// dropped.
//
//	Function: out = a + b
//
func Add(a, b VectorSignal) VectorSignal {
	checkSameWidth(a, b)
	return &adder{a, b}
}

type equal struct {
	a, b VectorSignal
}

func (e *equal) Value() bool { return e.a.Value() == e.b.Value() }

// Equal returns a comparator. a and b must have the same width.
//
//	Function: out = a == b
//
func Equal(a, b VectorSignal) rtlsim.BitSignal {
	checkSameWidth(a, b)
	return &equal{a, b}
}

type bitsN []rtlsim.BitSignal

func (b bitsN) Width() int    { return len(b) }
func (b bitsN) Value() Vector { return Pack(b...) }

// Concat returns a vector made of the given bits. Bit 0 is the lsb.
//
func Concat(bits ...rtlsim.BitSignal) VectorSignal {
	if len(bits) == 0 || len(bits) > MaxWidth {
		panic(errors.Errorf("invalid vector width %d", len(bits)))
	}
	checkBits(bits...)
	return bitsN(append([]rtlsim.BitSignal(nil), bits...))
}
