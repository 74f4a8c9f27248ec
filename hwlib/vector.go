// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"fmt"

	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

// MaxWidth is the maximum width of a Vector.
//
const MaxWidth = 64

// A Vector is a fixed width bit vector of 1 to 64 bits. Bit 0 is the lsb.
// The zero Vector is invalid.
//
type Vector struct {
	width uint8
	bits  uint64
}

func mask(width int) uint64 {
	if width == MaxWidth {
		return ^uint64(0)
	}
	return 1<<uint(width) - 1
}

// VectorOf returns a vector of the given width. Bits of v beyond width are
// dropped. It panics if width is not in [1, 64].
//
func VectorOf(width int, v uint64) Vector {
	if width < 1 || width > MaxWidth {
		panic(errors.Errorf("invalid vector width %d", width))
	}
	return Vector{uint8(width), v & mask(width)}
}

// Width returns the vector width.
//
func (v Vector) Width() int { return int(v.width) }

// Uint64 returns the vector value as an unsigned integer.
//
func (v Vector) Uint64() uint64 { return v.bits }

// Int64 returns the vector value as a two's complement signed integer.
//
func (v Vector) Int64() int64 {
	shift := uint(MaxWidth - int(v.width))
	return int64(v.bits<<shift) >> shift
}

// Bit returns bit i.
//
func (v Vector) Bit(i int) bool {
	return v.bits&(1<<uint(i)) != 0
}

// Add returns v + o, truncated to the width of v.
//
func (v Vector) Add(o Vector) Vector {
	return Vector{v.width, (v.bits + o.bits) & mask(int(v.width))}
}

func (v Vector) String() string {
	return fmt.Sprintf("%d'h%x", v.width, v.bits)
}

// Pack returns the state of the given bits as a vector. Bit 0 is the lsb.
//
func Pack(bits ...rtlsim.BitSignal) Vector {
	var out uint64
	for i, b := range bits {
		if b.Value() {
			out |= 1 << uint(i)
		}
	}
	return VectorOf(len(bits), out)
}
