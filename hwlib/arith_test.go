// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/rtlsim"
	hl "github.com/db47h/rtlsim/hwlib"
)

func TestVector(t *testing.T) {
	f := func(w uint8, v uint64) bool {
		width := int(w%hl.MaxWidth) + 1
		x := hl.VectorOf(width, v)
		if x.Width() != width {
			return false
		}
		m := ^uint64(0) >> uint(hl.MaxWidth-width)
		if x.Uint64() != v&m {
			return false
		}
		// sign extension
		neg := x.Bit(width - 1)
		if (x.Int64() < 0) != neg {
			return false
		}
		return uint64(x.Int64())&m == x.Uint64()
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestVector_Add(t *testing.T) {
	f := func(a, b uint8) bool {
		x := hl.VectorOf(4, uint64(a)).Add(hl.VectorOf(4, uint64(b)))
		return x.Uint64() == uint64((a+b)&0xf) && x.Width() == 4
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestVectorOf_invalid(t *testing.T) {
	for _, w := range []int{0, -1, hl.MaxWidth + 1} {
		func() {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("width %d: expected panic", w)
				}
			}()
			hl.VectorOf(w, 0)
		}()
	}
}

func TestVector_String(t *testing.T) {
	if s := hl.VectorOf(8, 0xab).String(); s != "8'hab" {
		t.Fatalf("expected 8'hab, got %s", s)
	}
}

func TestAdd(t *testing.T) {
	d := rtlsim.NewDesign()
	a, err := hl.NewSettableVector(d, 8, 0)
	if err != nil {
		t.Fatal(err)
	}
	b, err := hl.NewSettableVector(d, 8, 0)
	if err != nil {
		t.Fatal(err)
	}
	sum := hl.Add(a, b)
	eq := hl.Equal(sum, hl.ConstVector(8, 0))
	f := func(x, y uint8) bool {
		a.Set(uint64(x))
		b.Set(uint64(y))
		return sum.Value().Uint64() == uint64(x+y) && eq.Value() == (x+y == 0)
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestConcat(t *testing.T) {
	d := rtlsim.NewDesign()
	in := newInputs(t, d, 4)
	bits := []rtlsim.BitSignal{in[0], in[1], in[2], in[3]}
	v := hl.Concat(bits...)
	if v.Width() != 4 {
		t.Fatalf("expected width 4, got %d", v.Width())
	}
	for i := uint64(0); i < 16; i++ {
		for bit, s := range in {
			s.Set(i&(1<<uint(bit)) != 0)
		}
		if got := v.Value().Uint64(); got != i {
			t.Fatalf("expected %d, got %d", i, got)
		}
		for bit := range in {
			if hl.Index(v, bit).Value() != in[bit].Value() {
				t.Fatalf("value %d: bad index %d", i, bit)
			}
		}
	}
}

func TestMuxVector(t *testing.T) {
	d := rtlsim.NewDesign()
	sel, err := hl.NewSettableBit(d, false)
	if err != nil {
		t.Fatal(err)
	}
	m := hl.MuxVector(sel, hl.ConstVector(4, 3), hl.ConstVector(4, 12))
	if v := m.Value().Uint64(); v != 3 {
		t.Fatalf("sel=0: expected 3, got %d", v)
	}
	sel.Set(true)
	if v := m.Value().Uint64(); v != 12 {
		t.Fatalf("sel=1: expected 12, got %d", v)
	}

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected panic on width mismatch")
		}
	}()
	hl.MuxVector(sel, hl.ConstVector(4, 0), hl.ConstVector(5, 0))
}
