// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/db47h/rtlsim"
	"github.com/db47h/rtlsim/hwlib"
)

// exhaustive tests are limited to that many inputs.
const maxExhaustive = 12

func randBool(r *rand.Rand) bool {
	return r.Int63()&(1<<62) != 0
}

// CompareBits checks that the combinational signals a and b have the same
// value for all combinations of the given inputs. If there are more than 12
// inputs, 4096 random combinations are tried instead, plus all 0 and all 1.
//
// The inputs are left in an unspecified state.
//
func CompareBits(t testing.TB, inputs []*hwlib.SettableBit, a, b rtlsim.BitSignal) {
	t.Helper()

	errString := func(ex, got bool) string {
		var b strings.Builder
		for i, in := range inputs {
			if b.Len() > 0 {
				b.WriteString(", ")
			}
			name := in.Name()
			if name == "" {
				name = fmt.Sprintf("in%d", i)
			}
			fmt.Fprintf(&b, "%s=%v", name, in.Value())
		}
		return fmt.Sprintf("\nFor %s\nExpected %v\nGot %v", b.String(), ex, got)
	}

	check := func() bool {
		if va, vb := a.Value(), b.Value(); va != vb {
			t.Error(errString(va, vb))
			return false
		}
		return true
	}

	if len(inputs) <= maxExhaustive {
		for i := 0; i < 1<<uint(len(inputs)); i++ {
			for bit, in := range inputs {
				in.Set(i&(1<<uint(bit)) != 0)
			}
			if !check() {
				return
			}
		}
		return
	}

	// try all 0, all 1
	for _, v := range []bool{false, true} {
		for _, in := range inputs {
			in.Set(v)
		}
		if !check() {
			return
		}
	}
	r := rand.New(rand.NewSource(int64(len(inputs))))
	for i := 0; i < 1<<maxExhaustive; i++ {
		for _, in := range inputs {
			in.Set(randBool(r))
		}
		if !check() {
			return
		}
	}
}
