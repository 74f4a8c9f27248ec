// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib_test

import (
	"testing"

	"github.com/db47h/rtlsim"
	hl "github.com/db47h/rtlsim/hwlib"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestDebugOutput(t *testing.T) {
	d := rtlsim.NewDesign()
	clk, s := newClock(t, d)
	cnt, err := hl.NewVectorRegister(d, clk, 4, nil)
	if err != nil {
		t.Fatal(err)
	}
	if err = cnt.SetInput(hl.Add(cnt, hl.ConstVector(4, 1))); err != nil {
		t.Fatal(err)
	}
	en, err := hl.NewSettableBit(d, true)
	if err != nil {
		t.Fatal(err)
	}
	var got []int64
	if _, err = hl.NewDebugOutput(d, clk, cnt, en, func(v int64) { got = append(got, v) }); err != nil {
		t.Fatal(err)
	}
	prepare(t, d)

	step(t, s, 3)
	en.Set(false)
	step(t, s, 2)
	en.Set(true)
	step(t, s, 4)

	// 4 bit two's complement: 7 wraps to -8 on the next edge
	ex := []int64{0, 1, 2, 5, 6, 7, -8}
	if len(got) != len(ex) {
		t.Fatalf("expected %v, got %v", ex, got)
	}
	for i := range ex {
		if got[i] != ex[i] {
			t.Fatalf("expected %v, got %v", ex, got)
		}
	}
}

func TestLogOutput(t *testing.T) {
	log, hook := test.NewNullLogger()
	fn := hl.LogOutput(log, "cnt")
	fn(-3)
	e := hook.LastEntry()
	if e == nil {
		t.Fatal("no log entry")
	}
	if e.Level != logrus.InfoLevel || e.Message != "-3" || e.Data["signal"] != "cnt" {
		t.Fatalf("unexpected entry: %v %q %v", e.Level, e.Message, e.Data)
	}
}
