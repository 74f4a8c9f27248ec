// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/rtlsim"
	"github.com/pkg/errors"
)

// A Memory is an array of vectors accessed through ports.
//
// Several synchronous ports may write the same memory on the same clock edge,
// but then the outcome of writes to the same address is undefined.
//
type Memory struct {
	rtlsim.ItemBase
	width int
	data  []Vector
}

// NewMemory returns a new memory of size words of the given width, all 0.
//
func NewMemory(d *rtlsim.Design, size, width int) (*Memory, error) {
	if size < 1 {
		return nil, errors.Errorf("invalid memory size %d", size)
	}
	if width < 1 || width > MaxWidth {
		return nil, errors.Errorf("invalid vector width %d", width)
	}
	m := &Memory{width: width, data: make([]Vector, size)}
	for i := range m.data {
		m.data[i] = VectorOf(width, 0)
	}
	return m, d.Add(m)
}

// Size returns the number of words.
//
func (m *Memory) Size() int { return len(m.data) }

// Width returns the word width.
//
func (m *Memory) Width() int { return m.width }

func (m *Memory) check(addr uint64) int {
	if addr >= uint64(len(m.data)) {
		panic(errors.Errorf("memory address %d out of range [0, %d)", addr, len(m.data)))
	}
	return int(addr)
}

// Read returns the word at addr. It must only be called between edges.
//
func (m *Memory) Read(addr int) (Vector, error) {
	if addr < 0 || addr >= len(m.data) {
		return Vector{}, errors.Errorf("memory address %d out of range [0, %d)", addr, len(m.data))
	}
	return m.data[addr], nil
}

// Write sets the word at addr. It must only be called between edges.
//
func (m *Memory) Write(addr int, v uint64) error {
	if addr < 0 || addr >= len(m.data) {
		return errors.Errorf("memory address %d out of range [0, %d)", addr, len(m.data))
	}
	m.data[addr] = VectorOf(m.width, v)
	return nil
}

type asyncReadPort struct {
	m    *Memory
	addr VectorSignal
}

func (p *asyncReadPort) Width() int    { return p.m.width }
func (p *asyncReadPort) Value() Vector { return p.m.data[p.m.check(p.addr.Value().Uint64())] }

// AsyncReadPort returns a combinational read port. Reading it with an out of
// range address panics.
//
//	Function: out = mem[addr]
//
func (m *Memory) AsyncReadPort(addr VectorSignal) VectorSignal {
	checkVectors(addr)
	return &asyncReadPort{m, addr}
}

// A SyncPort is a clocked memory port. On each edge it registers the word at
// addr (before any write on that edge) and, if write enable is set, writes
// data at addr.
//
type SyncPort struct {
	rtlsim.ItemBase
	m     *Memory
	clk   rtlsim.ClockSignal
	addr  VectorSignal
	data  VectorSignal
	we    rtlsim.BitSignal
	read  Vector
	next  Vector
	wAddr int
	wData Vector
	write bool
}

// NewSyncPort returns a new synchronous port for m. data and we may both be
// nil for a read-only port.
//
func (m *Memory) NewSyncPort(clk rtlsim.ClockSignal, addr, data VectorSignal, we rtlsim.BitSignal) (*SyncPort, error) {
	d := m.Design()
	if clk == nil || addr == nil {
		return nil, errors.New("nil clock or address signal")
	}
	if (data == nil) != (we == nil) {
		return nil, errors.New("data and write enable must be both set or both nil")
	}
	if data != nil && data.Width() != m.width {
		return nil, errors.Errorf("data width %d, expected %d", data.Width(), m.width)
	}
	if err := rtlsim.SameDesign(d, clk, addr, data, we); err != nil {
		return nil, err
	}
	p := &SyncPort{m: m, clk: clk, addr: addr, data: data, we: we, read: VectorOf(m.width, 0)}
	return p, d.Add(p)
}

// Width implements VectorSignal.
//
func (p *SyncPort) Width() int { return p.m.width }

// Value returns the registered read data.
//
func (p *SyncPort) Value() Vector { return p.read }

// ClockSignal implements rtlsim.ClockedItem.
//
func (p *SyncPort) ClockSignal() rtlsim.ClockSignal { return p.clk }

// ComputeNextState implements rtlsim.ClockedItem.
//
func (p *SyncPort) ComputeNextState() {
	a := p.m.check(p.addr.Value().Uint64())
	p.next = p.m.data[a]
	p.write = p.we != nil && p.we.Value()
	if p.write {
		p.wAddr, p.wData = a, p.data.Value()
	}
}

// UpdateState implements rtlsim.ClockedItem.
//
func (p *SyncPort) UpdateState() {
	if p.write {
		p.m.data[p.wAddr] = p.wData
	}
	p.read = p.next
}
