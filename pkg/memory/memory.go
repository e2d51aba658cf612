// Package memory implements the byte-addressable flat memory model: a
// fixed-capacity byte array initialized from the ELF image, with
// little-endian 1..4 byte read/write.
package memory

import (
	"errors"
	"fmt"
)

// ErrOutOfRange indicates an access beyond the memory image. It is fatal.
var ErrOutOfRange = errors.New("memory: access out of range")

// Memory is a flat byte-addressable memory, single-ported from the
// pipeline's perspective.
type Memory struct {
	data     []byte
	startPC  uint32
	stackPtr uint32
}

// New returns a Memory of the given capacity, pre-loaded with image at
// address 0, and the entry PC / stack pointer the loader reported. The
// image must not exceed capacity.
func New(capacity int, image []byte, startPC, stackPtr uint32) (*Memory, error) {
	if len(image) > capacity {
		return nil, fmt.Errorf("%w: image of %d bytes exceeds capacity %d", ErrOutOfRange, len(image), capacity)
	}
	data := make([]byte, capacity)
	copy(data, image)
	return &Memory{data: data, startPC: startPC, stackPtr: stackPtr}, nil
}

// GetStartPC returns the entry PC the loader reported at construction.
func (m *Memory) GetStartPC() uint32 { return m.startPC }

// GetStackPointer returns the initial stack pointer the loader reported.
func (m *Memory) GetStackPointer() uint32 { return m.stackPtr }

// Read returns the little-endian assembly of n bytes (1..4) starting at
// addr. Out-of-range access is fatal.
func (m *Memory) Read(addr uint32, n int) (uint32, error) {
	if err := m.checkRange(addr, n); err != nil {
		return 0, err
	}
	var value uint32
	for i := 0; i < n; i++ {
		value |= uint32(m.data[addr+uint32(i)]) << (8 * uint(i))
	}
	return value, nil
}

// Write decomposes the low n bytes (1..4) of value little-endian into
// memory starting at addr. Out-of-range access is fatal.
func (m *Memory) Write(value uint32, addr uint32, n int) error {
	if err := m.checkRange(addr, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		m.data[addr+uint32(i)] = byte(value >> (8 * uint(i)))
	}
	return nil
}

func (m *Memory) checkRange(addr uint32, n int) error {
	if n < 1 || n > 4 {
		return fmt.Errorf("%w: invalid access width %d", ErrOutOfRange, n)
	}
	end := uint64(addr) + uint64(n)
	if end > uint64(len(m.data)) {
		return fmt.Errorf("%w: addr=%#x n=%d capacity=%d", ErrOutOfRange, addr, n, len(m.data))
	}
	return nil
}
