// Package emu provides functional RV32I emulation.
package emu

// Memory is a flat, little-endian byte array addressed by the 32-bit
// RV32I address space. It is exclusively owned by a single CPU for its
// lifetime.
type Memory struct {
	bytes []byte
}

// NewMemory creates a Memory backed by size bytes, all initialized to
// zero.
func NewMemory(size uint32) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Size returns the number of addressable bytes.
func (m *Memory) Size() uint32 {
	return uint32(len(m.bytes))
}

func (m *Memory) inRange(addr uint32, width uint32) bool {
	if addr > m.Size() {
		return false
	}
	return uint64(addr)+uint64(width) <= uint64(m.Size())
}

// FetchWord reads a 32-bit instruction word at addr.
func (m *Memory) FetchWord(addr uint32) (uint32, error) {
	if !m.inRange(addr, 4) {
		return 0, MemoryRangeError{Addr: addr, Width: 4, Size: m.Size()}
	}
	return m.readLE32(addr), nil
}

// LoadWord reads a signed 32-bit value at addr.
func (m *Memory) LoadWord(addr uint32) (int32, error) {
	if !m.inRange(addr, 4) {
		return 0, MemoryRangeError{Addr: addr, Width: 4, Size: m.Size()}
	}
	return int32(m.readLE32(addr)), nil
}

// StoreWord writes the signed 32-bit value v at addr.
func (m *Memory) StoreWord(addr uint32, v int32) error {
	if !m.inRange(addr, 4) {
		return MemoryRangeError{Addr: addr, Width: 4, Size: m.Size()}
	}
	m.writeLE32(addr, uint32(v))
	return nil
}

// LoadHalf reads a sign-extended 16-bit value at addr.
func (m *Memory) LoadHalf(addr uint32) (int32, error) {
	if !m.inRange(addr, 2) {
		return 0, MemoryRangeError{Addr: addr, Width: 2, Size: m.Size()}
	}
	return int32(int16(m.readLE16(addr))), nil
}

// LoadHalfU reads a zero-extended 16-bit value at addr.
func (m *Memory) LoadHalfU(addr uint32) (int32, error) {
	if !m.inRange(addr, 2) {
		return 0, MemoryRangeError{Addr: addr, Width: 2, Size: m.Size()}
	}
	return int32(m.readLE16(addr)), nil
}

// StoreHalf writes the low 16 bits of v at addr.
func (m *Memory) StoreHalf(addr uint32, v int16) error {
	if !m.inRange(addr, 2) {
		return MemoryRangeError{Addr: addr, Width: 2, Size: m.Size()}
	}
	m.writeLE16(addr, uint16(v))
	return nil
}

// LoadByte reads a sign-extended 8-bit value at addr.
func (m *Memory) LoadByte(addr uint32) (int32, error) {
	if !m.inRange(addr, 1) {
		return 0, MemoryRangeError{Addr: addr, Width: 1, Size: m.Size()}
	}
	return int32(int8(m.bytes[addr])), nil
}

// LoadByteU reads a zero-extended 8-bit value at addr.
func (m *Memory) LoadByteU(addr uint32) (int32, error) {
	if !m.inRange(addr, 1) {
		return 0, MemoryRangeError{Addr: addr, Width: 1, Size: m.Size()}
	}
	return int32(m.bytes[addr]), nil
}

// StoreByte writes the low 8 bits of v at addr.
func (m *Memory) StoreByte(addr uint32, v int8) error {
	if !m.inRange(addr, 1) {
		return MemoryRangeError{Addr: addr, Width: 1, Size: m.Size()}
	}
	m.bytes[addr] = uint8(v)
	return nil
}

// Reset zeroes every byte.
func (m *Memory) Reset() {
	for i := range m.bytes {
		m.bytes[i] = 0
	}
}

// LoadProgram copies program into memory starting at address 0.
func (m *Memory) LoadProgram(program []byte) error {
	if !m.inRange(0, uint32(len(program))) {
		return MemoryRangeError{Addr: 0, Width: uint32(len(program)), Size: m.Size()}
	}
	copy(m.bytes, program)
	return nil
}

func (m *Memory) readLE16(addr uint32) uint16 {
	return uint16(m.bytes[addr]) | uint16(m.bytes[addr+1])<<8
}

func (m *Memory) writeLE16(addr uint32, v uint16) {
	m.bytes[addr] = byte(v)
	m.bytes[addr+1] = byte(v >> 8)
}

func (m *Memory) readLE32(addr uint32) uint32 {
	return uint32(m.bytes[addr]) |
		uint32(m.bytes[addr+1])<<8 |
		uint32(m.bytes[addr+2])<<16 |
		uint32(m.bytes[addr+3])<<24
}

func (m *Memory) writeLE32(addr uint32, v uint32) {
	m.bytes[addr] = byte(v)
	m.bytes[addr+1] = byte(v >> 8)
	m.bytes[addr+2] = byte(v >> 16)
	m.bytes[addr+3] = byte(v >> 24)
}
