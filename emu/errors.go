package emu

import "fmt"

// MemoryRangeError reports a fetch/load/store address outside [0, Size).
type MemoryRangeError struct {
	Addr  uint32
	Width uint32
	Size  uint32
}

func (e MemoryRangeError) Error() string {
	return fmt.Sprintf("memory access out of range: addr=0x%X width=%d size=%d", e.Addr, e.Width, e.Size)
}

// ValueRangeError reports a store value outside the signed range for its width.
type ValueRangeError struct {
	Width uint32
	Value int64
}

func (e ValueRangeError) Error() string {
	return fmt.Sprintf("value %d out of range for %d-bit store", e.Value, e.Width)
}

// RegisterIndexKind distinguishes which register space an out-of-range
// index was presented against.
type RegisterIndexKind uint8

const (
	// RegisterIndexGPR marks a general-purpose register index.
	RegisterIndexGPR RegisterIndexKind = iota
	// RegisterIndexCSR marks a control-and-status register index.
	RegisterIndexCSR
)

// RegisterIndexError reports a GPR index ≥32 or CSR index ≥4096. This is
// a programmer error, distinct from an architectural condition.
type RegisterIndexError struct {
	Kind  RegisterIndexKind
	Index uint32
}

func (e RegisterIndexError) Error() string {
	kind := "GPR"
	if e.Kind == RegisterIndexCSR {
		kind = "CSR"
	}
	return fmt.Sprintf("%s index %d out of range", kind, e.Index)
}

// IllegalInstructionError reports a decode failure at a given PC.
type IllegalInstructionError struct {
	PC   uint32
	Word uint32
}

func (e IllegalInstructionError) Error() string {
	return fmt.Sprintf("illegal instruction 0x%08X at PC=0x%X", e.Word, e.PC)
}

// UnimplementedError reports a decoded-but-stubbed operation (ADDIW) was
// reached.
type UnimplementedError struct {
	PC   uint32
	Word uint32
	Op   string
}

func (e UnimplementedError) Error() string {
	return fmt.Sprintf("unimplemented operation %s (0x%08X) at PC=0x%X", e.Op, e.Word, e.PC)
}
