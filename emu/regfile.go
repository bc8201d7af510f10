// Package emu provides functional RV32I emulation.
package emu

// RegFile represents the RV32I architectural register state.
// It contains 32 general-purpose registers (x0-x31, x0 hardwired to
// zero), the program counter, and the 4096-entry CSR space used by
// Zicsr.
type RegFile struct {
	// X holds general-purpose registers x0-x31. X[0] always reads as 0;
	// writes to it are silently dropped.
	X [32]int32

	// PC is the program counter.
	PC uint32

	// CSR holds the 4096-entry control-and-status register space.
	CSR [4096]int32
}

// ReadGPR reads a general-purpose register. x0 always reads as 0.
func (r *RegFile) ReadGPR(reg uint8) int32 {
	if reg == 0 {
		return 0
	}
	return r.X[reg]
}

// WriteGPR writes a value to a general-purpose register. Writes to x0
// are silently dropped.
func (r *RegFile) WriteGPR(reg uint8, value int32) {
	if reg == 0 {
		return
	}
	r.X[reg] = value
}

// GetPC returns the program counter.
func (r *RegFile) GetPC() uint32 {
	return r.PC
}

// SetPC sets the program counter.
func (r *RegFile) SetPC(value uint32) {
	r.PC = value
}

// IncrementPC advances the program counter by 4.
func (r *RegFile) IncrementPC() {
	r.PC += 4
}

// ReadCSR reads a control-and-status register. No permission gating is
// performed; every CSR index in range is readable. csr must be < 4096;
// an out-of-range index is a programmer error and is reported as
// RegisterIndexError rather than panicking.
func (r *RegFile) ReadCSR(csr uint16) (int32, error) {
	if int(csr) >= len(r.CSR) {
		return 0, RegisterIndexError{Kind: RegisterIndexCSR, Index: uint32(csr)}
	}
	return r.CSR[csr], nil
}

// WriteCSR writes a control-and-status register. csr must be < 4096;
// an out-of-range index is reported as RegisterIndexError.
func (r *RegFile) WriteCSR(csr uint16, value int32) error {
	if int(csr) >= len(r.CSR) {
		return RegisterIndexError{Kind: RegisterIndexCSR, Index: uint32(csr)}
	}
	r.CSR[csr] = value
	return nil
}

// Reset zeros all GPRs, the PC, and all CSRs.
func (r *RegFile) Reset() {
	r.X = [32]int32{}
	r.PC = 0
	r.CSR = [4096]int32{}
}
