// Package emu provides functional RV32I emulation.
package emu

// BranchUnit implements RV32I control-transfer operations: the six
// conditional branches, JAL, and JALR. Unlike the arithmetic and
// logic units, BranchUnit writes PC directly rather than leaving PC
// advancement to the driver.
type BranchUnit struct {
	regFile *RegFile
}

// NewBranchUnit creates a new BranchUnit connected to the given register file.
func NewBranchUnit(regFile *RegFile) *BranchUnit {
	return &BranchUnit{regFile: regFile}
}

// branchIf evaluates cond and sets PC to pc+offset if true, else
// advances PC to the next instruction.
func (b *BranchUnit) branchIf(cond bool, offset int32) {
	if cond {
		b.regFile.PC = uint32(int64(int32(b.regFile.PC)) + int64(offset))
	} else {
		b.regFile.IncrementPC()
	}
}

// BEQ branches if rs1 == rs2.
func (b *BranchUnit) BEQ(rs1, rs2 uint8, offset int32) {
	b.branchIf(b.regFile.ReadGPR(rs1) == b.regFile.ReadGPR(rs2), offset)
}

// BNE branches if rs1 != rs2.
func (b *BranchUnit) BNE(rs1, rs2 uint8, offset int32) {
	b.branchIf(b.regFile.ReadGPR(rs1) != b.regFile.ReadGPR(rs2), offset)
}

// BLT branches if rs1 < rs2, signed.
func (b *BranchUnit) BLT(rs1, rs2 uint8, offset int32) {
	b.branchIf(b.regFile.ReadGPR(rs1) < b.regFile.ReadGPR(rs2), offset)
}

// BGE branches if rs1 >= rs2, signed.
func (b *BranchUnit) BGE(rs1, rs2 uint8, offset int32) {
	b.branchIf(b.regFile.ReadGPR(rs1) >= b.regFile.ReadGPR(rs2), offset)
}

// BLTU branches if rs1 < rs2, unsigned.
func (b *BranchUnit) BLTU(rs1, rs2 uint8, offset int32) {
	op1 := uint32(b.regFile.ReadGPR(rs1))
	op2 := uint32(b.regFile.ReadGPR(rs2))
	b.branchIf(op1 < op2, offset)
}

// BGEU branches if rs1 >= rs2, unsigned.
func (b *BranchUnit) BGEU(rs1, rs2 uint8, offset int32) {
	op1 := uint32(b.regFile.ReadGPR(rs1))
	op2 := uint32(b.regFile.ReadGPR(rs2))
	b.branchIf(op1 >= op2, offset)
}

// JAL saves PC+4 to rd, then sets PC to PC+offset.
func (b *BranchUnit) JAL(rd uint8, offset int32) {
	ret := b.regFile.PC + 4
	b.regFile.PC = uint32(int64(int32(b.regFile.PC)) + int64(offset))
	b.regFile.WriteGPR(rd, int32(ret))
}

// JALR saves PC+4 to rd, then sets PC to (rs1+offset) with bit 0
// cleared.
func (b *BranchUnit) JALR(rd, rs1 uint8, offset int32) {
	target := uint32(b.regFile.ReadGPR(rs1)+offset) &^ 1
	ret := b.regFile.PC + 4
	b.regFile.PC = target
	b.regFile.WriteGPR(rd, int32(ret))
}
