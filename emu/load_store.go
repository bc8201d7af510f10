// Package emu provides functional RV32I emulation.
package emu

// LoadStoreUnit implements RV32I load and store operations. Addresses
// are always rs1 + offset.
type LoadStoreUnit struct {
	regFile *RegFile
	memory  *Memory
}

// NewLoadStoreUnit creates a new LoadStoreUnit connected to the given
// register file and memory.
func NewLoadStoreUnit(regFile *RegFile, memory *Memory) *LoadStoreUnit {
	return &LoadStoreUnit{
		regFile: regFile,
		memory:  memory,
	}
}

func (lsu *LoadStoreUnit) addr(rs1 uint8, offset int32) uint32 {
	base := lsu.regFile.ReadGPR(rs1)
	return uint32(base + offset)
}

// LB loads a sign-extended byte: rd = mem[rs1+offset].
func (lsu *LoadStoreUnit) LB(rd, rs1 uint8, offset int32) error {
	v, err := lsu.memory.LoadByte(lsu.addr(rs1, offset))
	if err != nil {
		return err
	}
	lsu.regFile.WriteGPR(rd, v)
	return nil
}

// LBU loads a zero-extended byte: rd = mem[rs1+offset].
func (lsu *LoadStoreUnit) LBU(rd, rs1 uint8, offset int32) error {
	v, err := lsu.memory.LoadByteU(lsu.addr(rs1, offset))
	if err != nil {
		return err
	}
	lsu.regFile.WriteGPR(rd, v)
	return nil
}

// LH loads a sign-extended halfword.
func (lsu *LoadStoreUnit) LH(rd, rs1 uint8, offset int32) error {
	v, err := lsu.memory.LoadHalf(lsu.addr(rs1, offset))
	if err != nil {
		return err
	}
	lsu.regFile.WriteGPR(rd, v)
	return nil
}

// LHU loads a zero-extended halfword.
func (lsu *LoadStoreUnit) LHU(rd, rs1 uint8, offset int32) error {
	v, err := lsu.memory.LoadHalfU(lsu.addr(rs1, offset))
	if err != nil {
		return err
	}
	lsu.regFile.WriteGPR(rd, v)
	return nil
}

// LW loads a 32-bit word.
func (lsu *LoadStoreUnit) LW(rd, rs1 uint8, offset int32) error {
	v, err := lsu.memory.LoadWord(lsu.addr(rs1, offset))
	if err != nil {
		return err
	}
	lsu.regFile.WriteGPR(rd, v)
	return nil
}

// SB stores the low 8 bits of rs2 at rs1+offset.
func (lsu *LoadStoreUnit) SB(rs1, rs2 uint8, offset int32) error {
	v := lsu.regFile.ReadGPR(rs2)
	return lsu.memory.StoreByte(lsu.addr(rs1, offset), int8(v))
}

// SH stores the low 16 bits of rs2 at rs1+offset.
func (lsu *LoadStoreUnit) SH(rs1, rs2 uint8, offset int32) error {
	v := lsu.regFile.ReadGPR(rs2)
	return lsu.memory.StoreHalf(lsu.addr(rs1, offset), int16(v))
}

// SW stores rs2 at rs1+offset.
func (lsu *LoadStoreUnit) SW(rs1, rs2 uint8, offset int32) error {
	v := lsu.regFile.ReadGPR(rs2)
	return lsu.memory.StoreWord(lsu.addr(rs1, offset), v)
}
