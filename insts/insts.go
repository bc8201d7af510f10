// Package insts provides RV32I instruction definitions and decoding.
//
// This package implements decoding of RV32I machine code into structured
// instruction representations. It supports:
//   - Upper immediate: LUI, AUIPC
//   - Jumps and branches: JAL, JALR, BEQ/BNE/BLT/BGE/BLTU/BGEU
//   - Integer register-immediate: ADDI, SLTI, SLTIU, XORI, ORI, ANDI,
//     SLLI, SRLI, SRAI
//   - Integer register-register: ADD, SUB, SLL, SLT, SLTU, XOR, SRL,
//     SRA, OR, AND
//   - Loads and stores: LB, LH, LW, LBU, LHU, SB, SH, SW
//   - System and Zicsr: ECALL, EBREAK, FENCE, CSRRW, CSRRS, CSRRC,
//     CSRRWI, CSRRSI, CSRRCI
//   - The RV64-only ADDIW encoding, recognized but left unimplemented
//
// Usage:
//
//	decoder := insts.NewDecoder()
//	inst := decoder.Decode(0x12345137) // LUI x2, 0x12345
//	fmt.Printf("Op: %v, Rd: %d, Imm: %d\n", inst.Op, inst.Rd, inst.Imm)
package insts
