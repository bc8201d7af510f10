package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/haradama/iriscv-board/emu"
)

var _ = Describe("BranchUnit", func() {
	var (
		regFile    *emu.RegFile
		branchUnit *emu.BranchUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		regFile.SetPC(0x1000)
		branchUnit = emu.NewBranchUnit(regFile)
	})

	Describe("BEQ", func() {
		It("should branch when operands are equal", func() {
			regFile.WriteGPR(1, 5)
			regFile.WriteGPR(2, 5)

			branchUnit.BEQ(1, 2, 0x20)

			Expect(regFile.GetPC()).To(Equal(uint32(0x1020)))
		})

		It("should fall through to PC+4 when operands differ", func() {
			regFile.WriteGPR(1, 5)
			regFile.WriteGPR(2, 6)

			branchUnit.BEQ(1, 2, 0x20)

			Expect(regFile.GetPC()).To(Equal(uint32(0x1004)))
		})
	})

	Describe("BLT/BGE signed comparison", func() {
		It("BLT should branch when rs1 is negative and rs2 is positive", func() {
			regFile.WriteGPR(1, -1)
			regFile.WriteGPR(2, 1)

			branchUnit.BLT(1, 2, -0x10)

			Expect(regFile.GetPC()).To(Equal(uint32(0x1000 - 0x10)))
		})

		It("BGE should not branch when rs1 is negative and rs2 is positive", func() {
			regFile.WriteGPR(1, -1)
			regFile.WriteGPR(2, 1)

			branchUnit.BGE(1, 2, -0x10)

			Expect(regFile.GetPC()).To(Equal(uint32(0x1004)))
		})
	})

	Describe("BLTU/BGEU unsigned comparison", func() {
		It("BLTU should treat -1 as the largest unsigned value, not less than 1", func() {
			regFile.WriteGPR(1, -1)
			regFile.WriteGPR(2, 1)

			branchUnit.BLTU(1, 2, 0x10)

			Expect(regFile.GetPC()).To(Equal(uint32(0x1004)))
		})

		It("BGEU should branch since -1 (as unsigned) is greater than 1", func() {
			regFile.WriteGPR(1, -1)
			regFile.WriteGPR(2, 1)

			branchUnit.BGEU(1, 2, 0x10)

			Expect(regFile.GetPC()).To(Equal(uint32(0x1010)))
		})
	})

	Describe("JAL", func() {
		It("should save PC+4 to rd and jump to PC+offset", func() {
			branchUnit.JAL(1, 0x100)

			Expect(regFile.ReadGPR(1)).To(Equal(int32(0x1004)))
			Expect(regFile.GetPC()).To(Equal(uint32(0x1100)))
		})

		It("should not write rd when rd is x0", func() {
			branchUnit.JAL(0, 0x100)

			Expect(regFile.ReadGPR(0)).To(Equal(int32(0)))
			Expect(regFile.GetPC()).To(Equal(uint32(0x1100)))
		})
	})

	Describe("JALR", func() {
		It("should jump to rs1+offset with bit 0 cleared and save PC+4 to rd", func() {
			regFile.WriteGPR(2, 0x2001)

			branchUnit.JALR(1, 2, 4)

			Expect(regFile.ReadGPR(1)).To(Equal(int32(0x1004)))
			Expect(regFile.GetPC()).To(Equal(uint32(0x2004)))
		})

		It("should support a JAL+JALR call/return sequence", func() {
			// JAL x1, 0x10 from PC=0x1000: call to 0x1010, ra=0x1004.
			branchUnit.JAL(1, 0x10)
			Expect(regFile.GetPC()).To(Equal(uint32(0x1010)))
			Expect(regFile.ReadGPR(1)).To(Equal(int32(0x1004)))

			// JALR x0, 0(x1) returns to the saved return address.
			branchUnit.JALR(0, 1, 0)
			Expect(regFile.GetPC()).To(Equal(uint32(0x1004)))
		})
	})
})
