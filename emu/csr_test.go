package emu_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/haradama/iriscv-board/emu"
)

var _ = Describe("CSRUnit", func() {
	var (
		regFile *emu.RegFile
		csrUnit *emu.CSRUnit
	)

	BeforeEach(func() {
		regFile = &emu.RegFile{}
		csrUnit = emu.NewCSRUnit(regFile)
	})

	Describe("CSRRW", func() {
		It("should read the old value into rd and write rs1 into the CSR", func() {
			regFile.WriteCSR(0x300, 0x11)
			regFile.WriteGPR(1, 0x22)

			csrUnit.CSRRW(2, 1, 0x300)

			Expect(regFile.ReadGPR(2)).To(Equal(int32(0x11)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0x22)))
		})

		It("should behave correctly when rd and rs1 alias", func() {
			regFile.WriteCSR(0x300, 0x11)
			regFile.WriteGPR(1, 0x22)

			csrUnit.CSRRW(1, 1, 0x300)

			Expect(regFile.ReadGPR(1)).To(Equal(int32(0x11)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0x22)))
		})
	})

	Describe("CSRRS", func() {
		It("should read the CSR into rd and set bits from rs1", func() {
			regFile.WriteCSR(0x300, 0b0001)
			regFile.WriteGPR(1, 0b0010)

			csrUnit.CSRRS(2, 1, 0x300)

			Expect(regFile.ReadGPR(2)).To(Equal(int32(0b0001)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0b0011)))
		})

		It("should skip the write when rs1 is x0, performing a pure read", func() {
			regFile.WriteCSR(0x300, 0b0001)

			csrUnit.CSRRS(2, 0, 0x300)

			Expect(regFile.ReadGPR(2)).To(Equal(int32(0b0001)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0b0001)))
		})
	})

	Describe("CSRRC", func() {
		It("should read the CSR into rd and clear bits from rs1", func() {
			regFile.WriteCSR(0x300, 0b0011)
			regFile.WriteGPR(1, 0b0010)

			csrUnit.CSRRC(2, 1, 0x300)

			Expect(regFile.ReadGPR(2)).To(Equal(int32(0b0011)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0b0001)))
		})

		It("should skip the write when rs1 is x0", func() {
			regFile.WriteCSR(0x300, 0b0011)

			csrUnit.CSRRC(2, 0, 0x300)

			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0b0011)))
		})
	})

	Describe("immediate forms", func() {
		It("CSRRWI should write zimm unconditionally", func() {
			regFile.WriteCSR(0x300, 0x7)

			csrUnit.CSRRWI(1, 0, 0x300)

			Expect(regFile.ReadGPR(1)).To(Equal(int32(0x7)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0)))
		})

		It("CSRRSI should skip the write when zimm is 0", func() {
			regFile.WriteCSR(0x300, 0x7)

			csrUnit.CSRRSI(1, 0, 0x300)

			Expect(regFile.ReadGPR(1)).To(Equal(int32(0x7)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0x7)))
		})

		It("CSRRCI should clear bits from a nonzero zimm", func() {
			regFile.WriteCSR(0x300, 0b0111)

			csrUnit.CSRRCI(1, 0b0010, 0x300)

			Expect(regFile.ReadGPR(1)).To(Equal(int32(0b0111)))
			Expect(regFile.ReadCSR(0x300)).To(Equal(int32(0b0101)))
		})
	})
})
