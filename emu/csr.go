// Package emu provides functional RV32I emulation.
package emu

// CSRUnit implements the six Zicsr instructions. Every operation reads
// the addressed CSR before any write, so CSRRW rd, csr, rs1 behaves
// correctly even when rd and rs1 name the same register.
type CSRUnit struct {
	regFile *RegFile
}

// NewCSRUnit creates a new CSRUnit connected to the given register file.
func NewCSRUnit(regFile *RegFile) *CSRUnit {
	return &CSRUnit{regFile: regFile}
}

// CSRRW atomically swaps rd = CSR[csr] and CSR[csr] = rs1.
func (c *CSRUnit) CSRRW(rd, rs1 uint8, csr uint16) error {
	old, err := c.regFile.ReadCSR(csr)
	if err != nil {
		return err
	}
	if err := c.regFile.WriteCSR(csr, c.regFile.ReadGPR(rs1)); err != nil {
		return err
	}
	c.regFile.WriteGPR(rd, old)
	return nil
}

// CSRRS reads rd = CSR[csr], then sets CSR[csr] |= rs1 unless rs1 is x0.
func (c *CSRUnit) CSRRS(rd, rs1 uint8, csr uint16) error {
	old, err := c.regFile.ReadCSR(csr)
	if err != nil {
		return err
	}
	if rs1 != 0 {
		if err := c.regFile.WriteCSR(csr, old|c.regFile.ReadGPR(rs1)); err != nil {
			return err
		}
	}
	c.regFile.WriteGPR(rd, old)
	return nil
}

// CSRRC reads rd = CSR[csr], then clears CSR[csr] &= ^rs1 unless rs1 is x0.
func (c *CSRUnit) CSRRC(rd, rs1 uint8, csr uint16) error {
	old, err := c.regFile.ReadCSR(csr)
	if err != nil {
		return err
	}
	if rs1 != 0 {
		if err := c.regFile.WriteCSR(csr, old&^c.regFile.ReadGPR(rs1)); err != nil {
			return err
		}
	}
	c.regFile.WriteGPR(rd, old)
	return nil
}

// CSRRWI atomically swaps rd = CSR[csr] and CSR[csr] = zimm.
func (c *CSRUnit) CSRRWI(rd uint8, zimm uint8, csr uint16) error {
	old, err := c.regFile.ReadCSR(csr)
	if err != nil {
		return err
	}
	if err := c.regFile.WriteCSR(csr, int32(zimm)); err != nil {
		return err
	}
	c.regFile.WriteGPR(rd, old)
	return nil
}

// CSRRSI reads rd = CSR[csr], then sets CSR[csr] |= zimm unless zimm == 0.
func (c *CSRUnit) CSRRSI(rd uint8, zimm uint8, csr uint16) error {
	old, err := c.regFile.ReadCSR(csr)
	if err != nil {
		return err
	}
	if zimm != 0 {
		if err := c.regFile.WriteCSR(csr, old|int32(zimm)); err != nil {
			return err
		}
	}
	c.regFile.WriteGPR(rd, old)
	return nil
}

// CSRRCI reads rd = CSR[csr], then clears CSR[csr] &= ^zimm unless zimm == 0.
func (c *CSRUnit) CSRRCI(rd uint8, zimm uint8, csr uint16) error {
	old, err := c.regFile.ReadCSR(csr)
	if err != nil {
		return err
	}
	if zimm != 0 {
		if err := c.regFile.WriteCSR(csr, old&^int32(zimm)); err != nil {
			return err
		}
	}
	c.regFile.WriteGPR(rd, old)
	return nil
}
