// Package emu provides functional RV32I emulation.
package emu

import (
	"fmt"
	"io"
	"os"

	"github.com/haradama/iriscv-board/insts"
)

// HaltKind distinguishes why a Step halted execution.
type HaltKind uint8

const (
	// HaltNone means the step did not halt.
	HaltNone HaltKind = iota
	// HaltECall means an ECALL instruction halted execution via the
	// installed ECallHandler.
	HaltECall
	// HaltEBreak means an EBREAK instruction halted execution.
	HaltEBreak
)

// StepResult represents the result of executing a single instruction.
type StepResult struct {
	// Halted is true if execution should stop.
	Halted bool

	// HaltKind identifies why Halted is true.
	HaltKind HaltKind

	// ExitCode is meaningful when Halted is true and HaltKind is
	// HaltECall; it carries whatever the ECallHandler returned.
	ExitCode int32

	// Err is set if an architectural or decode condition occurred.
	// Step never panics on these conditions — it returns them.
	Err error
}

// CPU drives fetch-decode-execute over a Memory and RegFile using the
// RV32I/Zicsr instruction semantics. A CPU exclusively owns its Memory
// and RegFile for its lifetime; decoding is pure and could be called
// concurrently, but the driver itself never is.
type CPU struct {
	regFile      *RegFile
	memory       *Memory
	decoder      *insts.Decoder
	ecallHandler ECallHandler

	alu        *ALU
	lsu        *LoadStoreUnit
	branchUnit *BranchUnit
	csrUnit    *CSRUnit

	stdout io.Writer
	stderr io.Writer

	instructionCount uint64
	maxInstructions  uint64 // 0 means no limit
}

// CPUOption is a functional option for configuring the CPU.
type CPUOption func(*CPU)

// WithStdout sets a custom stdout writer.
func WithStdout(w io.Writer) CPUOption {
	return func(c *CPU) {
		c.stdout = w
	}
}

// WithStderr sets a custom stderr writer.
func WithStderr(w io.Writer) CPUOption {
	return func(c *CPU) {
		c.stderr = w
	}
}

// WithECallHandler sets a custom ECALL handler. Without this option, a
// CPU installs a DefaultECallHandler.
func WithECallHandler(handler ECallHandler) CPUOption {
	return func(c *CPU) {
		c.ecallHandler = handler
	}
}

// WithMemorySize sets the size, in bytes, of the CPU's memory. The
// default is 1 MiB.
func WithMemorySize(size uint32) CPUOption {
	return func(c *CPU) {
		c.memory = NewMemory(size)
	}
}

// WithMaxInstructions sets the maximum number of instructions to
// execute. A value of 0 means no limit.
func WithMaxInstructions(max uint64) CPUOption {
	return func(c *CPU) {
		c.maxInstructions = max
	}
}

const defaultMemorySize = 1 << 20

// NewCPU creates a new RV32I CPU with PC, all GPRs, and all CSRs
// zeroed.
func NewCPU(opts ...CPUOption) *CPU {
	c := &CPU{
		regFile:          &RegFile{},
		memory:           NewMemory(defaultMemorySize),
		decoder:          insts.NewDecoder(),
		stdout:           os.Stdout,
		stderr:           os.Stderr,
		instructionCount: 0,
		maxInstructions:  0,
	}

	for _, opt := range opts {
		opt(c)
	}

	c.alu = NewALU(c.regFile)
	c.lsu = NewLoadStoreUnit(c.regFile, c.memory)
	c.branchUnit = NewBranchUnit(c.regFile)
	c.csrUnit = NewCSRUnit(c.regFile)

	if c.ecallHandler == nil {
		c.ecallHandler = NewDefaultECallHandler()
	}

	return c
}

// RegFile returns the CPU's register file.
func (c *CPU) RegFile() *RegFile {
	return c.regFile
}

// Memory returns the CPU's memory.
func (c *CPU) Memory() *Memory {
	return c.memory
}

// InstructionCount returns the number of instructions executed.
func (c *CPU) InstructionCount() uint64 {
	return c.instructionCount
}

// LoadProgram copies program into memory starting at address 0 and
// sets PC to 0, matching the convention that a loader places bytes
// directly into memory before the first step.
func (c *CPU) LoadProgram(program []byte) error {
	if err := c.memory.LoadProgram(program); err != nil {
		return err
	}
	c.regFile.PC = 0
	return nil
}

// Reset zeroes the register file and memory, and resets the
// instruction count.
func (c *CPU) Reset() {
	c.regFile.Reset()
	c.memory.Reset()
	c.instructionCount = 0
}

// Step fetches, decodes, and executes a single instruction.
func (c *CPU) Step() StepResult {
	if c.maxInstructions > 0 && c.instructionCount >= c.maxInstructions {
		return StepResult{Err: fmt.Errorf("max instructions reached")}
	}

	word, err := c.memory.FetchWord(c.regFile.PC)
	if err != nil {
		return StepResult{Err: err}
	}

	inst := c.decoder.Decode(word)

	result := c.execute(inst)

	c.instructionCount++

	return result
}

// Run executes instructions until a halt, a fault, or the instruction
// limit is reached. Returns the exit code (-1 on a fault).
func (c *CPU) Run() int32 {
	for {
		result := c.Step()
		if result.Halted {
			return result.ExitCode
		}
		if result.Err != nil {
			_, _ = fmt.Fprintf(c.stderr, "emulation fault: %v\n", result.Err)
			return -1
		}
	}
}

// execute dispatches and executes a decoded instruction. Every
// instruction that is not itself a control transfer advances PC by 4
// after executing; branches, JAL, and JALR set PC directly and skip
// this step.
func (c *CPU) execute(inst *insts.Instruction) StepResult {
	pc := c.regFile.PC

	switch inst.Op {
	case insts.OpUnknown:
		return StepResult{Err: IllegalInstructionError{PC: pc, Word: inst.Word}}
	case insts.OpADDIW:
		return StepResult{Err: UnimplementedError{PC: pc, Word: inst.Word, Op: "ADDIW"}}
	case insts.OpECALL:
		return c.executeECall()
	case insts.OpEBREAK:
		return StepResult{Halted: true, HaltKind: HaltEBreak}
	case insts.OpJAL:
		c.branchUnit.JAL(inst.Rd, inst.Imm)
		return StepResult{}
	case insts.OpJALR:
		c.branchUnit.JALR(inst.Rd, inst.Rs1, inst.Imm)
		return StepResult{}
	}

	var err error

	switch inst.Format {
	case insts.FormatU:
		c.executeUpperImm(inst)
	case insts.FormatI:
		err = c.executeLoadOrOpImm(inst)
	case insts.FormatB:
		c.executeBranch(inst)
		return StepResult{}
	case insts.FormatS:
		err = c.executeStore(inst)
	case insts.FormatR:
		c.executeR(inst)
	case insts.FormatCSRReg:
		err = c.executeCSRReg(inst)
	case insts.FormatCSRImm:
		err = c.executeCSRImm(inst)
	case insts.FormatSystem:
		// FENCE: no operands, no side effects beyond advancing PC.
	default:
		return StepResult{Err: IllegalInstructionError{PC: pc, Word: inst.Word}}
	}

	if err != nil {
		return StepResult{Err: err}
	}

	c.regFile.IncrementPC()
	return StepResult{}
}

// executeECall invokes the installed ECallHandler and translates its
// result into a StepResult. On a halt, PC is left at the ECALL; when
// the handler resumes execution instead, PC advances by 4 like any
// other non-control-transfer instruction.
func (c *CPU) executeECall() StepResult {
	result := c.ecallHandler.Handle(c.regFile)
	if result.Halted {
		return StepResult{Halted: true, HaltKind: HaltECall, ExitCode: result.ExitCode}
	}
	c.regFile.IncrementPC()
	return StepResult{}
}

// executeUpperImm executes LUI and AUIPC.
func (c *CPU) executeUpperImm(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpLUI:
		c.regFile.WriteGPR(inst.Rd, inst.Imm)
	case insts.OpAUIPC:
		c.regFile.WriteGPR(inst.Rd, int32(c.regFile.PC)+inst.Imm)
	}
}

// executeLoadOrOpImm executes the loads and the OP-IMM instructions,
// which share the I-type encoding (JALR and ADDIW are also I-type but
// are dispatched earlier, by Op, in execute).
func (c *CPU) executeLoadOrOpImm(inst *insts.Instruction) error {
	switch inst.Op {
	case insts.OpLB:
		return c.lsu.LB(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLH:
		return c.lsu.LH(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLW:
		return c.lsu.LW(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLBU:
		return c.lsu.LBU(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpLHU:
		return c.lsu.LHU(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpADDI:
		c.alu.ADDI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpSLTI:
		c.alu.SLTI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpSLTIU:
		c.alu.SLTIU(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpXORI:
		c.alu.XORI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpORI:
		c.alu.ORI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpANDI:
		c.alu.ANDI(inst.Rd, inst.Rs1, inst.Imm)
	case insts.OpSLLI:
		c.alu.SLLI(inst.Rd, inst.Rs1, inst.Shamt)
	case insts.OpSRLI:
		c.alu.SRLI(inst.Rd, inst.Rs1, inst.Shamt)
	case insts.OpSRAI:
		c.alu.SRAI(inst.Rd, inst.Rs1, inst.Shamt)
	}
	return nil
}

// executeBranch executes the six conditional branches.
func (c *CPU) executeBranch(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpBEQ:
		c.branchUnit.BEQ(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpBNE:
		c.branchUnit.BNE(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpBLT:
		c.branchUnit.BLT(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpBGE:
		c.branchUnit.BGE(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpBLTU:
		c.branchUnit.BLTU(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpBGEU:
		c.branchUnit.BGEU(inst.Rs1, inst.Rs2, inst.Imm)
	}
}

// executeStore executes SB, SH, and SW.
func (c *CPU) executeStore(inst *insts.Instruction) error {
	switch inst.Op {
	case insts.OpSB:
		return c.lsu.SB(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpSH:
		return c.lsu.SH(inst.Rs1, inst.Rs2, inst.Imm)
	case insts.OpSW:
		return c.lsu.SW(inst.Rs1, inst.Rs2, inst.Imm)
	}
	return nil
}

// executeR executes the R-type register-register ALU operations.
func (c *CPU) executeR(inst *insts.Instruction) {
	switch inst.Op {
	case insts.OpADD:
		c.alu.ADD(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSUB:
		c.alu.SUB(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSLL:
		c.alu.SLL(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSLT:
		c.alu.SLT(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSLTU:
		c.alu.SLTU(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpXOR:
		c.alu.XOR(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSRL:
		c.alu.SRL(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpSRA:
		c.alu.SRA(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpOR:
		c.alu.OR(inst.Rd, inst.Rs1, inst.Rs2)
	case insts.OpAND:
		c.alu.AND(inst.Rd, inst.Rs1, inst.Rs2)
	}
}

// executeCSRReg executes CSRRW, CSRRS, and CSRRC.
func (c *CPU) executeCSRReg(inst *insts.Instruction) error {
	switch inst.Op {
	case insts.OpCSRRW:
		return c.csrUnit.CSRRW(inst.Rd, inst.Rs1, inst.CSR)
	case insts.OpCSRRS:
		return c.csrUnit.CSRRS(inst.Rd, inst.Rs1, inst.CSR)
	case insts.OpCSRRC:
		return c.csrUnit.CSRRC(inst.Rd, inst.Rs1, inst.CSR)
	}
	return nil
}

// executeCSRImm executes CSRRWI, CSRRSI, and CSRRCI.
func (c *CPU) executeCSRImm(inst *insts.Instruction) error {
	switch inst.Op {
	case insts.OpCSRRWI:
		return c.csrUnit.CSRRWI(inst.Rd, inst.Zimm, inst.CSR)
	case insts.OpCSRRSI:
		return c.csrUnit.CSRRSI(inst.Rd, inst.Zimm, inst.CSR)
	case insts.OpCSRRCI:
		return c.csrUnit.CSRRCI(inst.Rd, inst.Zimm, inst.CSR)
	}
	return nil
}
