// Package main provides the entry point for rv32emu, a functional
// emulator for the RV32I base integer ISA plus the Zicsr CSR
// instructions.
//
// rv32emu is the host collaborator spec.md places out of the core's
// scope: it slurps a flat program image into memory, drives the CPU to
// a halt or fault, and reports the outcome. The core itself never
// touches a file, a flag, or a log line.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/haradama/iriscv-board/config"
	"github.com/haradama/iriscv-board/emu"
)

var (
	configPath = flag.String("config", "", "Path to a YAML run configuration file")
	memorySize = flag.Uint("mem", 0, "Memory size in bytes (overrides config)")
	trace      = flag.Bool("trace", false, "Log each fetched PC")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintf(os.Stderr, "Usage: rv32emu [options] <program.bin>\n\nOptions:\n")
		flag.PrintDefaults()
		os.Exit(1)
	}

	programPath := flag.Arg(0)

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	if *memorySize != 0 {
		cfg.MemorySize = uint32(*memorySize)
	}
	if *trace {
		cfg.Trace = true
	}

	program, err := os.ReadFile(programPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading program: %v\n", err)
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose || cfg.Trace {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	c := emu.NewCPU(emu.WithMemorySize(cfg.MemorySize))
	for _, poke := range cfg.CSRPokes {
		if err := c.RegFile().WriteCSR(poke.CSR, poke.Value); err != nil {
			fmt.Fprintf(os.Stderr, "error applying csr_pokes entry (csr=0x%X): %v\n", poke.CSR, err)
			os.Exit(1)
		}
	}

	if err := c.LoadProgram(program); err != nil {
		fmt.Fprintf(os.Stderr, "error loading program: %v\n", err)
		os.Exit(1)
	}

	logger.Info("loaded program", "path", programPath, "bytes", len(program), "memory_size", cfg.MemorySize)

	exitCode := run(c, logger, cfg.Trace)

	logger.Info("run complete", "instructions", c.InstructionCount(), "exit_code", exitCode)

	os.Exit(int(exitCode))
}

// run drives the CPU to a halt or fault, logging a trace line per step
// when trace is enabled and the faulting kind and PC on a fault.
func run(c *emu.CPU, logger *slog.Logger, trace bool) int32 {
	for {
		pc := c.RegFile().GetPC()
		result := c.Step()

		if trace {
			logger.Info("step", "pc", fmt.Sprintf("0x%X", pc))
		}

		if result.Halted {
			return result.ExitCode
		}
		if result.Err != nil {
			logger.Error("emulation fault", "pc", fmt.Sprintf("0x%X", pc), "error", result.Err)
			return -1
		}
	}
}
