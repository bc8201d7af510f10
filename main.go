// Package main provides the entry point for iriscv-board.
// iriscv-board is a functional emulator for the RV32I base integer
// ISA plus the Zicsr CSR instructions.
//
// For the full CLI, use: go run ./cmd/rv32emu
package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Println("iriscv-board - RV32I functional emulator")
	fmt.Println("")
	fmt.Println("Usage: rv32emu [options] <program.bin>")
	fmt.Println("")
	fmt.Println("Options:")
	fmt.Println("  -config    Path to a YAML run configuration file")
	fmt.Println("  -mem       Memory size in bytes (overrides config)")
	fmt.Println("  -trace     Log each fetched PC")
	fmt.Println("  -v         Verbose output")
	fmt.Println("")
	fmt.Println("Run 'go run ./cmd/rv32emu' for the full CLI.")

	if len(os.Args) > 1 {
		fmt.Println("\nNote: You provided arguments. Use 'go run ./cmd/rv32emu' instead.")
	}
}
