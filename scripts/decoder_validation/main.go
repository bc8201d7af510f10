// Command decoder_validation measures the decoder's allocation profile
// under sustained use, the way a fetch-decode-execute loop exercises it.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/haradama/iriscv-board/insts"
)

func main() {
	decoder := insts.NewDecoder()

	words := []uint32{
		0x02A10093, // ADDI x1, x2, 42
		0x003100B3, // ADD x1, x2, x3
		0x00208863, // BEQ x1, x2, 0x10
		0x00410083, // LB x1, 4(x2)
		0x00208223, // SB x2, 4(x1)
	}

	// Warm up.
	for i := 0; i < 1000; i++ {
		decoder.Decode(words[0])
	}

	runtime.GC()
	var m1, m2 runtime.MemStats
	runtime.ReadMemStats(&m1)

	start := time.Now()
	iterations := 100000

	for i := 0; i < iterations; i++ {
		for _, w := range words {
			decoder.Decode(w)
		}
	}

	elapsed := time.Since(start)
	runtime.ReadMemStats(&m2)

	totalDecodes := iterations * len(words)
	allocations := m2.Mallocs - m1.Mallocs
	allocatedBytes := m2.TotalAlloc - m1.TotalAlloc

	fmt.Printf("Decoder Allocation Profile\n")
	fmt.Printf("==========================\n")
	fmt.Printf("Total decode operations: %d\n", totalDecodes)
	fmt.Printf("Time elapsed: %v\n", elapsed)
	fmt.Printf("Decodes per second: %.0f\n", float64(totalDecodes)/elapsed.Seconds())
	fmt.Printf("Allocations: %d\n", allocations)
	fmt.Printf("Allocated bytes: %d\n", allocatedBytes)
	fmt.Printf("Allocations per decode: %.3f\n", float64(allocations)/float64(totalDecodes))
	fmt.Printf("Bytes per decode: %.1f\n", float64(allocatedBytes)/float64(totalDecodes))
}
