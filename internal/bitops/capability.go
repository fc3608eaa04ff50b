package bitops

import (
	"os"
	"strings"
)

// Kernel identifies a popcount implementation.
type Kernel uint8

const (
	// Hardware uses math/bits, which the compiler lowers to POPCNT/CNT.
	Hardware Kernel = iota
	// Clearing uses the lowest-set-bit clearing loop.
	Clearing
)

// String returns the string representation of a Kernel.
func (k Kernel) String() string {
	switch k {
	case Hardware:
		return "hardware"
	case Clearing:
		return "clearing"
	default:
		return "unknown"
	}
}

// ParseKernel parses a string into a Kernel value.
func ParseKernel(s string) (Kernel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hardware":
		return Hardware, true
	case "clearing":
		return Clearing, true
	default:
		return Hardware, false
	}
}

// Package-level state, set once by platform init.
var (
	activeKernel Kernel
	hasOverride  bool

	// hasPOPCNT is true if the CPU counts bits in a single instruction.
	hasPOPCNT bool
)

// initCapabilities is called from platform-specific init functions
// after CPU features are detected.
func initCapabilities() {
	if override := os.Getenv("IMAGEMATCH_POPCOUNT"); override != "" {
		if k, ok := ParseKernel(override); ok {
			hasOverride = true
			useKernel(k)
			return
		}
	}

	if hasPOPCNT {
		useKernel(Hardware)
	} else {
		useKernel(Clearing)
	}
}

func useKernel(k Kernel) {
	activeKernel = k
	switch k {
	case Clearing:
		kernelPopcount = popcountClearing
	default:
		kernelPopcount = popcountHardware
	}
}

// ActiveKernel returns the currently selected popcount kernel.
func ActiveKernel() Kernel {
	return activeKernel
}

// IsOverridden returns true if IMAGEMATCH_POPCOUNT selected the kernel.
func IsOverridden() bool {
	return hasOverride
}

// HasPOPCNT returns true if the CPU has a native population count instruction.
func HasPOPCNT() bool {
	return hasPOPCNT
}
