//go:build amd64

package bitops

import "golang.org/x/sys/cpu"

func init() {
	hasPOPCNT = cpu.X86.HasPOPCNT
	initCapabilities()
}
