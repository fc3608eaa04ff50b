//go:build !amd64 && !arm64

package bitops

func init() {
	hasPOPCNT = false
	initCapabilities()
}
