// Package bitops provides exact bit operations over 64-bit words.
//
// # Kernels
//
//   - hardware: math/bits.OnesCount64, lowered to POPCNT/CNT where the CPU has it
//   - clearing: repeated x &= x-1 until zero, one iteration per set bit
//
// Both kernels return identical counts. The kernel is chosen once at package
// init from CPU features; set IMAGEMATCH_POPCOUNT=hardware|clearing to force one.
package bitops
