// Package conv provides checked and saturating numeric conversions.
//
// Use cases:
//   - Storing normalised intensities back into the 8-bit domain
//   - Converting Go's int (platform-dependent) indices to fixed-width types
//
// For conversions that are provably safe by domain constraints (e.g. loop
// indices over a fixed grid), use direct type casts instead.
package conv
