package bitops

import "math/bits"

// Kernel function pointers. The generic hardware kernel is the default;
// platform init may switch to the clearing kernel.
var (
	kernelPopcount      = popcountHardware
	kernelPopcountWords = popcountWordsGeneric
	kernelAndPopcount   = andPopcountGeneric
)

// SetBit returns word with bit pos set. Positions >= 64 leave word unchanged.
func SetBit(word uint64, pos uint) uint64 {
	if pos >= 64 {
		return word
	}
	return word | 1<<pos
}

// HasBit reports whether bit pos is set in word.
func HasBit(word uint64, pos uint) bool {
	return pos < 64 && word&(1<<pos) != 0
}

// Popcount returns the number of set bits in x.
func Popcount(x uint64) int {
	return kernelPopcount(x)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// AndPopcount returns popcount(a[i] & b[i]) summed over i.
// Only the common prefix of a and b is considered.
func AndPopcount(a, b []uint64) int {
	if len(a) > len(b) {
		a = a[:len(b)]
	} else {
		b = b[:len(a)]
	}
	return kernelAndPopcount(a, b)
}

func popcountHardware(x uint64) int {
	return bits.OnesCount64(x)
}

// popcountClearing clears the lowest set bit until none remain.
func popcountClearing(x uint64) int {
	count := 0
	for x != 0 {
		x &= x - 1
		count++
	}
	return count
}

func popcountWordsGeneric(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += kernelPopcount(words[i])
		count += kernelPopcount(words[i+1])
		count += kernelPopcount(words[i+2])
		count += kernelPopcount(words[i+3])
	}
	for ; i < len(words); i++ {
		count += kernelPopcount(words[i])
	}
	return count
}

func andPopcountGeneric(a, b []uint64) int {
	count := 0
	for i := range a {
		count += kernelPopcount(a[i] & b[i])
	}
	return count
}
