package sudoku

import (
	"math/bits"
	"strings"
)

// DigitSet is a set of digits 1..9 packed into the low nine bits of a
// uint16: bit d-1 is set when digit d is a member.
type DigitSet uint16

// FullSet contains every digit 1 through 9.
const FullSet DigitSet = 1<<Size - 1

// Has reports whether d is a member.
func (s DigitSet) Has(d uint8) bool {
	return s&(1<<(d-1)) != 0
}

// Add inserts d into the set.
func (s *DigitSet) Add(d uint8) {
	*s |= 1 << (d - 1)
}

// Len is the number of members.
func (s DigitSet) Len() int {
	return bits.OnesCount16(uint16(s))
}

// One returns the smallest member. Meant for singleton sets; calling it on
// an empty set returns a garbage value above 9.
func (s DigitSet) One() uint8 {
	return uint8(bits.TrailingZeros16(uint16(s))) + 1
}

// Digits lists the members in ascending order.
func (s DigitSet) Digits() []uint8 {
	ds := make([]uint8, 0, s.Len())
	for d := uint8(1); d <= Size; d++ {
		if s.Has(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

func (s DigitSet) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, d := range s.Digits() {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteByte('0' + d)
	}
	b.WriteByte('}')
	return b.String()
}
