package model

import "math/bits"

// Pattern is one assignment of hit/rest across Length semiquaver slots,
// stored as a bitmask. Slot 0 is the most significant used bit, so the
// numeric value of Bits reads left to right like the written rhythm.
type Pattern struct {
	Bits   uint32
	Length int
}

// Hit reports whether the given slot carries an onset.
func (p Pattern) Hit(slot int) bool {
	return p.Bits>>(p.Length-1-slot)&1 == 1
}

// HitCount is the number of onsets in the pattern.
func (p Pattern) HitCount() int {
	return bits.OnesCount32(p.Bits)
}
