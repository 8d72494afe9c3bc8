package tile

// This file implements the positional-hash helpers the shanten tables
// and the expected-value DAG memoization key are built on (spec §3's
// "DAG state", §4.1's table keys). Hashing a count vector is how a
// variable-length combinatorial shape collapses into a single
// comparable/hashable integer.

// SuitHash folds a 9-element per-number count vector (counts 0..4) of
// one numbered suit into a single base-5 integer: h = sum(c[i] * 5^i).
// This mirrors the table key original_source/table.cpp builds for its
// suits table.
func SuitHash(counts [9]uint8) int {
	h := 0
	mul := 1
	for i := 0; i < 9; i++ {
		h += int(counts[i]) * mul
		mul *= 5
	}
	return h
}

// HonorHash folds a 7-element count vector (counts 0..4, one per wind/
// dragon) into a single base-5 integer, the honors-table analogue of
// SuitHash.
func HonorHash(counts [7]uint8) int {
	h := 0
	mul := 1
	for i := 0; i < 7; i++ {
		h += int(counts[i]) * mul
		mul *= 5
	}
	return h
}

// SuitCounts extracts the 9 per-number counts of a suit from a Hand34,
// given the kind offset of the suit's "1" tile (Man1, Pin1, or Sou1).
func SuitCounts(h Hand34, base int) (out [9]uint8) {
	for i := 0; i < 9; i++ {
		out[i] = h[base+i]
	}
	return out
}

// HonorCounts extracts the 7 honor counts (East..Red) from a Hand34.
func HonorCounts(h Hand34) (out [7]uint8) {
	for i := 0; i < 7; i++ {
		out[i] = h[int(East)+i]
	}
	return out
}

// HandKey is the memoization key for the expected-score DAG: each
// numbered suit's 9 counts pack into a base-8 digit group (3 bits per
// digit, counts 0..4 always fit), the honors' 7 counts pack into a
// fourth group, and the three red-five flags sit alongside. Together
// this is the "128-bit hand key" of spec §4.6 — in practice two
// uint64 words suffice and are cheaper to compare/hash than a literal
// 128-bit integer type, so that is what this implementation uses.
type HandKey struct {
	Lo, Hi uint64
	Reds   uint8 // bit0: aka man5 present, bit1: aka pin5, bit2: aka sou5
}

// packBase8 folds up to 21 counts (0..4, 3 bits each) into a uint64.
func packBase8(counts []uint8) uint64 {
	var v uint64
	for i, c := range counts {
		v |= uint64(c&0x7) << uint(3*i)
	}
	return v
}

// NewHandKey builds the DAG memoization key from a Hand34 plus the
// three red-five presence flags.
func NewHandKey(h Hand34, hasRedMan, hasRedPin, hasRedSou bool) HandKey {
	man := SuitCounts(h, int(Man1))
	pin := SuitCounts(h, int(Pin1))
	sou := SuitCounts(h, int(Sou1))
	honor := HonorCounts(h)

	// Lo: man (9*3=27 bits) | pin shifted by 27 (27 bits) -> 54 bits, fits uint64.
	lo := packBase8(man[:]) | packBase8(pin[:])<<27
	// Hi: sou (27 bits) | honor shifted by 27 (7*3=21 bits) -> 48 bits.
	hi := packBase8(sou[:]) | packBase8(honor[:])<<27

	var reds uint8
	if hasRedMan {
		reds |= 1
	}
	if hasRedPin {
		reds |= 2
	}
	if hasRedSou {
		reds |= 4
	}
	return HandKey{Lo: lo, Hi: hi, Reds: reds}
}
