// Package gear holds the canonical 64-bit GEAR hashing data shared by
// the v2016 and v2020 chunkers: the gear table, its left-shifted
// counterpart, and the spread-bit judgement masks. The 31-bit table of
// the ronomon variant is private to that package on purpose; nothing
// else may depend on it.
package gear

import "math"

// Masks for each desired number of effective bits, indexed by
// log2(average) adjusted by the normalization level. The values for 64
// bytes through 128 kilobytes come from the C reference implementation
// in the destor repository, the rest from the restic-FastCDC
// repository. Spreading the mask bits evenly improves the deduplication
// ratio slightly compared to a contiguous low mask, hence the "magic"
// values. Indices 0 through 4 are padding and never selected by a valid
// configuration.
var Masks = [26]uint64{
	0,
	0,
	0,
	0,
	0,
	0x0000000001804110, // unused except for level 3
	0x0000000001803110, // 64B
	0x0000000018035100, // 128B
	0x0000001800035300, // 256B
	0x0000019000353000, // 512B
	0x0000590003530000, // 1KB
	0x0000d90003530000, // 2KB
	0x0000d90103530000, // 4KB
	0x0000d90303530000, // 8KB
	0x0000d90313530000, // 16KB
	0x0000d90f03530000, // 32KB
	0x0000d90303537000, // 64KB
	0x0000d90703537000, // 128KB
	0x0000d90707537000, // 256KB
	0x0000d91707537000, // 512KB
	0x0000d91747537000, // 1MB
	0x0000d91767537000, // 2MB
	0x0000d93767537000, // 4MB
	0x0000d93777537000, // 8MB
	0x0000d93777577000, // 16MB
	0x0000db3777577000, // unused except for level 3
}

// Log2 returns the base-2 logarithm of value rounded to the nearest
// integer. Rounding (rather than flooring) matters: it decides which
// mask an average size selects, so it must not change between releases.
func Log2(value uint32) uint32 {
	return uint32(math.Round(math.Log2(float64(value))))
}

// SeededTables returns the gear table and its left-shifted counterpart
// with every value XOR'd with the seed (the shifted table with the
// shifted seed, preserving the two-bytes-per-step identity). A zero
// seed returns the canonical tables. The returned arrays are derived
// once at chunker construction and must not be written to afterwards.
func SeededTables(seed uint64) (tab, tabLS *[256]uint64) {
	if seed == 0 {
		return &Table, &TableLS
	}
	t := Table
	ls := TableLS
	seedLS := seed << 1
	for i := range t {
		t[i] ^= seed
		ls[i] ^= seedLS
	}
	return &t, &ls
}
