// Package fastcdc implements the FastCDC content-defined chunking
// algorithm in three variants, each producing its own deterministic and
// reproducible sequence of cut points:
//
//   - ronomon: the variation by Joran Dirk Greef using 31-bit integers
//     and right shifts (package ronomon);
//   - v2016: the canonical algorithm from the 2016 FastCDC paper
//     (package v2016);
//   - v2020: the improved algorithm from the 2020 paper which rolls two
//     bytes per iteration (package v2020).
//
// The variants are deliberately incompatible with each other: the same
// input produces different boundaries under each one. An embedding
// system picks a variant once and sticks with it.
//
// Boundaries depend only on the content inside a sliding window, so
// inserting or deleting bytes in one part of a stream does not move the
// boundaries found elsewhere. That stability is what makes the chunks
// useful for deduplication. The chunkers report the GEAR fingerprint at
// each boundary; they do not hash chunk contents.
package fastcdc

const (
	KiB = 1024
	MiB = 1024 * 1024
)
