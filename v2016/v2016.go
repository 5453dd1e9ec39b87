// Package v2016 implements the canonical FastCDC algorithm as
// described by Wen Xia, et al. in the 2016 paper: a simplified hash
// judgement using the fast GEAR hash, sub-minimum cut-point skipping,
// and normalized chunking to produce chunks of a more consistent
// length.
//
// Chunker walks a byte slice already in memory; Stream reads from an
// io.Reader through a buffer of the maximum chunk size. Both find
// exactly the same boundaries for the same input and configuration.
//
// The reported hash is the 64-bit fingerprint as of the cut point. It
// has low entropy but is computationally free, and can serve chunk
// size prediction schemes such as RapidCDC or SuperCDC.
package v2016

import (
	"errors"
	"fmt"

	"github.com/fyrchik/fastcdc/internal/gear"
)

// Bounds accepted by the constructors. Tighter than the ronomon
// variant's: the judgement mask is selected by log2(average) adjusted
// by the normalization level, and the mask table ends at 16 MiB.
const (
	MinimumMin = 64
	MinimumMax = 1_048_576
	AverageMin = 256
	AverageMax = 4_194_304
	MaximumMin = 1024
	MaximumMax = 16_777_216
)

var (
	// ErrMinSize is returned when the minimum chunk size is out of bounds.
	ErrMinSize = errors.New("v2016: minimum chunk size out of bounds")
	// ErrAvgSize is returned when the average chunk size is out of bounds.
	ErrAvgSize = errors.New("v2016: average chunk size out of bounds")
	// ErrMaxSize is returned when the maximum chunk size is out of bounds.
	ErrMaxSize = errors.New("v2016: maximum chunk size out of bounds")
	// ErrSizeOrder is returned unless min <= avg <= max.
	ErrSizeOrder = errors.New("v2016: chunk sizes must be ordered min <= avg <= max")
	// ErrLevel is returned for a normalization level outside [Level0, Level3].
	ErrLevel = errors.New("v2016: invalid normalization level")
)

// Normalization selects how strongly chunk sizes are pulled toward the
// average: the judgement below the average uses the mask for
// log2(avg)+level (harder to match, fewer small chunks) and above it
// the mask for log2(avg)-level (easier, fewer large chunks).
//
// Higher levels may leave the final chunk of a stream smaller than the
// minimum size, in which case its hash is zero since sub-minimum
// regions are never scanned.
type Normalization int

const (
	// Level0 disables normalization and produces a wide size range.
	Level0 Normalization = iota
	// Level1 leaves fewer chunks outside the desired range.
	Level1
	// Level2 makes most chunks close to the desired size.
	Level2
	// Level3 makes nearly all chunks the desired size.
	Level3
)

func checkSizes(minSize, avgSize, maxSize int, level Normalization) error {
	switch {
	case minSize < MinimumMin || minSize > MinimumMax:
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrMinSize, minSize, MinimumMin, MinimumMax)
	case avgSize < AverageMin || avgSize > AverageMax:
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrAvgSize, avgSize, AverageMin, AverageMax)
	case maxSize < MaximumMin || maxSize > MaximumMax:
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrMaxSize, maxSize, MaximumMin, MaximumMax)
	case minSize > avgSize || avgSize > maxSize:
		return fmt.Errorf("%w: min %d, avg %d, max %d", ErrSizeOrder, minSize, avgSize, maxSize)
	case level < Level0 || level > Level3:
		return fmt.Errorf("%w: %d", ErrLevel, level)
	}
	return nil
}

func masks(avgSize int, level Normalization) (maskS, maskL uint64) {
	bits := gear.Log2(uint32(avgSize))
	return gear.Masks[bits+uint32(level)], gear.Masks[bits-uint32(level)]
}

// Chunk is a single piece of the source. The fingerprint is not a
// content hash: equal fingerprints do not imply equal data.
type Chunk struct {
	// Hash is the GEAR fingerprint as of the end of the chunk.
	Hash uint64
	// Offset is the starting byte position within the source.
	Offset int
	// Length of the chunk in bytes.
	Length int
}

// Chunker splits a byte slice into content-defined chunks. It borrows
// the source slice and never copies or modifies it. Use either Next or
// Cut on one instance, not both.
type Chunker struct {
	source    []byte
	processed int
	remaining int
	minSize   int
	avgSize   int
	maxSize   int
	maskS     uint64
	maskL     uint64
}

// New returns a Chunker over source with normalization Level1.
func New(source []byte, minSize, avgSize, maxSize int) (*Chunker, error) {
	return WithLevel(source, minSize, avgSize, maxSize, Level1)
}

// WithLevel returns a Chunker with the given normalization level.
func WithLevel(source []byte, minSize, avgSize, maxSize int, level Normalization) (*Chunker, error) {
	if err := checkSizes(minSize, avgSize, maxSize, level); err != nil {
		return nil, err
	}
	maskS, maskL := masks(avgSize, level)
	return &Chunker{
		source:    source,
		remaining: len(source),
		minSize:   minSize,
		avgSize:   avgSize,
		maxSize:   maxSize,
		maskS:     maskS,
		maskL:     maskL,
	}, nil
}

// Cut finds the next cut point when managing start and remaining
// yourself: it scans source[start:start+remaining] and returns the
// fingerprint together with the absolute offset of the end of the
// chunk. When remaining does not exceed the minimum chunk size the
// whole region is the chunk and the fingerprint is zero, since
// sub-minimum regions are never scanned.
func (c *Chunker) Cut(start, remaining int) (uint64, int) {
	hash, count := cut(c.source[start:start+remaining], c.minSize, c.avgSize, c.maxSize, c.maskS, c.maskL)
	return hash, start + count
}

// Next returns the next chunk, in strictly increasing offset order. It
// reports false once the source is exhausted.
func (c *Chunker) Next() (Chunk, bool) {
	if c.remaining == 0 {
		return Chunk{}, false
	}
	hash, cutpoint := c.Cut(c.processed, c.remaining)
	chunk := Chunk{Hash: hash, Offset: c.processed, Length: cutpoint - c.processed}
	c.processed = cutpoint
	c.remaining -= chunk.Length
	return chunk, true
}

// SizeHint bounds the number of chunks Next has yet to produce: at
// least lower (every remaining chunk maximal) and at most upper (every
// remaining chunk minimal).
func (c *Chunker) SizeHint() (lower, upper int) {
	return ceilDiv(c.remaining, c.maxSize), ceilDiv(c.remaining, c.minSize)
}

// cut finds the next cut point in source. The returned count is the
// offset of the boundary: the byte that completed the match opens the
// next chunk.
func cut(source []byte, minSize, avgSize, maxSize int, maskS, maskL uint64) (uint64, int) {
	remaining := len(source)
	if remaining <= minSize {
		return 0, remaining
	}
	center := avgSize
	if remaining > maxSize {
		remaining = maxSize
	} else if remaining < center {
		center = remaining
	}
	var hash uint64
	index := minSize
	// Paraphrasing the paper: use the mask with more effective bits
	// while the position is below the desired size, making it harder
	// to produce small chunks.
	for index < center {
		hash = hash<<1 + gear.Table[source[index]]
		if hash&maskS == 0 {
			return hash, index
		}
		index++
	}
	// And the mask with fewer effective bits past the desired size,
	// making it easier to end large chunks.
	for index < remaining {
		hash = hash<<1 + gear.Table[source[index]]
		if hash&maskL == 0 {
			return hash, index
		}
		index++
	}
	// All else failed, return the largest possible chunk. Happens on
	// pathological data such as all zeroes.
	return hash, index
}

// ceilDiv is integer division rounding up. Safe from overflow here:
// every caller passes values far below the int range.
func ceilDiv(x, y int) int {
	return (x + y - 1) / y
}
