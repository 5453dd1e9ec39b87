// Package ronomon implements the FastCDC variation by Joran Dirk Greef
// (github.com/ronomon/deduplication): 31-bit integers with a right
// shift instead of the canonical 64-bit left shift, masks without zero
// padding, a fixed one bit of chunk size normalization, and an adaptive
// threshold combining the average and minimum chunk sizes to decide
// where to switch masks.
//
// The boundaries it finds are incompatible with those of the v2016 and
// v2020 packages; pick one variant per dataset and keep it.
package ronomon

import (
	"errors"
	"fmt"
	"math/bits"
)

// Bounds accepted by the constructors.
const (
	MinimumMin = 64
	MinimumMax = 67_108_864
	AverageMin = 256
	AverageMax = 268_435_456
	MaximumMin = 1024
	MaximumMax = 1_073_741_824
)

var (
	// ErrMinSize is returned when the minimum chunk size is out of bounds.
	ErrMinSize = errors.New("ronomon: minimum chunk size out of bounds")
	// ErrAvgSize is returned when the average chunk size is out of bounds.
	ErrAvgSize = errors.New("ronomon: average chunk size out of bounds")
	// ErrMaxSize is returned when the maximum chunk size is out of bounds.
	ErrMaxSize = errors.New("ronomon: maximum chunk size out of bounds")
	// ErrSizeOrder is returned unless min <= avg <= max.
	ErrSizeOrder = errors.New("ronomon: chunk sizes must be ordered min <= avg <= max")
)

func checkSizes(minSize, avgSize, maxSize int) error {
	switch {
	case minSize < MinimumMin || minSize > MinimumMax:
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrMinSize, minSize, MinimumMin, MinimumMax)
	case avgSize < AverageMin || avgSize > AverageMax:
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrAvgSize, avgSize, AverageMin, AverageMax)
	case maxSize < MaximumMin || maxSize > MaximumMax:
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrMaxSize, maxSize, MaximumMin, MaximumMax)
	case minSize > avgSize || avgSize > maxSize:
		return fmt.Errorf("%w: min %d, avg %d, max %d", ErrSizeOrder, minSize, avgSize, maxSize)
	}
	return nil
}

// Chunk is a single piece of the source, identified by the fingerprint
// value at its cut point. The fingerprint is not a content hash: equal
// fingerprints do not imply equal data.
type Chunk struct {
	// Hash is the rolling fingerprint as of the end of the chunk.
	Hash uint32
	// Offset is the starting byte position within the source.
	Offset int
	// Length of the chunk in bytes.
	Length int
}

// Chunker splits a byte slice into content-defined chunks. Obtain one
// with New or WithEOF and drain it with Next. A Chunker borrows the
// source slice and never copies or modifies it.
type Chunker struct {
	source    []byte
	processed int
	remaining int
	minSize   int
	avgSize   int
	maxSize   int
	maskS     uint32
	maskL     uint32
	eof       bool
}

// New returns a Chunker over source. The average size is what the
// FastCDC paper calls the desired "normal size"; minimum and maximum
// bound the produced chunk lengths.
func New(source []byte, minSize, avgSize, maxSize int) (*Chunker, error) {
	return WithEOF(source, minSize, avgSize, maxSize, true)
}

// WithEOF returns a Chunker for one block of a larger stream. With
// eof=false the source is a non-terminal block: the trailing region in
// which no boundary was found is withheld, because a boundary may yet
// appear once the caller supplies the following block. With eof=true
// the source is final and the trailing region becomes the last chunk.
func WithEOF(source []byte, minSize, avgSize, maxSize int, eof bool) (*Chunker, error) {
	if err := checkSizes(minSize, avgSize, maxSize); err != nil {
		return nil, err
	}
	b := uint(bits.Len32(uint32(avgSize)) - 1)
	return &Chunker{
		source:    source,
		remaining: len(source),
		minSize:   minSize,
		avgSize:   avgSize,
		maxSize:   maxSize,
		maskS:     1<<(b+1) - 1,
		maskL:     1<<(b-1) - 1,
		eof:       eof,
	}, nil
}

// Next returns the next chunk, in strictly increasing offset order. It
// reports false once the source is exhausted (or, in non-EOF mode, once
// the remainder is shorter than a guaranteed boundary).
func (c *Chunker) Next() (Chunk, bool) {
	if c.remaining == 0 {
		return Chunk{}, false
	}
	hash, size := c.cut(c.processed, c.remaining)
	if size == 0 {
		return Chunk{}, false
	}
	chunk := Chunk{Hash: hash, Offset: c.processed, Length: size}
	c.processed += size
	c.remaining -= size
	return chunk, true
}

// SizeHint bounds the number of chunks Next has yet to produce: at
// least lower (every remaining chunk maximal) and at most upper (every
// remaining chunk minimal).
func (c *Chunker) SizeHint() (lower, upper int) {
	return ceilDiv(c.remaining, c.maxSize), ceilDiv(c.remaining, c.minSize)
}

// cut returns the fingerprint and size of the next chunk starting at
// offset. A zero size means no chunk can be produced yet.
func (c *Chunker) cut(offset, size int) (uint32, int) {
	if size <= c.minSize {
		if !c.eof {
			return 0, 0
		}
		return 0, size
	}
	if size > c.maxSize {
		size = c.maxSize
	}
	start := offset
	len1 := offset + centerSize(c.avgSize, c.minSize, size)
	len2 := offset + size
	var hash uint32
	offset += c.minSize
	// Start with the "harder" judgement to find chunks that run
	// smaller than the desired normal size.
	for offset < len1 {
		hash = (hash >> 1) + table[c.source[offset]]
		offset++
		if hash&c.maskS == 0 {
			return hash, offset - start
		}
	}
	// Fall back to the "easier" judgement for chunks that run larger
	// than the desired normal size.
	for offset < len2 {
		hash = (hash >> 1) + table[c.source[offset]]
		offset++
		if hash&c.maskL == 0 {
			return hash, offset - start
		}
	}
	if !c.eof && size < c.maxSize {
		// Not the last block: a later block may still yield a larger
		// chunk. At size == maximum no larger chunk is possible, so
		// emit it.
		return hash, 0
	}
	// All else failed, return the whole region. Happens on
	// pathological data such as all zeroes.
	return hash, size
}

// centerSize is the pivot at which cut switches from the strict mask to
// the eager one: the normal size adapted so that a larger minimum chunk
// size switches earlier.
func centerSize(average, minimum, sourceSize int) int {
	offset := minimum + ceilDiv(minimum, 2)
	if offset > average {
		offset = average
	}
	size := average - offset
	if size > sourceSize {
		return sourceSize
	}
	return size
}

// ceilDiv is integer division rounding up. Safe from overflow here:
// every caller passes values far below the int range.
func ceilDiv(x, y int) int {
	return (x + y - 1) / y
}
