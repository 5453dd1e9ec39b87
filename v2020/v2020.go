// Package v2020 implements the canonical FastCDC algorithm as
// described by Wen Xia, et al. in the 2020 paper. On top of the 2016
// design (GEAR hash judgement, sub-minimum cut-point skipping,
// normalized chunking) it "rolls two bytes each time": a precomputed
// left-shifted gear table lets each loop iteration advance the
// fingerprint over a byte pair with one shift, which the authors
// measured 30-40% faster than the 2016 version.
//
// Chunker walks a byte slice in memory, Stream reads from an io.Reader,
// and AsyncStream does the same under a context.Context for callers
// that need cancellation. All three find identical boundaries for the
// same input and configuration.
//
// The gear tables can be perturbed with a seed (WithLevelAndSeed),
// moving the boundaries. That defeats attacks which watch chunking
// behavior to infer attributes of data they cannot read. Boundaries
// produced under different seeds are incompatible with each other.
package v2020

import (
	"errors"
	"fmt"

	"github.com/fyrchik/fastcdc/internal/gear"
)

// Bounds accepted by the constructors.
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
	ErrMinSize = errors.New("v2020: minimum chunk size out of bounds")
	// ErrAvgSize is returned when the average chunk size is out of bounds.
	ErrAvgSize = errors.New("v2020: average chunk size out of bounds")
	// ErrMaxSize is returned when the maximum chunk size is out of bounds.
	ErrMaxSize = errors.New("v2020: maximum chunk size out of bounds")
	// ErrSizeOrder is returned unless min <= avg <= max.
	ErrSizeOrder = errors.New("v2020: chunk sizes must be ordered min <= avg <= max")
	// ErrLevel is returned for a normalization level outside [Level0, Level3].
	ErrLevel = errors.New("v2020: invalid normalization level")
)

// Normalization selects how strongly chunk sizes are pulled toward the
// average; see the v2016 package for the full description. Higher
// levels may leave the final chunk of a stream smaller than the
// minimum size, in which case its hash is zero.
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

// params holds everything the cut function needs; it is shared by the
// in-memory chunker and both stream drivers.
type params struct {
	minSize   int
	avgSize   int
	maxSize   int
	maskS     uint64
	maskL     uint64
	maskSLS   uint64
	maskLLS   uint64
	tableGear *[256]uint64
	tableLS   *[256]uint64
}

func newParams(minSize, avgSize, maxSize int, level Normalization, seed uint64) (params, error) {
	if err := checkSizes(minSize, avgSize, maxSize, level); err != nil {
		return params{}, err
	}
	bits := gear.Log2(uint32(avgSize))
	maskS := gear.Masks[bits+uint32(level)]
	maskL := gear.Masks[bits-uint32(level)]
	tab, tabLS := gear.SeededTables(seed)
	return params{
		minSize:   minSize,
		avgSize:   avgSize,
		maxSize:   maxSize,
		maskS:     maskS,
		maskL:     maskL,
		maskSLS:   maskS << 1,
		maskLLS:   maskL << 1,
		tableGear: tab,
		tableLS:   tabLS,
	}, nil
}

// Chunk is a single piece of the source. The fingerprint is not a
// content hash, and differs from the one the v2016 chunker would
// report at the same position.
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
	params
	source    []byte
	processed int
	remaining int
}

// New returns a Chunker over source with normalization Level1 and the
// canonical gear tables.
func New(source []byte, minSize, avgSize, maxSize int) (*Chunker, error) {
	return WithLevel(source, minSize, avgSize, maxSize, Level1)
}

// WithLevel returns a Chunker with the given normalization level.
func WithLevel(source []byte, minSize, avgSize, maxSize int, level Normalization) (*Chunker, error) {
	return WithLevelAndSeed(source, minSize, avgSize, maxSize, level, 0)
}

// WithLevelAndSeed returns a Chunker whose gear tables are XOR'd with
// seed, relocating boundaries relative to the zero-seed tables.
// Boundaries forced by the maximum size can coincide with unseeded ones.
func WithLevelAndSeed(source []byte, minSize, avgSize, maxSize int, level Normalization, seed uint64) (*Chunker, error) {
	p, err := newParams(minSize, avgSize, maxSize, level, seed)
	if err != nil {
		return nil, err
	}
	return &Chunker{params: p, source: source, remaining: len(source)}, nil
}

// Cut finds the next cut point when managing start and remaining
// yourself: it scans source[start:start+remaining] and returns the
// fingerprint together with the absolute offset of the end of the
// chunk. When remaining does not exceed the minimum chunk size the
// whole region is the chunk and the fingerprint is zero, since
// sub-minimum regions are never scanned.
func (c *Chunker) Cut(start, remaining int) (uint64, int) {
	hash, count := cut(c.source[start:start+remaining], &c.params)
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

// cut finds the next cut point in source, advancing over a byte pair
// per iteration: the first byte of the pair enters the fingerprint via
// the left-shifted table and is judged against the shifted mask, the
// second via the plain table against the plain mask. The returned
// count is the offset of the boundary: the byte that completed the
// match opens the next chunk.
func cut(source []byte, p *params) (uint64, int) {
	remaining := len(source)
	if remaining <= p.minSize {
		return 0, remaining
	}
	center := p.avgSize
	if remaining > p.maxSize {
		remaining = p.maxSize
	} else if remaining < center {
		center = remaining
	}
	var hash uint64
	index := p.minSize / 2
	for index < center/2 {
		a := index * 2
		hash = hash<<2 + p.tableLS[source[a]]
		if hash&p.maskSLS == 0 {
			return hash, a
		}
		hash += p.tableGear[source[a+1]]
		if hash&p.maskS == 0 {
			return hash, a + 1
		}
		index++
	}
	for index < remaining/2 {
		a := index * 2
		hash = hash<<2 + p.tableLS[source[a]]
		if hash&p.maskLLS == 0 {
			return hash, a
		}
		hash += p.tableGear[source[a+1]]
		if hash&p.maskL == 0 {
			return hash, a + 1
		}
		index++
	}
	// All else failed, return the largest possible chunk (including
	// the odd trailing byte the pairwise loops cannot reach). Happens
	// on pathological data such as all zeroes.
	return hash, remaining
}

// ceilDiv is integer division rounding up. Safe from overflow here:
// every caller passes values far below the int range.
func ceilDiv(x, y int) int {
	return (x + y - 1) / y
}
