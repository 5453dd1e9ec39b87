package v2020

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// AsyncStream is Stream for callers that need cancellation: every
// chunk request takes a context, and the refill step consults it
// before each read of the source. On cancellation the in-flight fill
// is abandoned and no partial chunk is produced.
//
// An AsyncStream is strictly sequential and runs no goroutines of its
// own; like the other chunkers it must not be shared between
// goroutines, while distinct instances are independent.
type AsyncStream struct {
	state
}

// NewAsyncStream returns an AsyncStream reading from source, with
// normalization Level1 and the canonical gear tables.
func NewAsyncStream(source io.Reader, minSize, avgSize, maxSize int) (*AsyncStream, error) {
	return AsyncStreamWithLevel(source, minSize, avgSize, maxSize, Level1)
}

// AsyncStreamWithLevel returns an AsyncStream with the given
// normalization level.
func AsyncStreamWithLevel(source io.Reader, minSize, avgSize, maxSize int, level Normalization) (*AsyncStream, error) {
	return AsyncStreamWithLevelAndSeed(source, minSize, avgSize, maxSize, level, 0)
}

// AsyncStreamWithLevelAndSeed returns an AsyncStream whose gear tables
// are XOR'd with seed.
func AsyncStreamWithLevelAndSeed(source io.Reader, minSize, avgSize, maxSize int, level Normalization, seed uint64) (*AsyncStream, error) {
	st, err := newState(source, minSize, avgSize, maxSize, level, seed)
	if err != nil {
		return nil, err
	}
	return &AsyncStream{state: st}, nil
}

// Next returns the next chunk of the stream. It reports ErrEndOfStream
// once the source is exhausted; any other error is either the
// context's or wraps a source read failure. After an error the stream
// stays ended.
func (s *AsyncStream) Next(ctx context.Context) (ChunkData, error) {
	if s.err != nil {
		return ChunkData{}, ErrEndOfStream
	}
	if err := s.fillContext(ctx); err != nil {
		s.err = err
		return ChunkData{}, fmt.Errorf("v2020: read source: %w", err)
	}
	return s.emit()
}

// fillContext is fill with a context check before every read, so a
// consumer abandoning the stream does not leave it blocked on a source
// longer than one read.
func (s *AsyncStream) fillContext(ctx context.Context) error {
	for !s.eof && s.length < len(s.buffer) {
		if err := ctx.Err(); err != nil {
			return err
		}
		n, err := s.source.Read(s.buffer[s.length:])
		s.length += n
		if errors.Is(err, io.EOF) || (n == 0 && err == nil) {
			s.eof = true
		} else if err != nil {
			return err
		}
	}
	return nil
}
