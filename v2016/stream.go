package v2016

import (
	"errors"
	"fmt"
	"io"
)

// ErrEndOfStream reports that the source is exhausted: every byte it
// produced has already been returned in a chunk. It is also the result
// of every call after a read failure, so a consumer loop terminates
// instead of retrying a dead source.
var ErrEndOfStream = errors.New("v2016: end of stream")

// ChunkData is a chunk produced by Stream, carrying its bytes. Data is
// owned by the caller: it remains valid after further Next calls.
type ChunkData struct {
	// Hash is the GEAR fingerprint as of the end of the chunk.
	Hash uint64
	// Offset is the starting byte position within the stream.
	Offset uint64
	// Length of the chunk in bytes.
	Length int
	// Data holds the chunk's bytes.
	Data []byte
}

// Stream finds the same boundaries as Chunker but reads its input from
// an io.Reader through an internal buffer of the maximum chunk size.
// The fingerprint restarts at zero for every chunk, so chunking a
// stream piecewise and chunking the same bytes in memory agree exactly.
type Stream struct {
	source    io.Reader
	buffer    []byte
	length    int
	processed uint64
	eof       bool
	err       error
	minSize   int
	avgSize   int
	maxSize   int
	maskS     uint64
	maskL     uint64
}

// NewStream returns a Stream reading from source, with normalization
// Level1.
func NewStream(source io.Reader, minSize, avgSize, maxSize int) (*Stream, error) {
	return StreamWithLevel(source, minSize, avgSize, maxSize, Level1)
}

// StreamWithLevel returns a Stream with the given normalization level.
func StreamWithLevel(source io.Reader, minSize, avgSize, maxSize int, level Normalization) (*Stream, error) {
	if err := checkSizes(minSize, avgSize, maxSize, level); err != nil {
		return nil, err
	}
	maskS, maskL := masks(avgSize, level)
	return &Stream{
		source:  source,
		buffer:  make([]byte, maxSize),
		minSize: minSize,
		avgSize: avgSize,
		maxSize: maxSize,
		maskS:   maskS,
		maskL:   maskL,
	}, nil
}

// Next returns the next chunk of the stream. It reports ErrEndOfStream
// once the source is exhausted; any other error came from the source
// read and wraps it. After an error the stream stays ended: no partial
// chunk is ever produced and the source is not read again.
func (s *Stream) Next() (ChunkData, error) {
	if s.err != nil {
		return ChunkData{}, ErrEndOfStream
	}
	if err := s.fill(); err != nil {
		s.err = err
		return ChunkData{}, fmt.Errorf("v2016: read source: %w", err)
	}
	if s.length == 0 {
		s.err = ErrEndOfStream
		return ChunkData{}, ErrEndOfStream
	}
	hash, count := cut(s.buffer[:s.length], s.minSize, s.avgSize, s.maxSize, s.maskS, s.maskL)
	return s.drain(hash, count), nil
}

// MinChunks is a lower bound on the number of chunks Next has yet to
// produce. The total stream length is unknown, so no upper bound
// exists; the bound counts only the bytes already buffered.
func (s *Stream) MinChunks() int {
	return ceilDiv(s.length, s.maxSize)
}

// fill tops the buffer up to its capacity. A zero-byte read or io.EOF
// marks the end of the source.
func (s *Stream) fill() error {
	for !s.eof && s.length < len(s.buffer) {
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

// drain copies the first count bytes out as a chunk and shifts the
// remainder to the front of the buffer.
func (s *Stream) drain(hash uint64, count int) ChunkData {
	data := make([]byte, count)
	copy(data, s.buffer[:count])
	chunk := ChunkData{Hash: hash, Offset: s.processed, Length: count, Data: data}
	s.processed += uint64(count)
	copy(s.buffer, s.buffer[count:s.length])
	s.length -= count
	return chunk
}
