package v2016

import (
	"bytes"
	"io"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fyrchik/fastcdc/internal/testutil"
)

func drainStream(t *testing.T, s *Stream) []ChunkData {
	t.Helper()
	var chunks []ChunkData
	for {
		chunk, err := s.Next()
		if err == ErrEndOfStream {
			return chunks
		}
		require.NoError(t, err)
		chunks = append(chunks, chunk)
	}
}

func TestStreamInvalidSizes(t *testing.T) {
	_, err := NewStream(bytes.NewReader(nil), 63, 256, 1024)
	require.ErrorIs(t, err, ErrMinSize)
	_, err = StreamWithLevel(bytes.NewReader(nil), 64, 256, 1024, Normalization(9))
	require.ErrorIs(t, err, ErrLevel)
}

func TestStreamEmptySource(t *testing.T) {
	stream, err := NewStream(bytes.NewReader(nil), 64, 256, 1024)
	require.NoError(t, err)
	_, err = stream.Next()
	assert.Equal(t, ErrEndOfStream, err)
	_, err = stream.Next()
	assert.Equal(t, ErrEndOfStream, err)
}

// The stream must find exactly the boundaries the in-memory chunker
// finds, however the source splinters its reads.
func TestStreamMatchesChunker(t *testing.T) {
	buf := testutil.Random(99, 1024*1024)
	memory, err := New(buf, 2048, 8192, 32768)
	require.NoError(t, err)
	want := collect(memory)

	for _, tc := range []struct {
		name   string
		stream *Stream
	}{
		{"plain reader", mustStream(t, bytes.NewReader(buf))},
		{"half reader", mustStream(t, iotest.HalfReader(bytes.NewReader(buf)))},
		{"data err reader", mustStream(t, iotest.DataErrReader(bytes.NewReader(buf)))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			chunks := drainStream(t, tc.stream)
			require.Len(t, chunks, len(want))
			for i, chunk := range chunks {
				assert.Equal(t, want[i].Hash, chunk.Hash, "chunk #%d", i)
				assert.Equal(t, uint64(want[i].Offset), chunk.Offset, "chunk #%d", i)
				assert.Equal(t, want[i].Length, chunk.Length, "chunk #%d", i)
				assert.Equal(t, buf[want[i].Offset:want[i].Offset+want[i].Length], chunk.Data, "chunk #%d", i)
			}
		})
	}
}

func mustStream(t *testing.T, r io.Reader) *Stream {
	t.Helper()
	stream, err := NewStream(r, 2048, 8192, 32768)
	require.NoError(t, err)
	return stream
}

func TestStreamAllZeros(t *testing.T) {
	stream, err := NewStream(bytes.NewReader(make([]byte, 10240)), 64, 256, 1024)
	require.NoError(t, err)
	chunks := drainStream(t, stream)
	require.Len(t, chunks, 10)
	for i, chunk := range chunks {
		assert.Equal(t, uint64(14169102344523991076), chunk.Hash)
		assert.Equal(t, uint64(i*1024), chunk.Offset)
		assert.Equal(t, 1024, chunk.Length)
	}
}

func TestStreamSekien16kChunks(t *testing.T) {
	contents := sekien(t)
	stream, err := NewStream(bytes.NewReader(contents), 4096, 16384, 65535)
	require.NoError(t, err)
	chunks := drainStream(t, stream)
	require.Len(t, chunks, 5)
	wantHashes := []uint64{
		17968276318003433923,
		4098594969649699419,
		15733367461443853673,
		4509236223063678303,
		2504464741100432583,
	}
	wantOffsets := []uint64{0, 21325, 38465, 66549, 84766}
	wantLengths := []int{21325, 17140, 28084, 18217, 24700}
	for i, chunk := range chunks {
		assert.Equal(t, wantHashes[i], chunk.Hash, "chunk #%d", i)
		assert.Equal(t, wantOffsets[i], chunk.Offset, "chunk #%d", i)
		assert.Equal(t, wantLengths[i], chunk.Length, "chunk #%d", i)
		assert.Equal(t, contents[wantOffsets[i]:int(wantOffsets[i])+wantLengths[i]], chunk.Data, "chunk #%d", i)
	}
}

// A failing source aborts the sequence; afterwards the stream reports
// end instead of retrying, and never reads the source again.
func TestStreamReadError(t *testing.T) {
	buf := testutil.Random(7, 128*1024)
	gentle := testutil.NewGentleReader(testutil.NewErrorReader(70_000, buf))
	stream, err := NewStream(gentle, 2048, 8192, 32768)
	require.NoError(t, err)

	var got []ChunkData
	for {
		chunk, err := stream.Next()
		if err != nil {
			require.ErrorIs(t, err, testutil.ErrRead)
			break
		}
		got = append(got, chunk)
	}

	_, err = stream.Next()
	assert.Equal(t, ErrEndOfStream, err)
	_, err = stream.Next()
	assert.Equal(t, ErrEndOfStream, err)
	assert.False(t, gentle.Used, "source was read again after failing")

	// Everything produced before the failure is complete and ordered.
	next := uint64(0)
	for i, chunk := range got {
		assert.Equal(t, next, chunk.Offset, "chunk #%d", i)
		assert.Len(t, chunk.Data, chunk.Length, "chunk #%d", i)
		next += uint64(chunk.Length)
	}
}

func TestStreamMinChunks(t *testing.T) {
	buf := testutil.Random(8, 100*1024)
	stream, err := NewStream(bytes.NewReader(buf), 2048, 8192, 32768)
	require.NoError(t, err)

	assert.Zero(t, stream.MinChunks())
	chunk, err := stream.Next()
	require.NoError(t, err)
	assert.NotZero(t, chunk.Length)

	// The hint must never promise more chunks than actually remain.
	lower := stream.MinChunks()
	rest := drainStream(t, stream)
	assert.LessOrEqual(t, lower, len(rest))
}
