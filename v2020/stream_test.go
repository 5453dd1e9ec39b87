package v2020

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
	_, err = StreamWithLevel(bytes.NewReader(nil), 64, 256, 1024, Normalization(4))
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
		source io.Reader
	}{
		{"plain reader", bytes.NewReader(buf)},
		{"half reader", iotest.HalfReader(bytes.NewReader(buf))},
		{"data err reader", iotest.DataErrReader(bytes.NewReader(buf))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			stream, err := NewStream(tc.source, 2048, 8192, 32768)
			require.NoError(t, err)
			chunks := drainStream(t, stream)
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

// Seeded streams agree with seeded in-memory chunking.
func TestStreamMatchesChunkerSeeded(t *testing.T) {
	buf := testutil.Random(42, 512*1024)
	memory, err := WithLevelAndSeed(buf, 2048, 8192, 32768, Level2, 666)
	require.NoError(t, err)
	want := collect(memory)

	stream, err := StreamWithLevelAndSeed(bytes.NewReader(buf), 2048, 8192, 32768, Level2, 666)
	require.NoError(t, err)
	chunks := drainStream(t, stream)
	require.Len(t, chunks, len(want))
	for i, chunk := range chunks {
		assert.Equal(t, want[i].Hash, chunk.Hash, "chunk #%d", i)
		assert.Equal(t, uint64(want[i].Offset), chunk.Offset, "chunk #%d", i)
		assert.Equal(t, want[i].Length, chunk.Length, "chunk #%d", i)
	}
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
		8197189939299398838,
		13019990849178155730,
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

func TestStreamSekien16kChunksSeed666(t *testing.T) {
	contents := sekien(t)
	stream, err := StreamWithLevelAndSeed(bytes.NewReader(contents), 4096, 16384, 65535, Level1, 666)
	require.NoError(t, err)
	chunks := drainStream(t, stream)
	require.Len(t, chunks, 6)
	wantOffsets := []uint64{0, 10605, 66350, 77696, 83579, 95165}
	wantLengths := []int{10605, 55745, 11346, 5883, 11586, 14301}
	for i, chunk := range chunks {
		assert.Equal(t, wantOffsets[i], chunk.Offset, "chunk #%d", i)
		assert.Equal(t, wantLengths[i], chunk.Length, "chunk #%d", i)
	}
}

// A failing source aborts the sequence; afterwards the stream reports
// end instead of retrying, and never reads the source again.
func TestStreamReadError(t *testing.T) {
	buf := testutil.Random(7, 128*1024)
	gentle := testutil.NewGentleReader(testutil.NewErrorReader(70_000, buf))
	stream, err := NewStream(gentle, 2048, 8192, 32768)
	require.NoError(t, err)

	for {
		_, err := stream.Next()
		if err != nil {
			require.ErrorIs(t, err, testutil.ErrRead)
			break
		}
	}

	_, err = stream.Next()
	assert.Equal(t, ErrEndOfStream, err)
	assert.False(t, gentle.Used, "source was read again after failing")
}
