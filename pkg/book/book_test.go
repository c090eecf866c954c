package book_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/herohde/xiangqi/pkg/board"
	"github.com/herohde/xiangqi/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(hash uint64, from, to board.Square, weight uint16) []byte {
	var buf [12]byte
	binary.BigEndian.PutUint64(buf[0:8], hash)
	binary.BigEndian.PutUint16(buf[8:10], uint16(from)<<7|uint16(to))
	binary.BigEndian.PutUint16(buf[10:12], weight)
	return buf[:]
}

// bookFromReader writes the given records to a scratch file and loads it,
// since book.Load's decoding is only reachable through a file path.
func bookFromReader(t *testing.T, recs ...[]byte) (book.Book, error) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "book.bin")
	var data []byte
	for _, r := range recs {
		data = append(data, r...)
	}
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return book.Load(path)
}

func TestLoad(t *testing.T) {
	f3r2 := board.NewSquare(2, 0)
	f4r2 := board.NewSquare(3, 0)

	b, err := bookFromReader(t,
		record(10, f3r2, f4r2, 5),
		record(10, f4r2, f3r2, 10),
		record(20, f3r2, f4r2, 0),
	)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Size())

	t.Run("Find sorts by descending weight", func(t *testing.T) {
		entries := b.Find(10)
		require.Len(t, entries, 2)
		assert.Equal(t, uint16(10), entries[0].Weight)
		assert.Equal(t, uint16(5), entries[1].Weight)
	})

	t.Run("Find misses unknown hash", func(t *testing.T) {
		assert.Nil(t, b.Find(999))
	})

	t.Run("Pick falls back to smallest encoding when weights are zero", func(t *testing.T) {
		m, ok := b.Pick(20)
		require.True(t, ok)
		assert.Equal(t, board.Move{From: f3r2, To: f4r2}, m)
	})

	t.Run("Pick misses unknown hash", func(t *testing.T) {
		_, ok := b.Pick(999)
		assert.False(t, ok)
	})
}

func TestLoadRejectsUnsortedHashes(t *testing.T) {
	f3r2 := board.NewSquare(2, 0)
	f4r2 := board.NewSquare(3, 0)

	_, err := bookFromReader(t,
		record(20, f3r2, f4r2, 1),
		record(10, f4r2, f3r2, 1),
	)
	assert.Error(t, err)
}

func TestLoadRejectsTruncatedRecord(t *testing.T) {
	data := record(10, board.NewSquare(2, 0), board.NewSquare(3, 0), 1)
	path := filepath.Join(t.TempDir(), "truncated.bin")
	require.NoError(t, os.WriteFile(path, data[:len(data)-3], 0o644))

	_, err := book.Load(path)
	assert.Error(t, err)
}

func TestEmptyBookAlwaysMisses(t *testing.T) {
	assert.Nil(t, book.Empty.Find(0))
	_, ok := book.Empty.Pick(0)
	assert.False(t, ok)
	assert.Equal(t, 0, book.Empty.Size())
}
