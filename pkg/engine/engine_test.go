package engine_test

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/herohde/xiangqi/pkg/engine"
	"github.com/herohde/xiangqi/pkg/search"
	"github.com/seekerror/stdlib/pkg/lang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayAndUndo(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, 1024, 1)

	require.NoError(t, e.Play(ctx, "7062"))
	require.Error(t, e.Play(ctx, "7062"), "the Horse moved away, so repeating the move is no longer legal")

	require.NoError(t, e.Undo(ctx))
	assert.Error(t, e.Undo(ctx), "no move left to take back at the initial position")
}

func TestResetClearsState(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, 1024, 1)

	require.NoError(t, e.Play(ctx, "7062"))
	e.ResetToInitialPosition(ctx)

	assert.Error(t, e.Undo(ctx), "reset must clear the undo history")
}

func TestSearchReturnsAMove(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, 1024, 1)

	result := e.Search(ctx, search.Limits{Depth: lang.Some(2)})
	assert.NotZero(t, result.BestMove)
	assert.NotEmpty(t, result.PV)
}

func TestLoadBookAcceptsWellFormedFile(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, 1024, 1)

	path := filepath.Join(t.TempDir(), "book.bin")
	var buf [12]byte
	binary.BigEndian.PutUint64(buf[0:8], 12345)
	binary.BigEndian.PutUint16(buf[8:10], uint16(0)<<7|uint16(1))
	binary.BigEndian.PutUint16(buf[10:12], 1)
	require.NoError(t, os.WriteFile(path, buf[:], 0o644))

	require.NoError(t, e.LoadBook(ctx, path))
}

func TestLoadBookReportsCorruption(t *testing.T) {
	ctx := context.Background()
	e := engine.NewEngine(ctx, 1024, 1)

	path := filepath.Join(t.TempDir(), "missing.bin")
	assert.Error(t, e.LoadBook(ctx, path))
}
