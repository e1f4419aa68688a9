package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"graphlens/domain/graph"
	pkgerrors "graphlens/pkg/errors"
)

func TestCurrentOnEmptyRepository(t *testing.T) {
	repo := NewGraphRepository(zap.NewNop())

	_, err := repo.Current(context.Background())
	require.Error(t, err)
	assert.True(t, pkgerrors.IsType(err, pkgerrors.ErrorTypeNotFound))
}

func TestReplaceThenCurrent(t *testing.T) {
	repo := NewGraphRepository(zap.NewNop())
	ctx := context.Background()

	first := graph.NewSnapshot(graph.Fixture(), "fixture", true)
	require.NoError(t, repo.Replace(ctx, first))

	got, err := repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
	assert.Equal(t, 8, got.Model.NodeCount())

	second := graph.NewSnapshot(graph.Fixture(), "ingest", false)
	require.NoError(t, repo.Replace(ctx, second))

	got, err = repo.Current(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.NotEqual(t, first.ID, got.ID)
}

func TestReplaceRejectsEmptySnapshot(t *testing.T) {
	repo := NewGraphRepository(zap.NewNop())

	assert.Error(t, repo.Replace(context.Background(), nil))
	assert.Error(t, repo.Replace(context.Background(), &graph.Snapshot{}))
}
