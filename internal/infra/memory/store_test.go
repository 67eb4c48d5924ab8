package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartnus/internal/domain"
	"smartnus/internal/infra/memory"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	empty, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Zero(t, empty.Len())

	name, err := domain.NewName("q")
	require.NoError(t, err)
	imp, err := domain.NewImportance(1)
	require.NoError(t, err)
	q, err := domain.NewShortAnswerQuestion(name, imp, nil, "a")
	require.NoError(t, err)

	list := domain.NewQuestionList()
	require.NoError(t, list.Add(q))
	require.NoError(t, store.Save(ctx, list))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, loaded.Len())
	assert.True(t, loaded.Questions()[0].Equals(q))

	// Mutating the loaded list must not leak back into the store.
	require.NoError(t, loaded.Remove(q))
	again, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, again.Len())
}
