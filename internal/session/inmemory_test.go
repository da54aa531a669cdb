package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nossumusTM/vinvinio-sub003/internal/model"
)

func TestInMemoryRoundTrip(t *testing.T) {
	store := NewInMemory(time.Minute)
	ctx := context.Background()

	location := "Rome, Italy"
	guests := 2
	snap := model.MemorySnapshot{
		Location:   &location,
		GuestCount: &guests,
		Keywords:   model.StringList{"food", "tour"},
	}
	require.NoError(t, store.Save(ctx, "s-1", snap))

	loaded, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.Location)
	assert.Equal(t, "Rome, Italy", *loaded.Location)
	require.NotNil(t, loaded.GuestCount)
	assert.Equal(t, 2, *loaded.GuestCount)
	assert.Equal(t, model.StringList{"food", "tour"}, loaded.Keywords)
}

func TestInMemoryUnknownSession(t *testing.T) {
	store := NewInMemory(time.Minute)

	loaded, err := store.Load(context.Background(), "nope")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestInMemoryExpiry(t *testing.T) {
	store := NewInMemory(10 * time.Millisecond)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "s-1", model.MemorySnapshot{}))
	time.Sleep(30 * time.Millisecond)

	loaded, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestInMemoryOverwriteRefreshes(t *testing.T) {
	store := NewInMemory(time.Minute)
	ctx := context.Background()

	first := "Lisbon"
	second := "Porto"
	require.NoError(t, store.Save(ctx, "s-1", model.MemorySnapshot{Location: &first}))
	require.NoError(t, store.Save(ctx, "s-1", model.MemorySnapshot{Location: &second}))

	loaded, err := store.Load(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, loaded)
	require.NotNil(t, loaded.Location)
	assert.Equal(t, "Porto", *loaded.Location)
}
