package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bipulsingh126/reel-good-vibes-matcher-sub000/internal/event"
)

func newWatchlistFixture(t *testing.T) (*WatchlistService, *fakeWatchlistStore) {
	t.Helper()
	store := newFakeWatchlistStore()
	svc := NewWatchlistService(store, testCatalog(t), event.NewBus())
	svc.now = func() time.Time { return fixedNow }
	return svc, store
}

func TestWatchlistOwnerKeys(t *testing.T) {
	assert.Equal(t, "user:7", OwnerForUser(7))
	assert.Equal(t, "session:abc", OwnerForSession("abc"))
}

func TestWatchlistAddIsIdempotent(t *testing.T) {
	svc, store := newWatchlistFixture(t)
	ctx := context.Background()
	owner := OwnerForUser(1)

	require.NoError(t, svc.Add(ctx, owner, 5))
	require.NoError(t, svc.Add(ctx, owner, 5)) // no-op

	n, err := svc.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	// el segundo Add no volvió a persistir
	assert.Equal(t, 1, store.puts)
}

func TestWatchlistAddUnknownMovie(t *testing.T) {
	svc, _ := newWatchlistFixture(t)

	err := svc.Add(context.Background(), OwnerForUser(1), 999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestWatchlistRemove(t *testing.T) {
	svc, store := newWatchlistFixture(t)
	ctx := context.Background()
	owner := OwnerForSession("s1")

	require.NoError(t, svc.Add(ctx, owner, 3))
	require.NoError(t, svc.Add(ctx, owner, 7))
	require.NoError(t, svc.Remove(ctx, owner, 3))

	has, err := svc.Has(ctx, owner, 3)
	require.NoError(t, err)
	assert.False(t, has)
	has, err = svc.Has(ctx, owner, 7)
	require.NoError(t, err)
	assert.True(t, has)

	// quitar algo que no está es no-op
	puts := store.puts
	require.NoError(t, svc.Remove(ctx, owner, 3))
	assert.Equal(t, puts, store.puts)
}

func TestWatchlistToggle(t *testing.T) {
	svc, _ := newWatchlistFixture(t)
	ctx := context.Background()
	owner := OwnerForUser(2)

	in, err := svc.Toggle(ctx, owner, 9)
	require.NoError(t, err)
	assert.True(t, in)

	in, err = svc.Toggle(ctx, owner, 9)
	require.NoError(t, err)
	assert.False(t, in)

	n, err := svc.Count(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWatchlistListKeepsInsertionOrder(t *testing.T) {
	svc, _ := newWatchlistFixture(t)
	ctx := context.Background()
	owner := OwnerForUser(3)

	for _, id := range []int{12, 1, 28} {
		require.NoError(t, svc.Add(ctx, owner, id))
	}

	movies, err := svc.List(ctx, owner)
	require.NoError(t, err)
	require.Len(t, movies, 3)
	assert.Equal(t, 12, movies[0].ID)
	assert.Equal(t, 1, movies[1].ID)
	assert.Equal(t, 28, movies[2].ID)
}

func TestWatchlistsAreIsolatedPerOwner(t *testing.T) {
	svc, _ := newWatchlistFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.Add(ctx, OwnerForUser(1), 5))
	require.NoError(t, svc.Add(ctx, OwnerForSession("anon"), 6))

	n, _ := svc.Count(ctx, OwnerForUser(1))
	assert.Equal(t, 1, n)
	has, _ := svc.Has(ctx, OwnerForSession("anon"), 5)
	assert.False(t, has)
}
