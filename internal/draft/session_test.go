package draft

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCopySemantics(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create()

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	got.Draft.Handle = "@mutated"

	again, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Empty(t, again.Draft.Handle, "mutations must go through Set")
}

func TestStorePruneExpired(t *testing.T) {
	store := NewStore(time.Minute)
	fresh := store.Create()
	stale := store.Create()

	now := time.Now()
	staleSession, ok := store.Get(stale.ID)
	require.True(t, ok)
	staleSession.UpdatedAt = now.Add(-2 * time.Minute)
	store.sessions[stale.ID] = *staleSession

	pruned := store.PruneExpired(now)
	assert.Equal(t, 1, pruned)

	_, ok = store.Get(stale.ID)
	assert.False(t, ok)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}

func TestStorePruneSkipsInFlightSubmissions(t *testing.T) {
	store := NewStore(time.Minute)
	session := store.Create()

	require.True(t, store.BeginSubmit(session.ID))
	stored := store.sessions[session.ID]
	stored.UpdatedAt = time.Now().Add(-time.Hour)
	store.sessions[session.ID] = stored

	assert.Equal(t, 0, store.PruneExpired(time.Now()))
	_, ok := store.Get(session.ID)
	assert.True(t, ok)
}

func TestBeginSubmitIsExclusive(t *testing.T) {
	store := NewStore(time.Hour)
	session := store.Create()

	assert.True(t, store.BeginSubmit(session.ID))
	assert.False(t, store.BeginSubmit(session.ID))

	store.EndSubmit(session.ID)
	assert.True(t, store.BeginSubmit(session.ID))
}
