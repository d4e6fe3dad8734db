package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_LoadMissIsEmptyState(t *testing.T) {
	m := NewManager(NewMemoryStore())

	st, err := m.Load(context.Background(), "fresh")
	require.NoError(t, err)
	assert.Equal(t, &State{}, st)
}

func TestManager_UpdatePersists(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	m.now = func() time.Time { return fixed }
	ctx := context.Background()

	_, err := m.Update(ctx, "s1", func(st *State) error {
		st.SignIn("Ravi")
		return st.AddDraftItem(9, 2)
	})
	require.NoError(t, err)

	st, err := m.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ravi", st.UserName)
	assert.Equal(t, []DraftItem{{ProductID: 9, Quantity: 2}}, st.Draft)
	assert.Equal(t, fixed, st.UpdatedAt)
}

func TestManager_UpdateErrorSavesNothing(t *testing.T) {
	m := NewManager(NewMemoryStore())
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := m.Update(ctx, "s1", func(st *State) error {
		st.B2BMode = true
		return boom
	})
	assert.ErrorIs(t, err, boom)

	st, err := m.Load(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, st.B2BMode)
}

type failingStore struct{ err error }

func (f failingStore) Get(context.Context, string) (*State, error) { return nil, f.err }
func (f failingStore) Set(context.Context, string, *State) error   { return f.err }
func (f failingStore) Delete(context.Context, string) error        { return f.err }

func TestManager_StoreErrorsPropagate(t *testing.T) {
	boom := errors.New("redis down")
	m := NewManager(failingStore{err: boom})

	_, err := m.Load(context.Background(), "s1")
	assert.ErrorIs(t, err, boom)
}

func TestMemoryStore_CopiesState(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	st := &State{Draft: []DraftItem{{ProductID: 1, Quantity: 1}}}
	require.NoError(t, store.Set(ctx, "s1", st))

	st.Draft[0].Quantity = 99
	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 1, got.Draft[0].Quantity)

	got.Draft[0].Quantity = 50
	again, _ := store.Get(ctx, "s1")
	assert.Equal(t, 1, again.Draft[0].Quantity)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	m := NewManager(store)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := NewID()
			_, err := m.Update(ctx, id, func(st *State) error { return st.AddDraftItem(int64(i+1), 1) })
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, store.sessions, 20)
}

func TestValidID(t *testing.T) {
	assert.True(t, ValidID(NewID()))
	assert.False(t, ValidID("not-a-session"))
}
