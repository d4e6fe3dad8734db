package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestState_SignIn(t *testing.T) {
	var st State
	st.SignIn("  Asha ")
	assert.Equal(t, "Asha", st.UserName)
	assert.True(t, st.SignedIn())

	st.SignIn("   ")
	assert.Equal(t, GuestName, st.UserName)

	st.SignOut()
	assert.False(t, st.SignedIn())
}

func TestState_ToggleB2B(t *testing.T) {
	var st State
	st.ToggleB2B()
	assert.True(t, st.B2BMode)
	st.ToggleB2B()
	assert.False(t, st.B2BMode)
}

func TestState_DraftMergesAndRemoves(t *testing.T) {
	var st State
	require.NoError(t, st.AddDraftItem(1, 2))
	require.NoError(t, st.AddDraftItem(2, 1))
	require.NoError(t, st.AddDraftItem(1, 3))

	assert.Equal(t, []DraftItem{{ProductID: 1, Quantity: 5}, {ProductID: 2, Quantity: 1}}, st.Draft)

	st.RemoveDraftItem(1)
	assert.Equal(t, []DraftItem{{ProductID: 2, Quantity: 1}}, st.Draft)

	st.RemoveDraftItem(42)
	assert.Len(t, st.Draft, 1)

	st.ClearDraft()
	assert.Empty(t, st.Draft)
}

func TestState_DraftRejectsInvalidItems(t *testing.T) {
	var st State
	assert.ErrorIs(t, st.AddDraftItem(0, 1), ErrInvalidDraftItem)
	assert.ErrorIs(t, st.AddDraftItem(1, 0), ErrInvalidDraftItem)
	assert.ErrorIs(t, st.AddDraftItem(1, -4), ErrInvalidDraftItem)
	assert.Empty(t, st.Draft)
}
