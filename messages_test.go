package staticfsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailboxSingleSlot(t *testing.T) {
	t.Parallel()

	var box Mailbox[int]

	require.NoError(t, box.Put(1))
	assert.True(t, box.Occupied())

	v, ok := box.Take().Get()
	require.True(t, ok)
	assert.Equal(t, 1, v)

	// A buffered message is yielded exactly once.
	assert.True(t, box.Take().Empty())
	assert.False(t, box.Occupied())
}

func TestMailboxOverwritePolicy(t *testing.T) {
	t.Parallel()

	var box Mailbox[string]

	require.NoError(t, box.Put("first"))
	require.NoError(t, box.Put("second"))

	v, ok := box.Take().Get()
	require.True(t, ok)
	assert.Equal(t, "second", v)
}

func TestMailboxRejectPolicy(t *testing.T) {
	t.Parallel()

	box := NewMailbox[string](OverflowReject)

	require.NoError(t, box.Put("first"))

	err := box.Put("second")
	require.ErrorIs(t, err, ErrMailboxFull)

	// The original message survives the rejected Put.
	v, ok := box.Take().Get()
	require.True(t, ok)
	assert.Equal(t, "first", v)

	// Slot cleared, Put succeeds again.
	require.NoError(t, box.Put("third"))
}

func TestMailboxTakeOnEmpty(t *testing.T) {
	t.Parallel()

	var box Mailbox[struct{}]

	assert.True(t, box.Take().Empty())
}
