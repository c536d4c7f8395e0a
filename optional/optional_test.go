package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/staticfsm/optional"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()

	some := optional.Some(42)
	v, ok := some.Get()
	require.True(t, ok)
	assert.Equal(t, 42, v)
	assert.True(t, some.NonEmpty())
	assert.False(t, some.Empty())

	none := optional.None[int]()
	_, ok = none.Get()
	assert.False(t, ok)
	assert.True(t, none.Empty())
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()

	var v optional.Value[string]

	assert.True(t, v.Empty())
	assert.Equal(t, "fallback", v.GetOrElse("fallback"))
}

func TestGetOrElse(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 7, optional.Some(7).GetOrElse(0))
	assert.Equal(t, 0, optional.None[int]().GetOrElse(0))
}

func TestMap(t *testing.T) {
	t.Parallel()

	doubled := optional.Map(optional.Some(3), func(n int) int { return n * 2 })
	v, ok := doubled.Get()
	require.True(t, ok)
	assert.Equal(t, 6, v)

	empty := optional.Map(optional.None[int](), func(n int) int { return n * 2 })
	assert.True(t, empty.Empty())
}

func TestString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Some(5)", optional.Some(5).String())
	assert.Equal(t, "None", optional.None[int]().String())
}
