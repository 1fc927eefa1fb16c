package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()
	for _, dir := range Directions {
		got, ok := km.Resolve(dir.String())
		require.True(t, ok, dir.String())
		assert.Equal(t, dir, got)
	}
	_, ok := km.Resolve(KeyEnter)
	assert.False(t, ok)
	_, ok = km.Resolve("ArrowUp")
	assert.False(t, ok)
}

func TestNewKeyMapValidation(t *testing.T) {
	_, err := NewKeyMap(map[string]Direction{" ": Up})
	assert.ErrorIs(t, err, ErrInvalidKeyMap)

	_, err = NewKeyMap(map[string]Direction{"k": Direction(9)})
	assert.ErrorIs(t, err, ErrInvalidKeyMap)

	_, err = NewKeyMap(map[string]Direction{KeyEnter: Down})
	assert.ErrorIs(t, err, ErrInvalidKeyMap)
}

func TestKeyMapIsACopy(t *testing.T) {
	src := map[string]Direction{"k": Up}
	km, err := NewKeyMap(src)
	require.NoError(t, err)

	src["j"] = Down
	_, ok := km.Resolve("j")
	assert.False(t, ok)
	assert.Equal(t, 1, km.Len())
}

func TestKeyMapKeys(t *testing.T) {
	km, err := NewKeyMap(map[string]Direction{"up": Up, "k": Up, "j": Down})
	require.NoError(t, err)
	assert.Equal(t, []string{"k", "up"}, km.Keys(Up))
	assert.Equal(t, []string{"j"}, km.Keys(Down))
	assert.Empty(t, km.Keys(Left))
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{
		"up": Up, "DOWN": Down, "ArrowLeft": Left, " right ": Right,
	} {
		got, err := ParseDirection(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseDirection("sideways")
	assert.ErrorIs(t, err, ErrUnknownDirection)
}

func TestDirectionText(t *testing.T) {
	var d Direction
	require.NoError(t, d.UnmarshalText([]byte("ArrowDown")))
	assert.Equal(t, Down, d)

	out, err := Left.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "left", string(out))

	_, err = Direction(0).MarshalText()
	assert.Error(t, err)
	assert.Equal(t, "direction(0)", Direction(0).String())
}
