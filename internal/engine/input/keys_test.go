package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"space", KeySpace},
		{"Escape", KeyEscape},
		{" enter ", KeyEnter},
		{"a", KeyA},
		{"P", KeyA + 15},
		{"z", KeyZ},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKey(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "f13", "ctrl", "1"} {
		_, err := ParseKey(bad)
		assert.Error(t, err, bad)
	}
}

func TestKeyStringRoundTrip(t *testing.T) {
	for _, name := range []string{"space", "escape", "left", "q"} {
		k, err := ParseKey(name)
		require.NoError(t, err)
		assert.Equal(t, name, k.String())
	}
	assert.Equal(t, "unknown", KeyUnknown.String())
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot()
	assert.False(t, s.KeyDown(KeySpace))

	s.Press(KeySpace)
	assert.True(t, s.KeyDown(KeySpace))
	assert.False(t, s.KeyDown(KeyEscape))

	s.Release(KeySpace)
	assert.False(t, s.KeyDown(KeySpace))

	s.SetMouse(MouseState{X: 10, Y: 20, Buttons: 1 << 2})
	m := s.Mouse()
	assert.Equal(t, int32(10), m.X)
	assert.True(t, m.Pressed(3))
	assert.False(t, m.Pressed(1))
	assert.False(t, m.Pressed(0))
}
