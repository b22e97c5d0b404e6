package textrandom_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartrandom/pkg/charset"
	"github.com/dmitrymomot/smartrandom/pkg/textrandom"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

func TestRandomize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		text    string
		allowed []string
	}{
		{
			name:    "single placeholder",
			text:    "Hello, {Alice|Bob}!",
			allowed: []string{"Hello, Alice!", "Hello, Bob!"},
		},
		{
			name:    "no placeholders",
			text:    "no patterns",
			allowed: []string{"no patterns"},
		},
		{
			name:    "empty text",
			text:    "",
			allowed: []string{""},
		},
		{
			name:    "single option",
			text:    "Hello {name}!",
			allowed: []string{"Hello name!"},
		},
		{
			name:    "empty braces are kept",
			text:    "keep {} as is",
			allowed: []string{"keep {} as is"},
		},
		{
			name:    "empty alternative",
			text:    "x{a|}y",
			allowed: []string{"xay", "xy"},
		},
		{
			name: "independent placeholders",
			text: "{Good|Bad} morning, {Alice|Bob}!",
			allowed: []string{
				"Good morning, Alice!", "Good morning, Bob!",
				"Bad morning, Alice!", "Bad morning, Bob!",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			for range 50 {
				got, err := textrandom.Randomize(tt.text)
				require.NoError(t, err)
				assert.Contains(t, tt.allowed, got)
			}
		})
	}
}

func TestRandomizeCoversAlternatives(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 100 {
		got, err := textrandom.Randomize("Hello, {Alice|Bob|Charlie}!")
		require.NoError(t, err)
		seen[got] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestRandomizeDeterministicReader(t *testing.T) {
	t.Parallel()

	r := textrandom.New(zeroReader{})

	got, err := r.Randomize("{a|b} and {c|d}")
	require.NoError(t, err)
	assert.Equal(t, "a and c", got)

	got, err = r.Randomize("{{a|b}}")
	require.NoError(t, err)
	assert.Equal(t, "{a}", got)

	got, err = r.Randomize("line {one\n|two}")
	require.NoError(t, err)
	assert.Equal(t, "line {one\n|two}", got)
}

func TestRandomizeReaderFailure(t *testing.T) {
	t.Parallel()

	r := textrandom.New(bytes.NewReader(nil))

	got, err := r.Randomize("{a|b}")
	assert.Empty(t, got)
	assert.ErrorIs(t, err, charset.ErrRandomSource)

	got, err = r.Randomize("plain text")
	require.NoError(t, err)
	assert.Equal(t, "plain text", got)
}

func TestHasPlaceholders(t *testing.T) {
	t.Parallel()

	assert.True(t, textrandom.HasPlaceholders("{a|b}"))
	assert.True(t, textrandom.HasPlaceholders("Hi {there}"))
	assert.False(t, textrandom.HasPlaceholders("Hi {}"))
	assert.False(t, textrandom.HasPlaceholders("plain"))
}
