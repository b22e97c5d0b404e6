package smartpassword_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartrandom/pkg/charset"
	"github.com/dmitrymomot/smartrandom/pkg/generator"
	"github.com/dmitrymomot/smartrandom/pkg/smartpassword"
)

func TestGenerate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		seed   string
		length int
	}{
		{name: "custom seed", seed: "custom_seed", length: 15},
		{name: "minimum length", seed: "seed", length: generator.MinPasswordLength},
		{name: "unicode seed", seed: "пароль", length: 20},
		{name: "maximum length", seed: "long", length: smartpassword.MaxLength},
		{name: "empty seed", seed: "", length: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			pwd, err := smartpassword.Generate(tt.seed, tt.length)
			require.NoError(t, err)
			assert.Len(t, pwd, tt.length)
			assert.True(t, strings.ContainsFunc(pwd, unicode.IsUpper))
			assert.True(t, strings.ContainsFunc(pwd, unicode.IsLower))
			assert.True(t, strings.ContainsFunc(pwd, unicode.IsDigit))
			assert.True(t, strings.ContainsAny(pwd, charset.Symbols))
		})
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	first, err := smartpassword.Generate("same_seed", 15)
	require.NoError(t, err)
	second, err := smartpassword.Generate("same_seed", 15)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := smartpassword.Generate("other_seed", 15)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}

func TestGenerateEmptySeedIsRandom(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 20 {
		pwd, err := smartpassword.Generate("", 15)
		require.NoError(t, err)
		seen[pwd] = struct{}{}
	}
	assert.Greater(t, len(seen), 1)
}

func TestGenerateInvalidLength(t *testing.T) {
	t.Parallel()

	_, err := smartpassword.Generate("test", 3)
	require.ErrorIs(t, err, generator.ErrInvalidLength)

	var lerr *generator.LengthError
	require.ErrorAs(t, err, &lerr)
	assert.Equal(t, generator.MinPasswordLength, lerr.Min)

	_, err = smartpassword.Generate("test", smartpassword.MaxLength+1)
	assert.ErrorIs(t, err, smartpassword.ErrLengthTooLong)
}

func BenchmarkGenerate(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = smartpassword.Generate("benchmark seed", 16)
	}
}
