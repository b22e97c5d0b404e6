package qrcode_test

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/smartrandom/pkg/qrcode"
)

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		content  string
		size     int
		wantSize int
		wantErr  error
	}{
		{name: "password", content: "q7&XbT_e2mJr!9aZ", size: 256, wantSize: 256},
		{name: "custom size", content: "h4TqZ1", size: 400, wantSize: 400},
		{name: "zero size uses default", content: "h4TqZ1", size: 0, wantSize: qrcode.DefaultSize},
		{name: "negative size uses default", content: "h4TqZ1", size: -10, wantSize: qrcode.DefaultSize},
		{name: "empty content", content: "", size: 256, wantErr: qrcode.ErrEmptyContent},
		{name: "whitespace content", content: " \t\n", size: 256, wantErr: qrcode.ErrEmptyContent},
		{name: "content too long", content: strings.Repeat("x", 8000), size: 256, wantErr: qrcode.ErrFailedToGenerateQRCode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			data, err := qrcode.Encode(tt.content, tt.size)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(data))
			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, img.Bounds().Dx())
			assert.Equal(t, tt.wantSize, img.Bounds().Dy())
		})
	}
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("writes private png", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "secret.png")
		require.NoError(t, qrcode.WriteFile(path, "q7&XbT_e2mJr!9aZ", 128))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		_, err = png.Decode(bytes.NewReader(data))
		assert.NoError(t, err)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "missing", "secret.png")
		assert.ErrorIs(t, qrcode.WriteFile(path, "abc", 128), qrcode.ErrFailedToWriteFile)
	})

	t.Run("empty content", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "secret.png")
		assert.ErrorIs(t, qrcode.WriteFile(path, "", 128), qrcode.ErrEmptyContent)
		assert.NoFileExists(t, path)
	})
}
