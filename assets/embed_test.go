package assets

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDefaultSheet(t *testing.T) {
	for _, path := range []string{"", DefaultSheet, "assets/" + DefaultSheet} {
		t.Run(path, func(t *testing.T) {
			img, err := DecodeSheet(path)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 800, 400), img.Bounds())
			assert.NoError(t, CheckSheet(img, 100, 8, 4))
		})
	}
}

func TestDecodeSheetFromDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, 80, 40))))
	require.NoError(t, f.Close())

	img, err := DecodeSheet(path)
	require.NoError(t, err)
	assert.NoError(t, CheckSheet(img, 10, 8, 4))
	assert.Error(t, CheckSheet(img, 100, 8, 4))
}

func TestDecodeSheetErrors(t *testing.T) {
	t.Run("missing", func(t *testing.T) {
		_, err := DecodeSheet(filepath.Join(t.TempDir(), "nope.png"))
		assert.Error(t, err)
	})

	t.Run("not_an_image", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.png")
		require.NoError(t, os.WriteFile(path, []byte("nope"), 0o644))
		_, err := DecodeSheet(path)
		assert.Error(t, err)
	})
}
