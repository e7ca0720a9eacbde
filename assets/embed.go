package assets

import (
	"bytes"
	"embed"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

//go:embed *.png
var assetsFS embed.FS

// DefaultSheet is the embedded animation sheet: 8 columns by 4 rows of
// 100x100 frames, rows ordered bottom-up run-left, run-right, idle-left,
// idle-right.
const DefaultSheet = "animation_sheet.png"

// LoadSheet decodes the sprite sheet at path, or the embedded default when
// path is empty, and checks it holds rows×frames cells of frameSize pixels.
func LoadSheet(path string, frameSize, frames, rows int) (*ebiten.Image, error) {
	img, err := DecodeSheet(path)
	if err != nil {
		return nil, err
	}
	if err := CheckSheet(img, frameSize, frames, rows); err != nil {
		return nil, errors.Wrapf(err, "assets: sheet %q", path)
	}
	return ebiten.NewImageFromImage(img), nil
}

// DecodeSheet reads a sheet from disk, or from the embedded assets when path
// is empty or names an embedded file.
func DecodeSheet(path string) (image.Image, error) {
	b, err := readAsset(path)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, errors.Wrapf(err, "assets: decode %q", path)
	}
	return img, nil
}

// CheckSheet reports whether img is large enough for the frame grid.
func CheckSheet(img image.Image, frameSize, frames, rows int) error {
	b := img.Bounds()
	if b.Dx() < frameSize*frames || b.Dy() < frameSize*rows {
		return errors.Errorf("%dx%d is smaller than %d×%d frames of %dpx", b.Dx(), b.Dy(), frames, rows, frameSize)
	}
	return nil
}

func readAsset(path string) ([]byte, error) {
	if path == "" {
		return assetsFS.ReadFile(DefaultSheet)
	}
	if clean := cleanAssetPath(path); clean != "" {
		if b, err := assetsFS.ReadFile(clean); err == nil {
			return b, nil
		}
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "assets: read %q", path)
	}
	return b, nil
}

// cleanAssetPath maps a relative path onto the embedded file system. Absolute
// paths always come from disk.
func cleanAssetPath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return ""
	}
	return strings.TrimPrefix(filepath.ToSlash(path), "assets/")
}
