package texture

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/gates/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodePNG(t *testing.T, w, h int, c color.RGBA) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestNewTextureFromColor(t *testing.T) {
	tex := NewTextureFromColor(common.White)

	assert.NotZero(t, tex.ID())
	assert.Equal(t, uint32(1), tex.Width())
	assert.Equal(t, uint32(1), tex.Height())
	assert.Equal(t, []byte{255, 255, 255, 255}, tex.Pixels())
}

func TestTextureIDsAreUnique(t *testing.T) {
	a := NewTextureFromColor(common.White)
	b := NewTextureFromColor(common.White)

	assert.NotEqual(t, a.ID(), b.ID())
}

func TestNewTextureFromImageOffsetBounds(t *testing.T) {
	src := image.NewRGBA(image.Rect(10, 10, 12, 13))
	src.SetRGBA(10, 10, color.RGBA{R: 1, G: 2, B: 3, A: 4})

	tex := NewTextureFromImage("offset", src)

	assert.Equal(t, uint32(2), tex.Width())
	assert.Equal(t, uint32(3), tex.Height())
	assert.Len(t, tex.Pixels(), 2*3*4)
	assert.Equal(t, []byte{1, 2, 3, 4}, tex.Pixels()[:4])

	staging := tex.StagingData()
	assert.Equal(t, tex.Width(), staging.Width)
	assert.Equal(t, tex.Height(), staging.Height)
}

func TestNewTextureFromBytes(t *testing.T) {
	data := encodePNG(t, 4, 2, color.RGBA{R: 255, A: 255})

	tex, err := NewTextureFromBytes("red", data)
	require.NoError(t, err)

	assert.Equal(t, "red", tex.Label())
	assert.Equal(t, uint32(4), tex.Width())
	assert.Equal(t, uint32(2), tex.Height())
	assert.Equal(t, []byte{255, 0, 0, 255}, tex.Pixels()[:4])
}

func TestNewTextureFromBytesUnsupported(t *testing.T) {
	_, err := NewTextureFromBytes("junk", []byte("definitely not an image"))

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestNewTextureFromFileMissing(t *testing.T) {
	_, err := NewTextureFromFile(filepath.Join(t.TempDir(), "missing.png"))

	assert.Error(t, err)
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	paths := make([]string, 0, 5)
	for i := 1; i <= 5; i++ {
		p := filepath.Join(dir, string(rune('a'+i))+".png")
		require.NoError(t, os.WriteFile(p, encodePNG(t, i, 1, color.RGBA{G: 255, A: 255}), 0o644))
		paths = append(paths, p)
	}

	textures, err := LoadFiles(paths, 2)
	require.NoError(t, err)
	require.Len(t, textures, 5)
	for i, tex := range textures {
		require.NotNil(t, tex)
		assert.Equal(t, uint32(i+1), tex.Width())
		assert.Equal(t, paths[i], tex.Label())
	}
}

func TestLoadFilesPartialFailure(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.png")
	require.NoError(t, os.WriteFile(good, encodePNG(t, 1, 1, color.RGBA{A: 255}), 0o644))
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))

	textures, err := LoadFiles([]string{good, bad}, 0)

	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	require.Len(t, textures, 2)
	assert.NotNil(t, textures[0])
	assert.Nil(t, textures[1])
}

func TestLoadFilesEmpty(t *testing.T) {
	textures, err := LoadFiles(nil, 1)

	assert.NoError(t, err)
	assert.Empty(t, textures)
}
