package texture

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"sync/atomic"

	"github.com/Carmen-Shannon/gates/common"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrUnsupportedFormat is returned when image data is not in a registered format
// (png, jpeg, gif, bmp or webp).
var ErrUnsupportedFormat = errors.New("texture: unsupported image format")

// textureCount hands out texture identities. Zero is never issued so it can mean "no texture".
var textureCount atomic.Uint32

type textureImpl struct {
	id     uint32
	label  string
	width  uint32
	height uint32
	pixels []byte
}

// Texture is a CPU-side RGBA8 image with a process-unique identity.
// GPU backends upload a texture lazily the first time its identity is bound and
// key their GPU resources by ID.
type Texture interface {
	// ID returns the texture's unique identity.
	//
	// Returns:
	//   - uint32: the identity, never zero
	ID() uint32

	// Label returns a human readable name, used for GPU resource labels and logs.
	//
	// Returns:
	//   - string: the label
	Label() string

	// Width returns the width of the texture in pixels.
	//
	// Returns:
	//   - uint32: width in pixels
	Width() uint32

	// Height returns the height of the texture in pixels.
	//
	// Returns:
	//   - uint32: height in pixels
	Height() uint32

	// Pixels returns the raw pixel data, 4 bytes per pixel in RGBA order, row-major.
	//
	// Returns:
	//   - []byte: the pixel data
	Pixels() []byte

	// StagingData returns the pixel data and dimensions packaged for GPU upload.
	//
	// Returns:
	//   - common.TextureStagingData: the staging data
	StagingData() common.TextureStagingData
}

var _ Texture = &textureImpl{}

func newTexture(label string, width, height uint32, pixels []byte) *textureImpl {
	return &textureImpl{
		id:     textureCount.Add(1),
		label:  label,
		width:  width,
		height: height,
		pixels: pixels,
	}
}

// NewTextureFromColor creates a 1x1 texture filled with a single color.
// The renderer's reserved white texture is built this way.
//
// Parameters:
//   - c: the fill color
//
// Returns:
//   - Texture: the new texture
func NewTextureFromColor(c common.Color) Texture {
	px := c.Bytes()
	return newTexture(fmt.Sprintf("color(%d,%d,%d,%d)", px[0], px[1], px[2], px[3]), 1, 1, px[:])
}

// NewTextureFromImage converts any image.Image into an RGBA8 texture.
//
// Parameters:
//   - label: a human readable name for the texture
//   - img: the source image
//
// Returns:
//   - Texture: the new texture
func NewTextureFromImage(label string, img image.Image) Texture {
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, bounds.Min, draw.Src)
	return newTexture(label, uint32(bounds.Dx()), uint32(bounds.Dy()), rgba.Pix)
}

// Decode reads an encoded image from r and converts it into a texture.
//
// Parameters:
//   - label: a human readable name for the texture
//   - r: the encoded image data
//
// Returns:
//   - Texture: the decoded texture
//   - error: ErrUnsupportedFormat for unknown formats, or the decoder's error
func Decode(label string, r io.Reader) (Texture, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, fmt.Errorf("%s: %w", label, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("failed to decode texture %s: %w", label, err)
	}
	return NewTextureFromImage(label, img), nil
}

// NewTextureFromBytes decodes an in-memory encoded image.
func NewTextureFromBytes(label string, data []byte) (Texture, error) {
	return Decode(label, bytes.NewReader(data))
}

// NewTextureFromFile loads and decodes an image file.
//
// Parameters:
//   - path: the image file path
//
// Returns:
//   - Texture: the decoded texture
//   - error: an error if the file cannot be opened or decoded
func NewTextureFromFile(path string) (Texture, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open texture file %s: %w", path, err)
	}
	defer file.Close()
	return Decode(path, file)
}

func (t *textureImpl) ID() uint32 {
	return t.id
}

func (t *textureImpl) Label() string {
	return t.label
}

func (t *textureImpl) Width() uint32 {
	return t.width
}

func (t *textureImpl) Height() uint32 {
	return t.height
}

func (t *textureImpl) Pixels() []byte {
	return t.pixels
}

func (t *textureImpl) StagingData() common.TextureStagingData {
	return common.TextureStagingData{
		Pixels: t.pixels,
		Width:  t.width,
		Height: t.height,
	}
}
