package iconbake

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg" // Ensure decoders are present
	_ "image/png"
	"math"
	"os"

	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
)

type Texture interface {
	Sample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	tex, err := NewTextureFromBytes(data)
	if err != nil {
		return nil, fmt.Errorf("texture %s: %w", path, err)
	}
	return tex, nil
}

// NewTextureFromBytes sniffs the content before decoding so a mesh or
// text file given as a texture fails with a clear message.
func NewTextureFromBytes(data []byte) (Texture, error) {
	if !filetype.IsImage(data) {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("not an image (detected %q)", kind.MIME.Value)
	}
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

// Sample returns the nearest texel. UVs wrap and V points up.
func (t *ImageTexture) Sample(u, v float64) Color {
	u = u - math.Floor(u)
	v = v - math.Floor(v)
	v = 1 - v

	b := t.Image.Bounds()
	x := ClampInt(int(u*float64(t.Width)), 0, t.Width-1)
	y := ClampInt(int(v*float64(t.Height)), 0, t.Height-1)

	return MakeColor(t.Image.At(b.Min.X+x, b.Min.Y+y))
}
