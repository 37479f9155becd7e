package render

import (
	"image"
	"image/color"

	"github.com/cockroachdb/errors"
)

// Texture owns at most one image uploaded to a Device, along with its pixel
// dimensions. The zero dimensions mean nothing is loaded. A Texture must not
// be copied; pass it by pointer to hand ownership along. Create it with
// NewTexture; a Texture without a Device refuses to load.
type Texture struct {
	device Device
	handle Handle

	width  int
	height int
}

var ErrNoDevice = errors.New("texture has no rendering device")

func NewTexture(device Device) *Texture {
	return &Texture{device: device}
}

// LoadFromFile replaces the current image with the file at path, with pixels
// matching DefaultColorKey made transparent. On failure the texture is left
// empty.
func (t *Texture) LoadFromFile(path string) error {
	err := t.Free()
	if err != nil {
		return err
	}

	pixels, err := DecodeFile(path, DefaultColorKey)
	if err != nil {
		return err
	}

	err = t.upload(pixels)
	if err != nil {
		return errors.Wrapf(err, "unable to create texture from %s", path)
	}
	return nil
}

// LoadFromImage replaces the current image with pixels, which is uploaded as is.
func (t *Texture) LoadFromImage(pixels *image.NRGBA) error {
	err := t.Free()
	if err != nil {
		return err
	}

	if pixels == nil {
		return errors.New("no image to upload")
	}
	return t.upload(pixels)
}

// LoadFromRenderedText replaces the current image with text drawn in c.
func (t *Texture) LoadFromRenderedText(f *Font, text string, c color.Color) error {
	err := t.Free()
	if err != nil {
		return err
	}

	if f == nil {
		return errors.New("unable to render text surface: no font loaded")
	}

	pixels, err := f.RenderText(text, c)
	if err != nil {
		return errors.Wrap(err, "unable to render text surface")
	}

	err = t.upload(pixels)
	if err != nil {
		return errors.Wrap(err, "unable to create texture from rendered text")
	}
	return nil
}

func (t *Texture) upload(pixels *image.NRGBA) error {
	if t.device == nil {
		return ErrNoDevice
	}

	handle, err := t.device.CreateTexture(pixels)
	if err != nil {
		return err
	}

	size := pixels.Rect.Size()
	t.handle = handle
	t.width = size.X
	t.height = size.Y
	return nil
}

// Free releases the image, if there is one. It is safe to call repeatedly.
// The texture is empty afterwards even when the device reports an error.
func (t *Texture) Free() error {
	if t.handle == nil {
		return nil
	}

	err := t.handle.Destroy()
	t.handle = nil
	t.width = 0
	t.height = 0
	if err != nil {
		return errors.Wrap(err, "unable to destroy texture")
	}
	return nil
}

func (t *Texture) Loaded() bool {
	return t.handle != nil
}

func (t *Texture) SetColor(r, g, b uint8) error {
	if t.handle == nil {
		return nil
	}
	return t.handle.SetColorMod(r, g, b)
}

func (t *Texture) SetBlendMode(mode BlendMode) error {
	if t.handle == nil {
		return nil
	}
	return t.handle.SetBlendMode(mode)
}

func (t *Texture) SetAlpha(a uint8) error {
	if t.handle == nil {
		return nil
	}
	return t.handle.SetAlphaMod(a)
}

// Render draws the whole texture unrotated with its top-left corner at (x, y).
func (t *Texture) Render(x, y int) error {
	return t.RenderEx(x, y, nil, 0, nil, FlipNone)
}

// RenderEx draws the clip region of the texture (all of it when clip is nil)
// at (x, y), rotated clockwise by angle degrees around center, which is
// relative to (x, y) and defaults to the middle of the drawn region.
func (t *Texture) RenderEx(x, y int, clip *image.Rectangle, angle float64, center *image.Point, flip Flip) error {
	if t.handle == nil {
		return nil
	}

	w, h := t.width, t.height
	if clip != nil {
		w, h = clip.Dx(), clip.Dy()
	}

	return t.device.Copy(t.handle, clip, image.Rect(x, y, x+w, y+h), angle, center, flip)
}

func (t *Texture) Width() int {
	return t.width
}

func (t *Texture) Height() int {
	return t.height
}
