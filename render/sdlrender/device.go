// Package sdlrender implements render.Device on an SDL 2D renderer.
package sdlrender

import (
	"image"

	"github.com/cockroachdb/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sdlgamepad/examples/render"
)

// Device draws through an SDL 2D renderer. All calls must come from the
// thread that created the renderer.
type Device struct {
	renderer *sdl.Renderer
}

func NewDevice(renderer *sdl.Renderer) *Device {
	return &Device{renderer: renderer}
}

type sdlTexture struct {
	texture *sdl.Texture
}

func (d *Device) CreateTexture(pixels *image.NRGBA) (render.Handle, error) {
	size := pixels.Rect.Size()
	if size.X <= 0 || size.Y <= 0 {
		return nil, errors.Newf("cannot create a %dx%d texture", size.X, size.Y)
	}

	surface, err := sdl.CreateRGBSurfaceWithFormat(0, int32(size.X), int32(size.Y), 32, uint32(sdl.PIXELFORMAT_RGBA32))
	if err != nil {
		return nil, errors.Wrap(err, "could not create staging surface")
	}
	defer surface.Free()

	err = surface.Lock()
	if err != nil {
		return nil, errors.Wrap(err, "could not lock staging surface")
	}
	dst := surface.Pixels()
	rowBytes := size.X * 4
	for y := 0; y < size.Y; y++ {
		srcOffset := pixels.PixOffset(pixels.Rect.Min.X, pixels.Rect.Min.Y+y)
		copy(dst[y*int(surface.Pitch):y*int(surface.Pitch)+rowBytes], pixels.Pix[srcOffset:srcOffset+rowBytes])
	}
	surface.Unlock()

	texture, err := d.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, errors.Wrap(err, "could not create texture from surface")
	}

	return &sdlTexture{texture: texture}, nil
}

func (d *Device) Copy(h render.Handle, src *image.Rectangle, dst image.Rectangle, angle float64, center *image.Point, flip render.Flip) error {
	t, ok := h.(*sdlTexture)
	if !ok {
		return errors.Newf("texture handle %T was not created by an SDL device", h)
	}

	var srcRect *sdl.Rect
	if src != nil {
		srcRect = toSDLRect(*src)
	}

	var sdlCenter *sdl.Point
	if center != nil {
		sdlCenter = &sdl.Point{X: int32(center.X), Y: int32(center.Y)}
	}

	return d.renderer.CopyEx(t.texture, srcRect, toSDLRect(dst), angle, sdlCenter, sdl.RendererFlip(flip))
}

func toSDLRect(r image.Rectangle) *sdl.Rect {
	return &sdl.Rect{
		X: int32(r.Min.X),
		Y: int32(r.Min.Y),
		W: int32(r.Dx()),
		H: int32(r.Dy()),
	}
}

func (t *sdlTexture) SetColorMod(r, g, b uint8) error {
	return t.texture.SetColorMod(r, g, b)
}

func (t *sdlTexture) SetBlendMode(mode render.BlendMode) error {
	var sdlMode sdl.BlendMode
	switch mode {
	case render.BlendNone:
		sdlMode = sdl.BLENDMODE_NONE
	case render.BlendAlpha:
		sdlMode = sdl.BLENDMODE_BLEND
	case render.BlendAdditive:
		sdlMode = sdl.BLENDMODE_ADD
	case render.BlendModulate:
		sdlMode = sdl.BLENDMODE_MOD
	default:
		return errors.Newf("unknown blend mode %d", mode)
	}
	return t.texture.SetBlendMode(sdlMode)
}

func (t *sdlTexture) SetAlphaMod(a uint8) error {
	return t.texture.SetAlphaMod(a)
}

func (t *sdlTexture) Destroy() error {
	return t.texture.Destroy()
}

var _ render.Device = (*Device)(nil)
