//go:build cgo

package sdlrender

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sdlgamepad/examples/render"
)

// newSoftwareDevice renders into an RGBA surface, so no window or video
// driver is needed.
func newSoftwareDevice(t *testing.T, w, h int) (*sdl.Surface, *Device) {
	t.Helper()

	target, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, uint32(sdl.PIXELFORMAT_RGBA32))
	require.NoError(t, err)
	t.Cleanup(target.Free)

	renderer, err := sdl.CreateSoftwareRenderer(target)
	require.NoError(t, err)
	t.Cleanup(func() { renderer.Destroy() })

	require.NoError(t, renderer.SetDrawColor(0, 0, 0, 0))
	require.NoError(t, renderer.Clear())

	return target, NewDevice(renderer)
}

func pixelAt(target *sdl.Surface, x, y int) color.NRGBA {
	pix := target.Pixels()
	offset := y*int(target.Pitch) + x*4
	return color.NRGBA{R: pix[offset], G: pix[offset+1], B: pix[offset+2], A: pix[offset+3]}
}

func createOpaque(t *testing.T, d *Device, pixels *image.NRGBA) render.Handle {
	t.Helper()

	h, err := d.CreateTexture(pixels)
	require.NoError(t, err)
	t.Cleanup(func() { h.Destroy() })

	require.NoError(t, h.SetBlendMode(render.BlendNone))
	return h
}

func TestCreateTextureCopiesRows(t *testing.T) {
	target, d := newSoftwareDevice(t, 3, 2)

	src := image.NewNRGBA(image.Rect(0, 0, 5, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			src.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 40), G: uint8(y * 60), B: uint8(10 + x + y), A: 0xFF})
		}
	}
	// a sub-image starts mid-row and has a stride wider than its width
	sub := src.SubImage(image.Rect(1, 1, 4, 3)).(*image.NRGBA)

	h := createOpaque(t, d, sub)
	require.NoError(t, d.Copy(h, nil, image.Rect(0, 0, 3, 2), 0, nil, render.FlipNone))
	d.renderer.Present()

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, src.NRGBAAt(x+1, y+1), pixelAt(target, x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestCopyClipAndFlip(t *testing.T) {
	red := color.NRGBA{R: 0xFF, A: 0xFF}
	green := color.NRGBA{G: 0xFF, A: 0xFF}
	blue := color.NRGBA{B: 0xFF, A: 0xFF}

	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, red)
	src.SetNRGBA(1, 0, green)
	src.SetNRGBA(2, 0, blue)

	t.Run("clip", func(t *testing.T) {
		target, d := newSoftwareDevice(t, 2, 1)
		h := createOpaque(t, d, src)

		clip := image.Rect(1, 0, 3, 1)
		require.NoError(t, d.Copy(h, &clip, image.Rect(0, 0, 2, 1), 0, nil, render.FlipNone))
		d.renderer.Present()

		assert.Equal(t, green, pixelAt(target, 0, 0))
		assert.Equal(t, blue, pixelAt(target, 1, 0))
	})

	t.Run("horizontal flip", func(t *testing.T) {
		target, d := newSoftwareDevice(t, 3, 1)
		h := createOpaque(t, d, src)

		require.NoError(t, d.Copy(h, nil, image.Rect(0, 0, 3, 1), 0, nil, render.FlipHorizontal))
		d.renderer.Present()

		assert.Equal(t, blue, pixelAt(target, 0, 0))
		assert.Equal(t, green, pixelAt(target, 1, 0))
		assert.Equal(t, red, pixelAt(target, 2, 0))
	})
}

func TestBlendModeMapping(t *testing.T) {
	_, d := newSoftwareDevice(t, 1, 1)
	h, err := d.CreateTexture(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	defer h.Destroy()

	texture := h.(*sdlTexture).texture
	cases := map[render.BlendMode]sdl.BlendMode{
		render.BlendNone:     sdl.BLENDMODE_NONE,
		render.BlendAlpha:    sdl.BLENDMODE_BLEND,
		render.BlendAdditive: sdl.BLENDMODE_ADD,
		render.BlendModulate: sdl.BLENDMODE_MOD,
	}
	for mode, want := range cases {
		require.NoError(t, h.SetBlendMode(mode))
		got, err := texture.GetBlendMode()
		require.NoError(t, err)
		assert.Equal(t, want, got, "blend mode %d", mode)
	}

	assert.Error(t, h.SetBlendMode(render.BlendMode(99)))
}

func TestModulation(t *testing.T) {
	_, d := newSoftwareDevice(t, 1, 1)
	h, err := d.CreateTexture(image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	require.NoError(t, err)
	defer h.Destroy()

	require.NoError(t, h.SetColorMod(10, 20, 30))
	require.NoError(t, h.SetAlphaMod(40))

	texture := h.(*sdlTexture).texture
	r, g, b, err := texture.GetColorMod()
	require.NoError(t, err)
	assert.Equal(t, [3]uint8{10, 20, 30}, [3]uint8{r, g, b})

	a, err := texture.GetAlphaMod()
	require.NoError(t, err)
	assert.Equal(t, uint8(40), a)
}

type foreignHandle struct {
	render.Handle
}

func TestDeviceErrors(t *testing.T) {
	_, d := newSoftwareDevice(t, 1, 1)

	_, err := d.CreateTexture(image.NewNRGBA(image.Rect(0, 0, 0, 4)))
	assert.Error(t, err)

	err = d.Copy(foreignHandle{}, nil, image.Rect(0, 0, 1, 1), 0, nil, render.FlipNone)
	assert.Error(t, err)
}
