// Package render loads images and text into textures and draws them on a
// rendering Device.
package render

import (
	"image"
)

// Flip mirrors a texture while it is drawn. Values can be combined.
type Flip uint32

const (
	FlipNone       Flip = 0
	FlipHorizontal Flip = 1 << 0
	FlipVertical   Flip = 1 << 1
)

type BlendMode int

const (
	BlendNone BlendMode = iota
	BlendAlpha
	BlendAdditive
	BlendModulate
)

// Handle is a texture that lives in the rendering device's memory.
type Handle interface {
	SetColorMod(r, g, b uint8) error
	SetBlendMode(mode BlendMode) error
	SetAlphaMod(a uint8) error
	Destroy() error
}

// Device is the rendering surface textures are uploaded to and drawn on.
// It is owned by the caller; nothing in this package creates or destroys it.
type Device interface {
	CreateTexture(pixels *image.NRGBA) (Handle, error)

	// Copy draws the src region of h (the whole texture when src is nil) into
	// dst, rotated clockwise by angle degrees around center (the centre of dst
	// when nil). It does not present.
	Copy(h Handle, src *image.Rectangle, dst image.Rectangle, angle float64, center *image.Point, flip Flip) error
}
