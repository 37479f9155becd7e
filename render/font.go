package render

import (
	"image"
	"image/color"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

var ErrZeroWidthText = errors.New("text has zero width")

// Font is a TrueType/OpenType face at a fixed point size.
type Font struct {
	face font.Face
}

func OpenFont(path string, size float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load font %s", path)
	}

	f, err := ParseFont(data, size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load font %s", path)
	}
	return f, nil
}

func ParseFont(data []byte, size float64) (*Font, error) {
	if size <= 0 {
		return nil, errors.Newf("invalid font size %g", size)
	}

	parsed, err := opentype.Parse(data)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse font")
	}

	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, errors.Wrap(err, "could not create font face")
	}

	return &Font{face: face}, nil
}

// RenderText rasterises text on a transparent background. The image covers
// the text's advance and the face's ascent and descent, widened to fit any
// glyph ink that overhangs them.
func (f *Font) RenderText(text string, c color.Color) (*image.NRGBA, error) {
	bounds, advance := font.BoundString(f.face, text)
	metrics := f.face.Metrics()

	left := 0
	if x := bounds.Min.X.Floor(); x < 0 {
		left = x
	}
	right := advance.Ceil()
	if x := bounds.Max.X.Ceil(); x > right {
		right = x
	}
	if right-left <= 0 {
		return nil, ErrZeroWidthText
	}

	top := -metrics.Ascent.Ceil()
	if y := bounds.Min.Y.Floor(); y < top {
		top = y
	}
	bottom := metrics.Descent.Ceil()
	if y := bounds.Max.Y.Ceil(); y > bottom {
		bottom = y
	}

	img := image.NewNRGBA(image.Rect(0, 0, right-left, bottom-top))
	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: f.face,
		Dot:  fixed.P(-left, -top),
	}
	drawer.DrawString(text)

	return img, nil
}

func (f *Font) Close() error {
	return f.face.Close()
}
