package render

import (
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/cockroachdb/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// DefaultColorKey is the colour made transparent when images are loaded.
var DefaultColorKey = color.NRGBA{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF}

// DecodeFile decodes the image at path and applies key to it. A nil key leaves
// the image opaque where it was opaque.
func DecodeFile(path string, key color.Color) (*image.NRGBA, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to load image %s", path)
	}
	defer file.Close()

	decoded, _, err := image.Decode(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode image %s", path)
	}

	return ChromaKey(decoded, key), nil
}

// ChromaKey returns a copy of img, anchored at the origin, in which every
// pixel whose colour matches key (alpha ignored) is fully transparent.
func ChromaKey(img image.Image, key color.Color) *image.NRGBA {
	bounds := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(out, out.Rect, img, bounds.Min, draw.Src)

	if key == nil {
		return out
	}

	k := color.NRGBAModel.Convert(key).(color.NRGBA)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i] == k.R && out.Pix[i+1] == k.G && out.Pix[i+2] == k.B {
			out.Pix[i], out.Pix[i+1], out.Pix[i+2], out.Pix[i+3] = 0, 0, 0, 0
		}
	}
	return out
}
