package imgtools

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
)

// ToGrayscale converts a three channel color image into a new single channel
// image with the same bounds. The input is left untouched.
//
// Gray inputs and inputs with transparent pixels are rejected with a
// *ConversionPreconditionError instead of being converted.
func ToGrayscale(img image.Image) (*image.Gray, error) {
	switch ch := Channels(img); ch {
	case 3:
	case 1:
		return nil, &ConversionPreconditionError{Want: 3, Got: ch, Reason: "the image is already grayscale"}
	default:
		return nil, &ConversionPreconditionError{Want: 3, Got: ch, Reason: "the image has an alpha channel"}
	}

	// bild writes the luminance to R, G and B of an RGBA image.
	rgba := effect.Grayscale(img)
	b, rb := img.Bounds(), rgba.Bounds()
	dst := image.NewGray(b)
	w, h := b.Dx(), b.Dy()
	for y := 0; y < h; y++ {
		src := rgba.Pix[rgba.PixOffset(rb.Min.X, rb.Min.Y+y):]
		row := dst.Pix[y*dst.Stride : y*dst.Stride+w]
		for x := range row {
			row[x] = src[4*x]
		}
	}
	return dst, nil
}
