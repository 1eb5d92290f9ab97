package imgtools

import (
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/loyer/imgtools/utils"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// jpegQuality is the quality used for every JPEG this package writes.
const jpegQuality = 100

// Load decodes the image file found at path. The result is always a color
// buffer with its origin at (0, 0): gray and paletted files are expanded.
// EXIF orientation is applied.
func Load(path string) (*image.NRGBA, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	if !strings.Contains(ctype, "image") {
		return nil, &DecodeError{Path: path, Err: errors.Wrap(errNotAnImage, ctype)}
	}

	src, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	img := imaging.Clone(src)

	logger().Debug("image loaded", "path", path, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}

// Decode reads an image from r. It behaves like Load without the file
// content sniffing.
func Decode(r io.Reader) (*image.NRGBA, error) {
	src, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, &DecodeError{Err: err}
	}
	return imaging.Clone(src), nil
}

// Save encodes img in the format given by the extension of path and writes it.
//
// Failures are reported as *EncodeError. Callers coming from a boolean
// "written or not" contract should treat a nil error as true.
func Save(path string, img image.Image) error {
	if _, err := FormatFromPath(path); err != nil {
		return &EncodeError{Path: path, Err: err}
	}
	if err := imaging.Save(img, path, imaging.JPEGQuality(jpegQuality)); err != nil {
		return &EncodeError{Path: path, Err: err}
	}

	logger().Debug("image saved", "path", path)
	return nil
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	if err := imaging.Encode(w, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return &EncodeError{Err: err}
	}
	return nil
}

// FormatFromPath returns the image format matching the extension of path.
func FormatFromPath(path string) (imaging.Format, error) {
	f, err := imaging.FormatFromFilename(path)
	if err != nil {
		return 0, errors.Wrapf(errUnsupportedExt, "extension %q", filepath.Ext(path))
	}
	return f, nil
}

// Channels reports the number of channels of img: 1 for gray images,
// 3 for opaque color images and 4 for color images with transparency.
func Channels(img image.Image) int {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return 1
	}
	if o, ok := img.(interface{ Opaque() bool }); ok && !o.Opaque() {
		return 4
	}
	return 3
}

// Depth reports the number of bits per channel of img.
func Depth(img image.Image) int {
	switch img.(type) {
	case *image.Gray16, *image.RGBA64, *image.NRGBA64:
		return 16
	}
	return 8
}
