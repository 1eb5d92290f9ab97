package imgtools

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

var (
	white = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	blue  = color.NRGBA{B: 0xff, A: 0xff}
)

// inFootprint reports whether (x, y) lies on the outline drawn with
// thickness t >= 1 between the corners (x0, y0) and (x1, y1).
func inFootprint(x, y, x0, y0, x1, y1, t int) bool {
	h := t / 2
	band := func(v, edge int) bool { return v >= edge-h && v < edge-h+t }
	within := func(v, lo, hi int) bool { return v >= lo-h && v < hi-h+t }

	onVertical := (band(x, x0) || band(x, x1)) && within(y, y0, y1)
	onHorizontal := (band(y, y0) || band(y, y1)) && within(x, x0, x1)
	return onVertical || onHorizontal
}

func TestDraw_OnlyStrokeFootprintChanges(t *testing.T) {
	p1, p2 := image.Pt(5, 4), image.Pt(20, 15)

	for _, thickness := range []int{1, 2, 3, 4, 7} {
		img := newUniformImage(30, 24, white)
		DrawRectangle(img, p1, p2, blue, thickness)

		for y := 0; y < 24; y++ {
			for x := 0; x < 30; x++ {
				want := white
				if inFootprint(x, y, p1.X, p1.Y, p2.X, p2.Y, thickness) {
					want = blue
				}
				if got := img.NRGBAAt(x, y); got != want {
					t.Fatalf("thickness %d: pixel (%d,%d) is %v, want %v", thickness, x, y, got, want)
				}
			}
		}
	}
}

func TestDraw_OnePixelOutline(t *testing.T) {
	img := newUniformImage(10, 10, white)
	DrawRectangle(img, image.Pt(2, 2), image.Pt(6, 5), blue, 1)

	assert.Equal(t, blue, img.NRGBAAt(2, 2))
	assert.Equal(t, blue, img.NRGBAAt(6, 5))
	assert.Equal(t, blue, img.NRGBAAt(4, 2))
	assert.Equal(t, blue, img.NRGBAAt(2, 4))
	assert.Equal(t, white, img.NRGBAAt(4, 3), "inside")
	assert.Equal(t, white, img.NRGBAAt(7, 5), "outside")
	assert.Equal(t, white, img.NRGBAAt(1, 2), "outside")
}

func TestDraw_ZeroThicknessDrawsOnePixel(t *testing.T) {
	a := newUniformImage(10, 10, white)
	b := newUniformImage(10, 10, white)

	DrawRectangle(a, image.Pt(1, 1), image.Pt(8, 8), blue, 0)
	DrawRectangle(b, image.Pt(1, 1), image.Pt(8, 8), blue, 1)
	assert.Equal(t, b.Pix, a.Pix)
}

func TestDraw_NegativeThicknessFills(t *testing.T) {
	img := newUniformImage(10, 10, white)
	DrawRectangle(img, image.Pt(2, 3), image.Pt(5, 6), blue, Filled)

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			want := white
			if x >= 2 && x <= 5 && y >= 3 && y <= 6 {
				want = blue
			}
			assert.Equal(t, want, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestDraw_CornerOrderDoesNotMatter(t *testing.T) {
	a := newUniformImage(20, 20, white)
	b := newUniformImage(20, 20, white)

	DrawRectangle(a, image.Pt(3, 4), image.Pt(15, 12), blue, 3)
	DrawRectangle(b, image.Pt(15, 4), image.Pt(3, 12), blue, 3)
	assert.Equal(t, a.Pix, b.Pix)
}

func TestDraw_ThickStrokeCoversSmallRectangle(t *testing.T) {
	img := newUniformImage(10, 10, white)
	DrawRectangle(img, image.Pt(4, 4), image.Pt(5, 5), blue, 5)

	// The bands overlap, the whole outer square is painted.
	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			assert.Equal(t, blue, img.NRGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
	assert.Equal(t, white, img.NRGBAAt(1, 1))
}

func TestDraw_ClipsToBounds(t *testing.T) {
	img := newUniformImage(10, 10, white)

	assert.NotPanics(t, func() {
		DrawRectangle(img, image.Pt(-5, -5), image.Pt(20, 20), blue, 3)
		DrawRectangle(img, image.Pt(50, 50), image.Pt(60, 60), blue, 3)
	})
	assert.Equal(t, white, img.NRGBAAt(5, 5))
}

func TestDraw_ReturnsSameBuffer(t *testing.T) {
	img := newUniformImage(10, 10, white)
	out := DrawRectangle(img, image.Pt(1, 1), image.Pt(3, 3), blue, 1)
	assert.Same(t, img, out)
}
