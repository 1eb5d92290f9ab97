package imgtools

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/loyer/imgtools/utils"
)

// Filled passed as thickness makes DrawRectangle fill the rectangle.
const Filled = -1

// DrawRectangle draws the outline of the rectangle spanned by the corners p1
// and p2 directly onto img and returns img.
//
// Both corners lie on the outline and may be given in any order. Every side
// is a band of thickness pixels centred on the boundary, extending
// thickness/2 pixels outwards. A thickness of 0 draws a one pixel outline;
// a negative thickness fills the rectangle. Drawing is clipped to the image.
func DrawRectangle(img draw.Image, p1, p2 image.Point, c color.Color, thickness int) draw.Image {
	bounds := img.Bounds()
	src := image.NewUniform(c)

	for _, r := range strokeRects(p1, p2, thickness) {
		r = r.Intersect(bounds)
		if r.Empty() {
			continue
		}
		draw.Draw(img, r, src, image.Point{}, draw.Src)
	}
	return img
}

// strokeRects returns the half-open rectangles covering the outline
// footprint. The rectangles do not overlap.
func strokeRects(p1, p2 image.Point, thickness int) []image.Rectangle {
	x0, x1 := utils.Min(p1.X, p2.X), utils.Max(p1.X, p2.X)
	y0, y1 := utils.Min(p1.Y, p2.Y), utils.Max(p1.Y, p2.Y)

	if thickness < 0 {
		return []image.Rectangle{image.Rect(x0, y0, x1+1, y1+1)}
	}
	if thickness == 0 {
		thickness = 1
	}

	h := thickness / 2
	outer := image.Rect(x0-h, y0-h, x1-h+thickness, y1-h+thickness)
	// image.Rect would swap inverted coordinates.
	inner := image.Rectangle{
		Min: image.Pt(x0-h+thickness, y0-h+thickness),
		Max: image.Pt(x1-h, y1-h),
	}
	if inner.Empty() {
		return []image.Rectangle{outer}
	}

	return []image.Rectangle{
		image.Rect(outer.Min.X, outer.Min.Y, outer.Max.X, inner.Min.Y), // top
		image.Rect(outer.Min.X, inner.Max.Y, outer.Max.X, outer.Max.Y), // bottom
		image.Rect(outer.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y), // left
		image.Rect(inner.Max.X, inner.Min.Y, outer.Max.X, inner.Max.Y), // right
	}
}
