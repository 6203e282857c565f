package render

import (
	"image"
	"image/color"
)

// tightBounds returns the smallest rectangle holding every pixel that differs
// from bg, grown by pad on each side and clipped to the image. An image with
// nothing drawn on it keeps its full bounds.
func tightBounds(img image.Image, bg color.Color, pad int) image.Rectangle {
	bounds := img.Bounds()
	wr, wg, wb, wa := bg.RGBA()
	differs := func(x, y int) bool {
		r, g, b, a := img.At(x, y).RGBA()
		return r != wr || g != wg || b != wb || a != wa
	}
	if rgba, ok := img.(*image.RGBA); ok {
		want := color.RGBAModel.Convert(bg).(color.RGBA)
		differs = func(x, y int) bool {
			return rgba.RGBAAt(x, y) != want
		}
	}

	var found image.Rectangle
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if differs(x, y) {
				found = found.Union(image.Rect(x, y, x+1, y+1))
			}
		}
	}
	if found.Empty() {
		return bounds
	}
	return found.Inset(-pad).Intersect(bounds)
}

type subImager interface {
	SubImage(r image.Rectangle) image.Image
}

func crop(img image.Image, r image.Rectangle) image.Image {
	if s, ok := img.(subImager); ok {
		return s.SubImage(r)
	}
	return img
}
