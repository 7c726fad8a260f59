package daynight

import (
	"image"
	"image/color"
)

// RGB is an in-memory image of 8-bit red, green and blue samples without an alpha channel. It is
// the layout of all standardized images.
type RGB struct {
	// Pix holds the samples in R, G, B order. The pixel at (x, y) starts at
	// Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewRGB returns a new RGB image with the given bounds.
func NewRGB(r image.Rectangle) *RGB {
	w, h := r.Dx(), r.Dy()
	return &RGB{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// Channels is the number of samples per pixel.
func (p *RGB) Channels() int {
	return 3
}

// ColorModel implements image.Image.
func (p *RGB) ColorModel() color.Model {
	return color.RGBAModel
}

// Bounds implements image.Image.
func (p *RGB) Bounds() image.Rectangle {
	return p.Rect
}

// At implements image.Image. All pixels are opaque.
func (p *RGB) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	return color.RGBA{R: p.Pix[i], G: p.Pix[i+1], B: p.Pix[i+2], A: 0xff}
}

// PixOffset returns the index of the first element of Pix that corresponds to the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// rgbFromNRGBA copies the color samples of img and discards its alpha channel.
func rgbFromNRGBA(img *image.NRGBA) *RGB {
	b := img.Bounds()
	dst := NewRGB(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := 0; y < b.Dy(); y++ {
		src := img.Pix[y*img.Stride : y*img.Stride+4*b.Dx()]
		row := dst.Pix[y*dst.Stride : (y+1)*dst.Stride]
		for i, j := 0, 0; i < len(src); i, j = i+4, j+3 {
			row[j] = src[i]
			row[j+1] = src[i+1]
			row[j+2] = src[i+2]
		}
	}
	return dst
}

// dropAlpha makes every pixel of img opaque while leaving its color samples untouched.
func dropAlpha(img *image.NRGBA) {
	b := img.Bounds()
	for y := 0; y < b.Dy(); y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+4*b.Dx()]
		for i := 3; i < len(row); i += 4 {
			row[i] = 0xff
		}
	}
}
