package daynight

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// The size of standardized images.
const (
	StandardWidth  = 1100
	StandardHeight = 600
)

var (
	// ErrInvalidSize is returned for target dimensions that are not positive.
	ErrInvalidSize = errors.New("invalid target size")
	// ErrEmptyImage is returned for nil images and images with empty bounds.
	ErrEmptyImage = errors.New("empty image")
)

// EncodedImage is a standardized image with its numeric class (1 for day, 0 for night).
type EncodedImage struct {
	Image *RGB
	Label int
}

// Standardizer resizes images to a fixed size and RGB layout and encodes their labels.
type Standardizer struct {
	Width  int
	Height int

	Downsample imaging.ResampleFilter // Used when the target area is smaller than the source.
	Upsample   imaging.ResampleFilter // Used otherwise.

	Strict bool // Fail on unknown labels instead of encoding them as 0.
}

// DefaultStandardizer returns the standardizer used by Standardize: 1100x600 pixels, an area
// averaging box filter when shrinking and a linear filter when enlarging.
func DefaultStandardizer() Standardizer {
	return Standardizer{
		Width:      StandardWidth,
		Height:     StandardHeight,
		Downsample: imaging.Box,
		Upsample:   imaging.Linear,
	}
}

// StandardizeInput converts img to the RGB layout and resizes it to exactly width x height. The
// input image is not modified.
func StandardizeInput(img image.Image, width, height int) (*RGB, error) {
	s := DefaultStandardizer()
	s.Width, s.Height = width, height
	return s.StandardizeInput(img)
}

// StandardizeInput converts img to the RGB layout and resizes it to s.Width x s.Height. Any alpha
// channel is discarded.
func (s Standardizer) StandardizeInput(img image.Image) (*RGB, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.Width, s.Height)
	}
	if img == nil || img.Bounds().Empty() {
		return nil, ErrEmptyImage
	}

	// Work on a copy so that the alpha channel can be dropped before resampling.
	src := imaging.Clone(img)
	if !src.Opaque() {
		dropAlpha(src)
	}

	resized := resizeImage(src, s.Width, s.Height, s.Downsample, s.Upsample)
	return rgbFromNRGBA(resized), nil
}

// Standardize standardizes the images of all pairs to 1100x600 pixels and encodes their labels.
//
// The result has the same length and order as pairs. If any image fails to standardize, no result
// is returned.
func Standardize(pairs []LabeledImage) ([]EncodedImage, error) {
	return DefaultStandardizer().Standardize(pairs)
}

// Standardize applies s.StandardizeInput and label encoding to all pairs. See Standardize.
func (s Standardizer) Standardize(pairs []LabeledImage) ([]EncodedImage, error) {
	encoded := make([]EncodedImage, 0, len(pairs))
	for i, p := range pairs {
		img, err := s.StandardizeInput(p.Image)
		if err != nil {
			return nil, fmt.Errorf("failed to standardize image %d (%q): %w", i, p.Path, err)
		}

		label := Encode(p.Label)
		if s.Strict {
			if label, err = EncodeStrict(p.Label); err != nil {
				return nil, fmt.Errorf("failed to encode image %d (%q): %w", i, p.Path, err)
			}
		}

		encoded = append(encoded, EncodedImage{Image: img, Label: label})
	}

	return encoded, nil
}

// Summary describes a standardized dataset.
type Summary struct {
	Total  int
	Day    int // Images encoded as 1.
	Night  int // Images encoded as 0.
	Width  int // Width of the first image, 0 for an empty dataset.
	Height int // Height of the first image, 0 for an empty dataset.
}

// Summarize counts the encoded classes in data.
func Summarize(data []EncodedImage) Summary {
	s := Summary{Total: len(data)}
	for _, d := range data {
		if d.Label == 1 {
			s.Day++
		} else {
			s.Night++
		}
	}
	if len(data) > 0 && data[0].Image != nil {
		s.Width = data[0].Image.Rect.Dx()
		s.Height = data[0].Image.Rect.Dy()
	}
	return s
}
