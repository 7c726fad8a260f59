package daynight

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	// Decoders beyond the JPEG, PNG and GIF support pulled in by imaging.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// resizeImage resamples img to exactly width x height, selecting the filter based on the direction
// of the rescaling operation.
func resizeImage(img image.Image, width, height int,
		downsamplingFilter, upsamplingFilter imaging.ResampleFilter) *image.NRGBA {

	imgBounds := img.Bounds()

	var filter imaging.ResampleFilter
	if width*height < imgBounds.Dx()*imgBounds.Dy() {
		filter = downsamplingFilter
	} else {
		filter = upsamplingFilter
	}

	return imaging.Resize(img, width, height, filter)
}

// loadImage reads and decodes the image at path, applying the EXIF orientation if present.
func loadImage(path string) (image.Image, error) {
	return imaging.Open(path, imaging.AutoOrientation(true))
}

// ParseFilter returns the resampling filter with the given name. The known names are nearest, box,
// linear, gaussian and lanczos.
func ParseFilter(name string) (imaging.ResampleFilter, error) {
	switch name {
	case "nearest":
		return imaging.NearestNeighbor, nil
	case "box":
		return imaging.Box, nil
	case "linear":
		return imaging.Linear, nil
	case "gaussian":
		return imaging.Gaussian, nil
	case "lanczos":
		return imaging.Lanczos, nil
	}
	return imaging.ResampleFilter{}, fmt.Errorf("unknown resampling filter %q", name)
}
