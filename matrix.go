package daynight

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNoImages is returned by Matrix for an empty dataset.
	ErrNoImages = errors.New("no images")
	// ErrShapeMismatch is returned by Matrix if the images differ in size.
	ErrShapeMismatch = errors.New("images differ in size")
)

// Matrix flattens the standardized images into the rows of x, with samples scaled to [0, 1] in
// row-major R, G, B order, and returns the labels in y.
func Matrix(data []EncodedImage) (x *mat.Dense, y *mat.VecDense, err error) {
	if len(data) == 0 {
		return nil, nil, ErrNoImages
	}
	if data[0].Image == nil || data[0].Image.Rect.Empty() {
		return nil, nil, fmt.Errorf("image 0: %w", ErrEmptyImage)
	}

	size := data[0].Image.Rect.Size()
	x = mat.NewDense(len(data), size.X*size.Y*3, nil)
	y = mat.NewVecDense(len(data), nil)

	row := make([]float64, size.X*size.Y*3)
	for i, d := range data {
		if d.Image == nil {
			return nil, nil, fmt.Errorf("image %d: %w", i, ErrEmptyImage)
		}
		if d.Image.Rect.Size() != size {
			return nil, nil, fmt.Errorf("%w: image %d is %v, expected %v",
				ErrShapeMismatch, i, d.Image.Rect.Size(), size)
		}

		// Copy one image row at a time, skipping any padding beyond the stride.
		for r := 0; r < size.Y; r++ {
			src := d.Image.Pix[r*d.Image.Stride : r*d.Image.Stride+size.X*3]
			dst := row[r*size.X*3 : (r+1)*size.X*3]
			for j, v := range src {
				dst[j] = float64(v) / 255
			}
		}

		x.SetRow(i, row)
		y.SetVec(i, float64(d.Label))
	}

	return x, y, nil
}
