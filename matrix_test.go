package daynight

import (
	"errors"
	"image"
	"math"
	"testing"
)

func TestMatrix(t *testing.T) {
	a := NewRGB(image.Rect(0, 0, 2, 1))
	copy(a.Pix, []uint8{0, 51, 102, 153, 204, 255})
	b := NewRGB(image.Rect(0, 0, 2, 1))

	x, y, err := Matrix([]EncodedImage{{a, 1}, {b, 0}})
	if err != nil {
		t.Fatal(err)
	}
	if r, c := x.Dims(); r != 2 || c != 6 {
		t.Fatalf("x has dims %dx%d, want 2x6", r, c)
	}
	for j, want := range []float64{0, 0.2, 0.4, 0.6, 0.8, 1} {
		if got := x.At(0, j); math.Abs(got-want) > 1e-12 {
			t.Errorf("x[0][%d] = %v, want %v", j, got, want)
		}
		if got := x.At(1, j); got != 0 {
			t.Errorf("x[1][%d] = %v, want 0", j, got)
		}
	}
	if y.AtVec(0) != 1 || y.AtVec(1) != 0 {
		t.Errorf("y = [%v %v], want [1 0]", y.AtVec(0), y.AtVec(1))
	}
}

func TestMatrixFromStandardized(t *testing.T) {
	s := DefaultStandardizer()
	s.Width, s.Height = 8, 6
	encoded, err := s.Standardize([]LabeledImage{
		{Image: uniformNRGBA(20, 10, nrgbaGray(128)), Label: Day},
		{Image: uniformNRGBA(5, 5, nrgbaGray(0)), Label: Night},
		{Image: uniformNRGBA(9, 9, nrgbaGray(255)), Label: Night},
	})
	if err != nil {
		t.Fatal(err)
	}

	x, y, err := Matrix(encoded)
	if err != nil {
		t.Fatal(err)
	}
	if r, c := x.Dims(); r != 3 || c != 8*6*3 {
		t.Fatalf("x has dims %dx%d", r, c)
	}
	if y.Len() != 3 || y.AtVec(0) != 1 {
		t.Errorf("unexpected labels: %v", y.RawVector().Data)
	}
	if x.At(2, 0) != 1 || x.At(1, 0) != 0 {
		t.Errorf("unexpected samples: %v, %v", x.At(2, 0), x.At(1, 0))
	}
}

func TestMatrixErrors(t *testing.T) {
	if _, _, err := Matrix(nil); !errors.Is(err, ErrNoImages) {
		t.Errorf("Matrix(nil) error = %v, want ErrNoImages", err)
	}

	a := NewRGB(image.Rect(0, 0, 2, 2))
	b := NewRGB(image.Rect(0, 0, 3, 2))
	if _, _, err := Matrix([]EncodedImage{{a, 1}, {b, 0}}); !errors.Is(err, ErrShapeMismatch) {
		t.Errorf("error = %v, want ErrShapeMismatch", err)
	}
	if _, _, err := Matrix([]EncodedImage{{a, 1}, {nil, 0}}); !errors.Is(err, ErrEmptyImage) {
		t.Errorf("error = %v, want ErrEmptyImage", err)
	}
}
