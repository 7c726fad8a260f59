package daynight

import (
	"errors"
	"fmt"
)

// Label is the ground-truth class of an image, named after the subdirectory it was loaded from.
type Label string

// The known labels.
const (
	Day   Label = "day"
	Night Label = "night"
)

// Labels lists the known labels in the order in which their subdirectories are loaded.
var Labels = []Label{Day, Night}

// ErrUnknownLabel is returned by EncodeStrict for labels other than Day and Night.
var ErrUnknownLabel = errors.New("unknown label")

// Valid reports whether l is one of the known labels.
func (l Label) Valid() bool {
	return l == Day || l == Night
}

// Encode maps the label to its numeric class: 1 for Day and 0 for Night.
//
// Any other value is also encoded as 0. Use EncodeStrict to reject unknown labels instead.
func Encode(label Label) int {
	if label == Day {
		return 1
	}
	return 0
}

// EncodeStrict works like Encode, except that labels other than Day and Night result in an error
// wrapping ErrUnknownLabel.
func EncodeStrict(label Label) (int, error) {
	if !label.Valid() {
		return 0, fmt.Errorf("%w: %q", ErrUnknownLabel, string(label))
	}
	return Encode(label), nil
}
