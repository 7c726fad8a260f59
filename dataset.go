// Package daynight loads directories of day and night images, standardizes them to a common size
// and channel layout, and encodes their labels as binary class values.
package daynight

import (
	"fmt"
	"image"
	"log"
	"math/rand"
	"path/filepath"
	"time"
)

// LabeledImage pairs a decoded image with its label.
type LabeledImage struct {
	Image image.Image
	Label Label
	Path  string // The file the image was decoded from.
}

// Loader reads labeled images from a dataset directory with one subdirectory per label.
type Loader struct {
	Labels []Label     // The label subdirectories to read, in order. Defaults to Labels.
	Logger *log.Logger // Receives a message for each skipped file. Nil disables logging.
}

// LoadDataset reads the images in the day and night subdirectories of dir.
//
// Files that cannot be decoded are skipped, as are missing subdirectories. Images of the day
// subdirectory come first; within a subdirectory the images are ordered by file name.
func LoadDataset(dir string) []LabeledImage {
	var l Loader
	return l.Load(dir)
}

// Load reads the images in the label subdirectories of dir. See LoadDataset.
func (l *Loader) Load(dir string) []LabeledImage {
	labels := l.Labels
	if len(labels) == 0 {
		labels = Labels
	}

	data := make([]LabeledImage, 0, 64)
	for _, label := range labels {
		files, err := filesInDir(filepath.Join(dir, string(label)))
		if err != nil {
			l.logf("No images for label %q: %v", label, err)
			continue
		}

		for _, path := range files {
			img, err := loadImage(path)
			if err != nil {
				l.logf("Failed to decode, skipping %q: %v", path, err)
				continue
			}
			data = append(data, LabeledImage{Image: img, Label: label, Path: path})
		}
	}

	l.logf("Loaded %d images from %q", len(data), dir)
	return data
}

func (l *Loader) logf(format string, v ...interface{}) {
	if l.Logger != nil {
		l.Logger.Printf(format, v...)
	}
}

// Count returns the number of images per label.
func Count(data []LabeledImage) map[Label]int {
	counts := make(map[Label]int, len(Labels))
	for _, d := range data {
		counts[d.Label]++
	}
	return counts
}

// Split randomly splits the data into multiple datasets.
//
// The cumulativeSplits specify the cumulative distribution according to which the data is split
// into the returned datasets. They must be non-decreasing and end at 100. A nil rng is replaced by
// one seeded with the current time.
func Split(data []LabeledImage, cumulativeSplits []int, rng *rand.Rand) ([][]LabeledImage, error) {
	datasets := make([][]LabeledImage, len(cumulativeSplits))

	// Allocate slightly more than the expected size for each dataset.
	var sum int
	for i, s := range cumulativeSplits {
		if s < sum {
			return nil, fmt.Errorf("the split percentages must be cumulative: %v", cumulativeSplits)
		}
		percent := s - sum
		datasets[i] = make([]LabeledImage, 0, int(1.05*float64(percent)/100*float64(len(data))))
		sum = s
	}
	if sum != 100 {
		return nil, fmt.Errorf("the split percentages do not add up to 100")
	}

	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

outer:
	for _, d := range data {
		r := rng.Intn(100)
		for i, s := range cumulativeSplits {
			if r < s {
				datasets[i] = append(datasets[i], d)
				continue outer
			}
		}
	}

	return datasets, nil
}
