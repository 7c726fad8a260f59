// Loads a day/night image dataset, standardizes every image and logs a summary of the result.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/sensorable/daynight"
)

var (
	imageDirPath string // The dataset directory with the day and night subdirectories.
	splits       []int  // The cumulative split percentages for the output datasets.

	imageWidth              int    // The width of standardized images.
	imageHeight             int    // The height of standardized images.
	imageDownsamplingFilter string // The algorithm to use when downsampling.
	imageUpsamplingFilter   string // The algorithm to use when upsampling.

	strictLabels bool // Fail on labels other than day and night.
)

func init() {
	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "Usage of %s:\n", filepath.Base(os.Args[0]))
		_, _ = fmt.Fprintln(os.Stderr, "  -images <dir> [-width] [-height] [-split]")
		_, _ = fmt.Fprintln(os.Stderr)
		flag.PrintDefaults()
	}

	printUsageAndExit := func(msg ...interface{}) {
		log.Print(msg...)
		flag.Usage()
		os.Exit(1)
	}

	flag.StringVar(&imageDirPath, "images", imageDirPath,
		"The `path` to the dataset directory containing the day and night subdirectories")
	outSplits := flag.String("split", "100",
		"The comma-separated split percentages (`percent[,...]`) to divide the images into;"+
				" must add up to 100%")

	flag.IntVar(&imageWidth, "width", daynight.StandardWidth,
		"The `width` of standardized images in pixels")
	flag.IntVar(&imageHeight, "height", daynight.StandardHeight,
		"The `height` of standardized images in pixels")
	flag.StringVar(&imageDownsamplingFilter, "downsample-filter", "box",
		"The filter to use when downsampling an image {nearest, box, linear, gaussian, lanczos}")
	flag.StringVar(&imageUpsamplingFilter, "upsample-filter", "linear",
		"The filter to use when upsampling an image {nearest, box, linear, gaussian, lanczos}")
	flag.BoolVar(&strictLabels, "strict-labels", strictLabels,
		"Fail on labels other than day and night instead of encoding them as 0")

	// Parse and validate flags.
	flag.Parse()

	if imageDirPath == "" {
		printUsageAndExit("Missing image input path argument")
	}
	imageDirPath = filepath.Clean(imageDirPath)

	if imageWidth <= 0 || imageHeight <= 0 {
		printUsageAndExit("The image width and height must be positive")
	}

	// Parse splits as cumulative int percentages.
	var splitSum int
	for _, v := range strings.Split(*outSplits, ",") {
		if i, err := strconv.Atoi(v); err != nil || i < 0 || i > 100 {
			printUsageAndExit("Invalid value in -split: ", v)
		} else {
			splitSum += i
			splits = append(splits, splitSum)
		}
	}
	if splitSum != 100 {
		printUsageAndExit("The values in -split must add up to 100%")
	}
}

func main() {
	// Select the resampling algorithms.
	downsample, err := daynight.ParseFilter(imageDownsamplingFilter)
	if err != nil {
		log.Fatal(err)
	}
	upsample, err := daynight.ParseFilter(imageUpsamplingFilter)
	if err != nil {
		log.Fatal(err)
	}

	// Load the dataset.
	loader := daynight.Loader{Logger: log.New(os.Stderr, "", log.LstdFlags)}
	data := loader.Load(imageDirPath)
	if len(data) == 0 {
		log.Fatalf("No images found in %q", imageDirPath)
	}
	counts := daynight.Count(data)
	log.Printf("Found %d day and %d night images", counts[daynight.Day], counts[daynight.Night])

	// Split the data.
	datasets := [][]daynight.LabeledImage{data}
	if len(splits) > 1 {
		if datasets, err = daynight.Split(data, splits, nil); err != nil {
			log.Fatal("Failed to split the dataset: ", err)
		}
	}

	// Standardize each dataset.
	s := daynight.Standardizer{
		Width:      imageWidth,
		Height:     imageHeight,
		Downsample: downsample,
		Upsample:   upsample,
		Strict:     strictLabels,
	}
	for i, ds := range datasets {
		encoded, err := s.Standardize(ds)
		if err != nil {
			log.Fatal("Standardization failed: ", err)
		}

		summary := daynight.Summarize(encoded)
		log.Printf("Dataset %d: %d images (%d day, %d night) at %dx%d", i, summary.Total,
			summary.Day, summary.Night, summary.Width, summary.Height)
	}
}
