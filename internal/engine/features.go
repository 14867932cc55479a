package engine

import (
	"errors"
	"math"
	"strconv"
	"strings"

	q "github.com/abhisek/algoselect/internal/questionnaire"
)

// DataSize classifies the volume of available data.
type DataSize string

const (
	SizeLow     DataSize = "low"
	SizeHigh    DataSize = "high"
	SizeUnknown DataSize = "unknown"
)

// Ratio classifies the feature-to-data ratio.
type Ratio string

const (
	RatioLow  Ratio = "low"
	RatioHigh Ratio = "high"
)

// SizePolicy decides DataSize when no low-size signal is present.
type SizePolicy string

const (
	// SizePolicyHigh classifies data as high when a size was given and it
	// is not low. This is the default.
	SizePolicyHigh SizePolicy = "high"

	// SizePolicyUnknown never classifies data as high.
	SizePolicyUnknown SizePolicy = "unknown"
)

// Feature-count thresholds per magnitude bucket. A count strictly above the
// threshold makes the ratio high.
const (
	SmallDataFeatureThreshold  = 50     // K bytes or T samples
	MediumDataFeatureThreshold = 5000   // M bytes or M samples
	LargeDataFeatureThreshold  = 500000 // anything larger

	// PriorityThreshold is the minimum 1-5 rating that marks a metric as
	// prioritized.
	PriorityThreshold = 3
)

// DerivedFeatures are the normalized signals read by the selectors.
type DerivedFeatures struct {
	DataSize                DataSize
	FtoDRatio               Ratio
	Interpretability        bool
	SpeedPriority           bool
	ReproducibilityPriority bool
}

// Options tunes derivation.
type Options struct {
	SizePolicy SizePolicy
}

// DefaultOptions returns the default engine options.
func DefaultOptions() Options {
	return Options{SizePolicy: SizePolicyHigh}
}

// DeriveFeatures computes DerivedFeatures from the generic answers. It is
// pure and total: malformed numbers derive as zero.
func DeriveFeatures(generic q.AnswerSet, opts Options) DerivedFeatures {
	bytes := strings.ToUpper(strings.TrimSpace(generic.Get(q.IDDataSizeBytes)))
	samples := strings.ToUpper(strings.TrimSpace(generic.Get(q.IDDataSizeSamples)))

	return DerivedFeatures{
		DataSize:                dataSize(bytes, samples, opts.SizePolicy),
		FtoDRatio:               ftodRatio(bytes, samples, atoi(generic.Get(q.IDDataFeatures))),
		Interpretability:        atoi(generic.Get(q.IDMetricInterpretability)) >= PriorityThreshold,
		SpeedPriority:           atoi(generic.Get(q.IDMetricSpeed)) >= PriorityThreshold,
		ReproducibilityPriority: atoi(generic.Get(q.IDMetricReproducibility)) >= PriorityThreshold,
	}
}

func dataSize(bytes, samples string, policy SizePolicy) DataSize {
	if strings.Contains(bytes, "K") || strings.Contains(samples, "T") {
		return SizeLow
	}
	if policy == SizePolicyUnknown || (bytes == "" && samples == "") {
		return SizeUnknown
	}
	return SizeHigh
}

func ftodRatio(bytes, samples string, features int) Ratio {
	threshold := LargeDataFeatureThreshold
	switch {
	case strings.Contains(bytes, "K") || strings.Contains(samples, "T"):
		threshold = SmallDataFeatureThreshold
	case strings.Contains(bytes, "M") || strings.Contains(samples, "M"):
		threshold = MediumDataFeatureThreshold
	}
	if features > threshold {
		return RatioHigh
	}
	return RatioLow
}

// atoi saturates at the int bounds on overflow and returns 0 for anything
// that is not a number.
func atoi(s string) int {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err == nil {
		return n
	}
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	return 0
}
