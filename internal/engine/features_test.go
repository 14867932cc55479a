package engine

import (
	"testing"

	q "github.com/abhisek/algoselect/internal/questionnaire"
	"github.com/stretchr/testify/assert"
)

func TestDeriveFeatures_DataSize(t *testing.T) {
	tests := []struct {
		name    string
		bytes   string
		samples string
		policy  SizePolicy
		want    DataSize
	}{
		{"kilobytes", "500K", "1M", SizePolicyHigh, SizeLow},
		{"thousands of samples", "10G", "20T", SizePolicyHigh, SizeLow},
		{"lower case unit", "500k", "", SizePolicyHigh, SizeLow},
		{"gigabytes", "10G", "1M", SizePolicyHigh, SizeHigh},
		{"samples only", "", "5B", SizePolicyHigh, SizeHigh},
		{"nothing given", "", "", SizePolicyHigh, SizeUnknown},
		{"unknown policy", "10G", "1M", SizePolicyUnknown, SizeUnknown},
		{"unknown policy still low", "1K", "", SizePolicyUnknown, SizeLow},
		{"empty policy defaults to high", "10G", "", "", SizeHigh},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := answers(q.IDDataSizeBytes, tt.bytes, q.IDDataSizeSamples, tt.samples)
			got := DeriveFeatures(in, Options{SizePolicy: tt.policy})
			assert.Equal(t, tt.want, got.DataSize)
		})
	}
}

func TestDeriveFeatures_RatioBoundaries(t *testing.T) {
	tests := []struct {
		bytes    string
		samples  string
		features string
		want     Ratio
	}{
		{"1K", "", "50", RatioLow},
		{"1K", "", "51", RatioHigh},
		{"", "2T", "51", RatioHigh},
		{"10M", "", "5000", RatioLow},
		{"10M", "", "5001", RatioHigh},
		{"", "3M", "5001", RatioHigh},
		{"10G", "2B", "500000", RatioLow},
		{"10G", "2B", "500001", RatioHigh},
		{"10G", "", "5001", RatioLow},
		{"1K", "", "not a number", RatioLow},
		{"10K", "1T", "99999999999999999999", RatioHigh},
		{"10G", "2B", "99999999999999999999", RatioHigh},
	}
	for _, tt := range tests {
		t.Run(tt.bytes+"/"+tt.samples+"/"+tt.features, func(t *testing.T) {
			in := answers(q.IDDataSizeBytes, tt.bytes, q.IDDataSizeSamples, tt.samples,
				q.IDDataFeatures, tt.features)
			assert.Equal(t, tt.want, DeriveFeatures(in, DefaultOptions()).FtoDRatio)
		})
	}
}

func TestDeriveFeatures_Priorities(t *testing.T) {
	in := answers(
		q.IDMetricInterpretability, "3",
		q.IDMetricSpeed, "2",
		q.IDMetricReproducibility, "5",
	)
	got := DeriveFeatures(in, DefaultOptions())
	assert.True(t, got.Interpretability)
	assert.False(t, got.SpeedPriority)
	assert.True(t, got.ReproducibilityPriority)

	got = DeriveFeatures(answers(q.IDMetricSpeed, "fast"), DefaultOptions())
	assert.False(t, got.SpeedPriority)

	got = DeriveFeatures(answers(q.IDMetricSpeed, "-99999999999999999999"), DefaultOptions())
	assert.False(t, got.SpeedPriority)
}

func TestDeriveFeatures_Deterministic(t *testing.T) {
	in := answers(
		q.IDDataSizeBytes, "10M",
		q.IDDataSizeSamples, "20T",
		q.IDDataFeatures, "70",
		q.IDMetricSpeed, "4",
	)
	first := DeriveFeatures(in, DefaultOptions())
	for range 5 {
		assert.Equal(t, first, DeriveFeatures(in, DefaultOptions()))
	}
}
