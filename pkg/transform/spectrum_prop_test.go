package transform

import (
	"math"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/lumennet/photonic/pkg/units"
)

func TestResampleSpectrumProperties(t *testing.T) {
	params := gopter.DefaultTestParameters()
	params.MinSuccessfulTests = 200
	properties := gopter.NewProperties(params)

	// Sample values paired with synthetic strictly increasing frequencies.
	valueSlices := gen.SliceOf(gen.Float64Range(-5, 5)).SuchThat(func(vs []float64) bool {
		return len(vs) >= 2 && len(vs) <= 48
	})

	toPoints := func(vs []float64) []spectrumPoint {
		points := make([]spectrumPoint, len(vs))
		for i, v := range vs {
			points[i] = spectrumPoint{frequency: 191.5e12 + float64(i)*0.25e12, value: v}
		}
		return points
	}

	properties.Property("output has one sample per grid channel", prop.ForAll(
		func(vs []float64) bool {
			out, err := resampleSpectrum(toPoints(vs))
			return err == nil && len(out) == units.GridChannels
		},
		valueSlices,
	))

	properties.Property("output never leaves the sampled value range", prop.ForAll(
		func(vs []float64) bool {
			out, err := resampleSpectrum(toPoints(vs))
			if err != nil {
				return false
			}
			lo, hi := math.Inf(1), math.Inf(-1)
			for _, v := range vs {
				lo = math.Min(lo, v)
				hi = math.Max(hi, v)
			}
			for _, v := range out {
				if v < lo-1e-9 || v > hi+1e-9 {
					return false
				}
			}
			return true
		},
		valueSlices,
	))

	properties.Property("constant input yields constant output", prop.ForAll(
		func(v float64, n int) bool {
			points := make([]spectrumPoint, n)
			for i := range points {
				points[i] = spectrumPoint{frequency: 192e12 + float64(i)*1e12, value: v}
			}
			out, err := resampleSpectrum(points)
			if err != nil || len(out) != units.GridChannels {
				return false
			}
			for _, got := range out {
				if math.Abs(got-v) > 1e-9 {
					return false
				}
			}
			return true
		},
		gen.Float64Range(-10, 10),
		gen.IntRange(2, 8),
	))

	properties.Property("input ordering does not matter", prop.ForAll(
		func(vs []float64) bool {
			points := toPoints(vs)
			reversed := make([]spectrumPoint, len(points))
			for i, p := range points {
				reversed[len(points)-1-i] = p
			}
			a, errA := resampleSpectrum(points)
			b, errB := resampleSpectrum(reversed)
			if errA != nil || errB != nil || len(a) != len(b) {
				return false
			}
			for i := range a {
				if a[i] != b[i] {
					return false
				}
			}
			return true
		},
		valueSlices,
	))

	properties.TestingRun(t)
}
