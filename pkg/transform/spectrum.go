package transform

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"

	"github.com/lumennet/photonic/pkg/units"
)

// spectrumPoint is one sparse (frequency, value) sample of a per-frequency
// equipment property.
type spectrumPoint struct {
	frequency float64 // Hz
	value     float64
}

// resampleSpectrum interpolates a sparse frequency-keyed property onto the
// fixed channel grid. An empty input yields the single-element constant-zero
// approximation; callers must tolerate both lengths. Samples outside the
// input range clamp to the nearest endpoint value.
func resampleSpectrum(points []spectrumPoint) ([]float64, error) {
	if len(points) == 0 {
		return []float64{0}, nil
	}

	sorted := append([]spectrumPoint(nil), points...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].frequency < sorted[j].frequency })

	out := make([]float64, units.GridChannels)
	if len(sorted) == 1 {
		for k := range out {
			out[k] = sorted[0].value
		}
		return out, nil
	}

	xs := make([]float64, len(sorted))
	ys := make([]float64, len(sorted))
	for i, p := range sorted {
		xs[i] = p.frequency
		ys[i] = p.value
	}

	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("interpolating spectrum: %w", err)
	}

	for k := range out {
		f := units.GridBaseFrequency + float64(k)*units.GridSpacing
		switch {
		case f <= xs[0]:
			out[k] = ys[0]
		case f >= xs[len(xs)-1]:
			out[k] = ys[len(ys)-1]
		default:
			out[k] = pl.Predict(f)
		}
	}
	return out, nil
}
