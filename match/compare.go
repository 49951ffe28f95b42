package match

import (
	"fmt"
	"time"

	"gonum.org/v1/gonum/stat"
)

// Compare runs every algorithm runs times on the same input and returns one
// Profile per algorithm, in the order of Algorithms. Mean and StdDev are
// taken over the per-run elapsed times; StdDev is 0 for a single run.
//
// Errors: ErrInvalidRuns for runs < 1, ErrDisagreement if any algorithm
// reports a different match than AlgNaive.
func Compare(text, pattern string, runs int) ([]Profile, error) {
	if runs < 1 {
		return nil, fmt.Errorf("runs=%d: %w", runs, ErrInvalidRuns)
	}
	profiles := make([]Profile, 0, len(Algorithms))
	samples := make([]float64, runs)
	for _, alg := range Algorithms {
		m, err := alg.Matcher()
		if err != nil {
			return nil, err
		}
		var last Result
		for r := 0; r < runs; r++ {
			last = m(text, pattern)
			samples[r] = float64(last.Elapsed)
		}
		mean, std := stat.MeanStdDev(samples, nil)
		if runs == 1 {
			std = 0
		}
		p := Profile{
			Algorithm:   alg,
			Found:       last.Found,
			Position:    last.Position,
			Comparisons: last.Comparisons,
			Mean:        time.Duration(mean),
			StdDev:      time.Duration(std),
		}
		if len(profiles) > 0 && (p.Found != profiles[0].Found || p.Position != profiles[0].Position) {
			return nil, fmt.Errorf("%s at %d, %s at %d: %w",
				profiles[0].Algorithm, profiles[0].Position, alg, p.Position, ErrDisagreement)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
