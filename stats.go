package bif6

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// IntervalStats summarizes the intensity distribution of one interval
// image. StdDev is the sample standard deviation.
type IntervalStats struct {
	Total  uint64
	Min    uint32
	Max    uint32
	Mean   float64
	StdDev float64
}

// Stats computes summary statistics over the pixel grid.
func (iv *Interval) Stats() IntervalStats {
	if len(iv.Pix) == 0 {
		return IntervalStats{}
	}

	s := IntervalStats{Min: math.MaxUint32}
	vals := make([]float64, len(iv.Pix))
	for i, p := range iv.Pix {
		vals[i] = float64(p)
		s.Total += uint64(p)
		if p < s.Min {
			s.Min = p
		}
		if p > s.Max {
			s.Max = p
		}
	}

	if len(vals) > 1 {
		s.Mean, s.StdDev = stat.MeanStdDev(vals, nil)
	} else {
		s.Mean = vals[0]
	}
	return s
}
