package bench

import (
	"math"
	"time"
)

// two-sided 95% t critical values indexed by degrees of freedom
var tTable = [...]float64{
	0,
	12.706, 4.303, 3.182, 2.776, 2.571, 2.447, 2.365, 2.306, 2.262, 2.228,
	2.201, 2.179, 2.160, 2.145, 2.131, 2.120, 2.110, 2.101, 2.093, 2.086,
	2.080, 2.074, 2.069, 2.064, 2.060, 2.056, 2.052, 2.048, 2.045, 2.042,
}

const tInfinity = 1.96

// Stats of samples, every sample is seconds per call
type Stats struct {
	Samples   int
	Mean      float64
	Variance  float64
	Deviation float64
	SEM       float64
	MOE       float64
	// RME relative margin of error in percent
	RME float64
}

func critical(df int) float64 {
	if df < 1 {
		return math.NaN()
	}
	if df < len(tTable) {
		return tTable[df]
	}
	return tInfinity
}

// Compute stats of samples
func Compute(samples []float64) Stats {
	s := Stats{Samples: len(samples)}
	if s.Samples == 0 {
		return s
	}
	var sum float64
	for _, v := range samples {
		sum += v
	}
	s.Mean = sum / float64(s.Samples)
	if s.Samples > 1 {
		var sq float64
		for _, v := range samples {
			sq += (v - s.Mean) * (v - s.Mean)
		}
		s.Variance = sq / float64(s.Samples-1)
		s.Deviation = math.Sqrt(s.Variance)
		s.SEM = s.Deviation / math.Sqrt(float64(s.Samples))
		s.MOE = s.SEM * critical(s.Samples-1)
		if s.Mean > 0 {
			s.RME = s.MOE / s.Mean * 100
		}
	}
	return s
}

// OpsPerSec calls per second at mean speed
func (s Stats) OpsPerSec() float64 {
	if s.Mean <= 0 {
		return 0
	}
	return 1 / s.Mean
}

func secondsToDuration(sec float64) time.Duration {
	return time.Duration(math.Round(sec * float64(time.Second)))
}
