package experiments

import "math"

// turnStats accumulates the mean and variance of turn counts in one pass
// (Welford), so a sweep never holds every turn count in memory.
type turnStats struct {
	count int
	mean  float64
	m2    float64
}

func (s *turnStats) Add(x float64) {
	s.count++
	delta := x - s.mean
	s.mean += delta / float64(s.count)
	s.m2 += delta * (x - s.mean)
}

func (s *turnStats) Mean() float64 {
	return s.mean
}

// StdDev is the sample standard deviation, or 0 with fewer than two samples.
func (s *turnStats) StdDev() float64 {
	if s.count < 2 {
		return 0
	}
	return math.Sqrt(s.m2 / float64(s.count-1))
}
