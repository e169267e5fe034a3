package geometry

import (
	"math"
	"time"
)

// TimeScale maps instants in [Start, End] linearly onto [R0, R1].
type TimeScale struct {
	Start, End time.Time
	R0, R1     float64
}

func (s TimeScale) Map(t time.Time) float64 {
	span := s.End.Sub(s.Start)
	if span == 0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + float64(t.Sub(s.Start))/float64(span)*(s.R1-s.R0)
}

// LinearScale maps values in [D0, D1] linearly onto [R0, R1]. A collapsed
// domain maps everything to the middle of the range.
type LinearScale struct {
	D0, D1 float64
	R0, R1 float64
}

func (s LinearScale) Map(v float64) float64 {
	if s.D1 == s.D0 {
		return (s.R0 + s.R1) / 2
	}
	return s.R0 + (v-s.D0)/(s.D1-s.D0)*(s.R1-s.R0)
}

// Ticks returns roughly count round values spanning the domain, using
// steps of 1, 2 or 5 times a power of ten.
func (s LinearScale) Ticks(count int) []float64 {
	return ticks(s.D0, s.D1, float64(count))
}

var (
	e10 = math.Sqrt(50)
	e5  = math.Sqrt(10)
	e2  = math.Sqrt(2)
)

func ticks(start, stop, count float64) []float64 {
	if count <= 0 {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	reverse := stop < start
	if reverse {
		start, stop = stop, start
	}

	i1, i2, inc := tickSpec(start, stop, count)
	if i2 < i1 {
		return nil
	}

	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i
		if reverse {
			k = n - 1 - i
		}
		if inc < 0 {
			out[i] = (i1 + float64(k)) / -inc
		} else {
			out[i] = (i1 + float64(k)) * inc
		}
	}
	return out
}

func tickSpec(start, stop, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	errRatio := step / math.Pow(10, power)

	factor := 1.0
	switch {
	case errRatio >= e10:
		factor = 10
	case errRatio >= e5:
		factor = 5
	case errRatio >= e2:
		factor = 2
	}

	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = math.Round(start * inc)
		i2 = math.Round(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = math.Round(start / inc)
		i2 = math.Round(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}

	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}
