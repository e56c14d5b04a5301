package tradeup

import "github.com/osse101/TradeUp_Go/internal/domain"

// Remap maps the mean of the set input qualities into [outMin, outMax].
//
// Unset (nil) qualities are left out of the mean rather than counted as zero.
// ok is false when no quality is set: the output float is not computable.
// The mean is not clamped to [0,1]; keeping inputs in range is the caller's job.
func Remap(qualities []*float64, outMin, outMax float64) (value float64, ok bool) {
	var (
		sum      float64
		n        int
		first    float64
		allEqual = true
	)
	for _, q := range qualities {
		if q == nil {
			continue
		}
		if n == 0 {
			first = *q
		} else if *q != first {
			allEqual = false
		}
		sum += *q
		n++
	}
	if n == 0 {
		return 0, false
	}

	// Summing identical values can drift by an ulp; use the value itself so
	// equal inputs remap exactly
	avg := first
	if !allEqual {
		avg = sum / float64(n)
	}
	return outMin + avg*(outMax-outMin), true
}

// Qualities collects the quality pointers of items, in order.
func Qualities(items []*domain.Item) []*float64 {
	out := make([]*float64, len(items))
	for i, it := range items {
		if it != nil {
			out[i] = it.Quality
		}
	}
	return out
}
