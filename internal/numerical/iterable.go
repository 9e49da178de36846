package numerical

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// asSequence converts a plain host sequence into a float slice for the
// linear-scan fallback path. Arrays never come through here.
func asSequence(in any) ([]float64, bool) {
	switch v := in.(type) {
	case []float64:
		return v, true
	case []float32:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, true
	case []int:
		out := make([]float64, len(v))
		for i, x := range v {
			out[i] = float64(x)
		}
		return out, true
	default:
		return nil, false
	}
}

// sumMeanStdSequence folds a plain sequence with a single linear scan. An
// empty sequence yields 0 for every op.
func sumMeanStdSequence(seq []float64, op opKind, ddof int) any {
	if op == opSum {
		var sum float64
		for _, v := range seq {
			sum += v
		}
		return sum
	}
	var w welford
	for _, v := range seq {
		w.add(v)
	}
	if op == opMean {
		return w.mean
	}
	return w.std(ddof)
}

// minMaxSequence scans a plain sequence for its extreme value or the
// first-seen position achieving it.
func minMaxSequence(seq []float64, op opKind) (any, error) {
	if len(seq) == 0 {
		return nil, errors.Wrap(ndarray.ErrValue, "attempt to get (arg)min/(arg)max of empty sequence")
	}
	wantMax := op == opMax || op == opArgMax
	best := seq[0]
	bestIdx := 0
	for i, v := range seq[1:] {
		if (wantMax && v > best) || (!wantMax && v < best) {
			best = v
			bestIdx = i + 1
		}
	}
	if op == opArgMin || op == opArgMax {
		return bestIdx, nil
	}
	return best, nil
}
