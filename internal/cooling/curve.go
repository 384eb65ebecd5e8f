package cooling

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// MaxCurveSamples bounds the size of a sampled cooling curve.
const MaxCurveSamples = 10_000

// ErrInvalidStep is returned by Curve for a non-positive step or one that
// would produce more than MaxCurveSamples points, and by ParseStep.
var ErrInvalidStep = errors.New("invalid curve step")

// Sample is one point on the fitted cooling curve.
type Sample struct {
	Time        float64 `json:"time" yaml:"time"`
	Temperature float64 `json:"temperature" yaml:"temperature"`
}

// Curve samples the fitted model over the span covering the estimated
// moment of death and both measurements, both ends included. Usually that
// is death to the later measurement; when T0 lies between Ta and T1 the
// moment of death falls after t1 and the span starts at the earliest
// measurement instead.
func Curve(in Input, r Result, step float64) ([]Sample, error) {
	if !(step > 0) || math.IsInf(step, 0) {
		return nil, ErrInvalidStep
	}
	death := in.Time1 + r.T0
	start := math.Min(death, math.Min(in.Time1, in.Time2))
	end := math.Max(death, math.Max(in.Time1, in.Time2))
	span := end - start
	if span/step >= MaxCurveSamples {
		return nil, ErrInvalidStep
	}
	n := int(math.Floor(span/step)) + 1

	out := make([]Sample, 0, n+1)
	for i := 0; i < n; i++ {
		t := start + float64(i)*step
		out = append(out, Sample{Time: t, Temperature: r.TemperatureAt(in, t)})
	}
	if last := out[len(out)-1].Time; end-last > Epsilon {
		out = append(out, Sample{Time: end, Temperature: r.TemperatureAt(in, end)})
	}
	return out, nil
}

// ParseStep parses a sampling step. Failures wrap ErrInvalidStep so callers
// treat an unreadable step like an out-of-range one.
func ParseStep(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: step %q is not a number", ErrInvalidStep, s)
	}
	return v, nil
}
