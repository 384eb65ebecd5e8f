package cooling

import (
	"math"
)

// Epsilon is the tolerance below which two quantities are considered equal.
const Epsilon = 1e-12

// Result is the outcome of one successful calculation.
type Result struct {
	K                 float64 `json:"k" yaml:"k"`                                     // decay constant, per time unit
	T0                float64 `json:"t0" yaml:"t0"`                                   // signed offset of death, origin at t1
	ElapsedSinceDeath float64 `json:"elapsed_since_death" yaml:"elapsed_since_death"` // |t0|

	Dt       float64 `json:"dt" yaml:"dt"`               // t2 - t1
	C        float64 `json:"c" yaml:"c"`                 // T1 - Ta
	Ratio    float64 `json:"ratio" yaml:"ratio"`         // (T2 - Ta)/C
	LnRatio  float64 `json:"ln_ratio" yaml:"ln_ratio"`   // ln(Ratio)
	Ratio0   float64 `json:"ratio0" yaml:"ratio0"`       // (T0 - Ta)/C
	LnRatio0 float64 `json:"ln_ratio0" yaml:"ln_ratio0"` // ln(Ratio0)

	TimeOfDeath *WallClock `json:"time_of_death,omitempty" yaml:"time_of_death,omitempty"`
	Transcript  string     `json:"transcript" yaml:"transcript"`
}

// Estimate solves the cooling model for in. It stops at the first violated
// precondition and never returns a partial result.
func Estimate(in Input) (Result, error) {
	if err := checkDegenerate(in); err != nil {
		return Result{}, err
	}

	var r Result
	if err := solveRate(in, &r); err != nil {
		return Result{}, err
	}
	if err := solveTimeOfDeath(in, &r); err != nil {
		return Result{}, err
	}
	if in.Discovery != nil {
		wc := TimeOfDeath(*in.Discovery, r.ElapsedSinceDeath)
		r.TimeOfDeath = &wc
	}
	r.Transcript = Transcript(in, r)
	return r, nil
}

func checkDegenerate(in Input) error {
	switch {
	case math.Abs(in.Temp1-in.Ambient) < Epsilon:
		return degenerate(FieldTemp1, "T1 cannot equal Ta")
	case math.Abs(in.Temp2-in.Ambient) < Epsilon:
		return degenerate(FieldTemp2, "T2 cannot equal Ta")
	case math.Abs(in.AtDeath-in.Ambient) < Epsilon:
		return degenerate(FieldAtDeath, "T0 cannot equal Ta")
	case math.Abs(in.Time2-in.Time1) < Epsilon:
		return degenerate(FieldTime2, "t2 must differ from t1")
	}
	return nil
}

// solveRate fixes C from the t1 measurement and k from the t2 measurement.
func solveRate(in Input, r *Result) error {
	r.Dt = in.Time2 - in.Time1
	r.C = in.Temp1 - in.Ambient
	r.Ratio = (in.Temp2 - in.Ambient) / r.C
	if !finitePositive(r.Ratio) {
		return inconsistent("k")
	}
	r.LnRatio = math.Log(r.Ratio)
	r.K = -r.LnRatio / r.Dt
	if !finitePositive(r.K) {
		return nonPhysical(r.K)
	}
	return nil
}

// solveTimeOfDeath finds the offset where the model equals T0.
func solveTimeOfDeath(in Input, r *Result) error {
	r.Ratio0 = (in.AtDeath - in.Ambient) / r.C
	if !finitePositive(r.Ratio0) {
		return inconsistent("t0")
	}
	r.LnRatio0 = math.Log(r.Ratio0)
	r.T0 = -r.LnRatio0 / r.K
	if math.IsNaN(r.T0) || math.IsInf(r.T0, 0) {
		return inconsistent("t0")
	}
	r.ElapsedSinceDeath = math.Abs(r.T0)
	return nil
}

// finitePositive rejects NaN and ±Inf along with v <= 0. Differences of
// values near the float64 limits overflow to Inf and their ratios to NaN.
func finitePositive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

// TemperatureAt evaluates the fitted model at absolute time t.
func (r Result) TemperatureAt(in Input, t float64) float64 {
	return in.Ambient + r.C*math.Exp(-r.K*(t-in.Time1))
}
