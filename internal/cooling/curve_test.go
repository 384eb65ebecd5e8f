package cooling

import (
	"errors"
	"testing"
)

func TestCurve_SpansDeathToLastMeasurement(t *testing.T) {
	in := exampleInput()
	r, err := Estimate(in)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	samples, err := Curve(in, r, 10)
	if err != nil {
		t.Fatalf("Curve: %v", err)
	}
	first, last := samples[0], samples[len(samples)-1]
	if !approxEqual(first.Time, r.T0, 1e-12) || !approxEqual(first.Temperature, in.AtDeath, 1e-9) {
		t.Fatalf("first sample %+v, want time %v temp %v", first, r.T0, in.AtDeath)
	}
	if last.Time != in.Time2 || !approxEqual(last.Temperature, in.Temp2, 1e-9) {
		t.Fatalf("last sample %+v, want time %v temp %v", last, in.Time2, in.Temp2)
	}
	// -45.93..60 at step 10 → 11 regular points plus the end point.
	if len(samples) != 12 {
		t.Fatalf("got %d samples, want 12", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Temperature >= samples[i-1].Temperature {
			t.Fatalf("curve not cooling at %d: %+v", i, samples[i])
		}
	}
}

func TestCurve_DeathAfterFirstMeasurement(t *testing.T) {
	// T0 between Ta and T1 puts the moment of death at t1+30.87.
	in := Input{Ambient: 20, AtDeath: 27, Time1: 0, Temp1: 30, Time2: 60, Temp2: 25}
	r, err := Estimate(in)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if r.T0 <= 0 {
		t.Fatalf("t0=%v, want positive", r.T0)
	}
	samples, err := Curve(in, r, 10)
	if err != nil {
		t.Fatalf("Curve: %v", err)
	}
	if len(samples) != 7 {
		t.Fatalf("got %d samples, want 7", len(samples))
	}
	first, last := samples[0], samples[len(samples)-1]
	if first.Time != in.Time1 || last.Time != in.Time2 {
		t.Fatalf("span %v..%v, want %v..%v", first.Time, last.Time, in.Time1, in.Time2)
	}
	for _, s := range samples {
		if s.Time < in.Time1 || s.Time > in.Time2 {
			t.Fatalf("sample %+v outside measurement span", s)
		}
	}
}

func TestCurve_InvalidStep(t *testing.T) {
	in := exampleInput()
	r, err := Estimate(in)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	for _, step := range []float64{0, -1, 0.001} {
		if _, err := Curve(in, r, step); !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("step %v: expected ErrInvalidStep, got %v", step, err)
		}
	}
}

func TestParseStep(t *testing.T) {
	if v, err := ParseStep(" 2.5 "); err != nil || v != 2.5 {
		t.Fatalf("ParseStep(2.5)=%v, %v", v, err)
	}
	for _, s := range []string{"", "fast", "NaN", "Inf"} {
		_, err := ParseStep(s)
		if !errors.Is(err, ErrInvalidStep) {
			t.Fatalf("ParseStep(%q): expected ErrInvalidStep, got %v", s, err)
		}
		var ce *Error
		if errors.As(err, &ce) {
			t.Fatalf("ParseStep(%q) returned a model error %v", s, err)
		}
	}
}

func TestDisplay(t *testing.T) {
	in := exampleInput()
	in.Discovery = &ClockTime{Hour: 14, Minute: 0}
	r, err := Estimate(in)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	d := Display(r)
	want := DisplayValues{K: "0.011552", ElapsedSinceDeath: "45.93", T0: "-45.93", TimeOfDeath: "1:14 PM"}
	if d != want {
		t.Fatalf("got %+v, want %+v", d, want)
	}
}
