package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"newton_cooling/internal/cooling"
)

func exampleRaw() cooling.RawInput {
	return cooling.RawInput{Ambient: "20", AtDeath: "37", Time1: "0", Temp1: "30", Time2: "60", Temp2: "25"}
}

func TestEstimatorService_Estimate(t *testing.T) {
	svc := NewEstimatorService(37, nil)
	raw := exampleRaw()
	raw.DiscoveryTime = "14:00"

	res, err := svc.Estimate(context.Background(), raw)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if math.Abs(res.K-math.Ln2/60) > 1e-15 {
		t.Fatalf("k=%v", res.K)
	}
	if res.TimeOfDeath == nil || res.TimeOfDeath.String() != "1:14 PM" {
		t.Fatalf("time of death=%v", res.TimeOfDeath)
	}
}

func TestEstimatorService_DefaultBodyTemperature(t *testing.T) {
	svc := NewEstimatorService(37, nil)
	raw := exampleRaw()
	raw.AtDeath = " "

	withDefault, err := svc.Estimate(context.Background(), raw)
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	explicit, err := svc.Estimate(context.Background(), exampleRaw())
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if withDefault.T0 != explicit.T0 {
		t.Fatalf("default T0 not applied: %v vs %v", withDefault.T0, explicit.T0)
	}
}

func TestEstimatorService_PropagatesModelErrors(t *testing.T) {
	svc := NewEstimatorService(37, nil)

	raw := exampleRaw()
	raw.Temp1 = "warm"
	if _, err := svc.Estimate(context.Background(), raw); !errors.Is(err, cooling.ErrParse) {
		t.Fatalf("expected parse error, got %v", err)
	}

	raw = exampleRaw()
	raw.Temp2 = "10"
	if _, err := svc.Estimate(context.Background(), raw); !errors.Is(err, cooling.ErrInconsistentData) {
		t.Fatalf("expected inconsistent data, got %v", err)
	}
}

func TestEstimatorService_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewEstimatorService(37, nil).Estimate(ctx, exampleRaw()); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestCurveService_Curve(t *testing.T) {
	svc := NewCurveService(NewEstimatorService(37, nil), nil)

	samples, err := svc.Curve(context.Background(), exampleRaw(), 15)
	if err != nil {
		t.Fatalf("Curve: %v", err)
	}
	if len(samples) < 2 {
		t.Fatalf("expected several samples, got %d", len(samples))
	}
	if last := samples[len(samples)-1]; last.Time != 60 {
		t.Fatalf("last sample at %v, want 60", last.Time)
	}

	if _, err := svc.Curve(context.Background(), exampleRaw(), 0); !errors.Is(err, cooling.ErrInvalidStep) {
		t.Fatalf("expected ErrInvalidStep, got %v", err)
	}

	raw := exampleRaw()
	raw.Time2 = "0"
	if _, err := svc.Curve(context.Background(), raw, 1); !errors.Is(err, cooling.ErrDegenerateInput) {
		t.Fatalf("expected degenerate input, got %v", err)
	}
}
