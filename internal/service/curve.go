package service

import (
	"context"
	"fmt"

	"newton_cooling/internal/cooling"
	"newton_cooling/internal/logger"
)

// CurveService samples the fitted model between the moment of death and
// the last measurement.
type CurveService struct {
	estimator *EstimatorService
	log       *logger.Logger
}

func NewCurveService(estimator *EstimatorService, log *logger.Logger) *CurveService {
	return &CurveService{estimator: estimator, log: logger.OrNop(log)}
}

// Curve estimates raw and returns samples spaced step time units apart.
func (s *CurveService) Curve(ctx context.Context, raw cooling.RawInput, step float64) ([]cooling.Sample, error) {
	in, res, err := s.estimator.estimate(ctx, raw)
	if err != nil {
		return nil, err
	}
	samples, err := cooling.Curve(in, res, step)
	if err != nil {
		s.log.Infow("curve_rejected", "step", step, "err", err)
		return nil, fmt.Errorf("step %v: %w", step, err)
	}
	s.log.Debugw("curve_ok", "step", step, "samples", len(samples))
	return samples, nil
}
