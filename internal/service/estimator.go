package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"newton_cooling/internal/cooling"
	"newton_cooling/internal/logger"
)

// EstimatorService parses raw input and runs the cooling model.
type EstimatorService struct {
	defaultBodyTemp string
	log             *logger.Logger
}

// NewEstimatorService returns an estimator that substitutes defaultBodyTempC
// for an empty T0 field.
func NewEstimatorService(defaultBodyTempC float64, log *logger.Logger) *EstimatorService {
	return &EstimatorService{
		defaultBodyTemp: strconv.FormatFloat(defaultBodyTempC, 'f', -1, 64),
		log:             logger.OrNop(log),
	}
}

// Estimate parses raw and solves the model. Errors from the model are
// *cooling.Error values and carry the message to show the user.
func (s *EstimatorService) Estimate(ctx context.Context, raw cooling.RawInput) (cooling.Result, error) {
	_, res, err := s.estimate(ctx, raw)
	return res, err
}

func (s *EstimatorService) estimate(ctx context.Context, raw cooling.RawInput) (cooling.Input, cooling.Result, error) {
	if err := ctx.Err(); err != nil {
		return cooling.Input{}, cooling.Result{}, err
	}
	if strings.TrimSpace(raw.AtDeath) == "" {
		raw.AtDeath = s.defaultBodyTemp
	}

	in, err := cooling.ParseInput(raw)
	if err != nil {
		s.logRejected(err)
		return cooling.Input{}, cooling.Result{}, err
	}
	res, err := cooling.Estimate(in)
	if err != nil {
		s.logRejected(err)
		return cooling.Input{}, cooling.Result{}, err
	}

	s.log.Debugw("estimate_ok",
		"k", res.K,
		"t0", res.T0,
		"elapsed", res.ElapsedSinceDeath,
		"has_clock", res.TimeOfDeath != nil,
	)
	return in, res, nil
}

func (s *EstimatorService) logRejected(err error) {
	var ce *cooling.Error
	if errors.As(err, &ce) {
		s.log.Infow("estimate_rejected", "kind", ce.KindName(), "field", ce.Field, "err", err)
		return
	}
	s.log.Errorw("estimate_failed", "err", err)
}
