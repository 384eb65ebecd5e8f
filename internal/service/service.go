package service

import (
	"context"
	"time"

	"newton_cooling/internal/cooling"
	"newton_cooling/internal/logger"
	"newton_cooling/internal/repository"
)

type Authorization interface {
	SignUp(ctx context.Context, username, password string) (int, error)
	GenerateToken(ctx context.Context, username, password string) (string, error)
	ParseToken(accessToken string) (int, error)
}

// Estimator runs one time-of-death calculation from raw field values.
type Estimator interface {
	Estimate(ctx context.Context, raw cooling.RawInput) (cooling.Result, error)
}

// Curves samples the fitted cooling curve for a calculation.
type Curves interface {
	Curve(ctx context.Context, raw cooling.RawInput, step float64) ([]cooling.Sample, error)
}

// Service aggregates all sub-services behind one value for the handlers.
type Service struct {
	Estimator
	Curves
	Authorization
}

// Options carries configuration the services need.
type Options struct {
	DefaultBodyTempC float64
	SigningKey       string
	TokenTTL         time.Duration
}

// NewService wires the repository layer into concrete services.
func NewService(repos *repository.Repository, opts Options, log *logger.Logger) *Service {
	est := NewEstimatorService(opts.DefaultBodyTempC, log)
	return &Service{
		Estimator:     est,
		Curves:        NewCurveService(est, log),
		Authorization: NewAuthService(repos.Auth, opts.SigningKey, opts.TokenTTL),
	}
}
