package handlers

import (
	"context"
	"net/http"

	"newton_cooling/internal/cooling"
	"newton_cooling/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpID      int
	signUpErr     error
	genTokenToken string
	genTokenErr   error
	parseID       int
	parseErr      error

	lastSignUpUsername string
	lastSignUpPassword string
	lastGenUsername    string
	lastGenPassword    string
	lastParseToken     string
}

func (m *mockAuth) SignUp(_ context.Context, username, password string) (int, error) {
	m.lastSignUpUsername = username
	m.lastSignUpPassword = password
	return m.signUpID, m.signUpErr
}
func (m *mockAuth) GenerateToken(_ context.Context, username, password string) (string, error) {
	m.lastGenUsername = username
	m.lastGenPassword = password
	return m.genTokenToken, m.genTokenErr
}
func (m *mockAuth) ParseToken(token string) (int, error) {
	m.lastParseToken = token
	return m.parseID, m.parseErr
}

// mockEstimator records the raw input and replays a canned outcome. When
// useModel is set it runs the real cooling model instead.
type mockEstimator struct {
	res      cooling.Result
	err      error
	useModel bool
	calls    []cooling.RawInput
}

func (m *mockEstimator) Estimate(_ context.Context, raw cooling.RawInput) (cooling.Result, error) {
	m.calls = append(m.calls, raw)
	if m.useModel {
		in, err := cooling.ParseInput(raw)
		if err != nil {
			return cooling.Result{}, err
		}
		return cooling.Estimate(in)
	}
	return m.res, m.err
}

type mockCurves struct {
	samples  []cooling.Sample
	err      error
	lastRaw  cooling.RawInput
	lastStep float64
}

func (m *mockCurves) Curve(_ context.Context, raw cooling.RawInput, step float64) ([]cooling.Sample, error) {
	m.lastRaw = raw
	m.lastStep = step
	return m.samples, m.err
}

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil)
	return h.InitRoutes()
}

func authHeader(token string) http.Header {
	h := http.Header{}
	if token != "" {
		h.Set("Authorization", "Bearer "+token)
	}
	return h
}
