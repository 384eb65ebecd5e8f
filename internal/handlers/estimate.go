package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"newton_cooling/internal/cooling"
	"newton_cooling/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errEstimate        = "failed to compute estimate"
	errInvalidBodyPref = "invalid body: "
)

// numberField accepts either a JSON number or a JSON string, keeping the
// raw text so the cooling parser reports bad values against the field name.
type numberField string

func (n *numberField) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*n = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*n = numberField(s)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return fmt.Errorf("expected number or string, got %s", b)
	}
	*n = numberField(num.String())
	return nil
}

// estimateRequest is the body of the estimate endpoint and of each
// WebSocket message.
type estimateRequest struct {
	AmbientTemp   numberField `json:"ambient_temp"`
	DeathTemp     numberField `json:"death_temp"` // optional, defaults to the configured body temperature
	T1            numberField `json:"t1"`
	Temp1         numberField `json:"temp1"`
	T2            numberField `json:"t2"`
	Temp2         numberField `json:"temp2"`
	DiscoveryTime string      `json:"discovery_time"`
}

func (r estimateRequest) raw() cooling.RawInput {
	return cooling.RawInput{
		Ambient:       string(r.AmbientTemp),
		AtDeath:       string(r.DeathTemp),
		Time1:         string(r.T1),
		Temp1:         string(r.Temp1),
		Time2:         string(r.T2),
		Temp2:         string(r.Temp2),
		DiscoveryTime: r.DiscoveryTime,
	}
}

type curveRequest struct {
	estimateRequest
	Step numberField `json:"step"`
}

// EstimateRequest documents the estimate payload for Swagger.
type EstimateRequest struct {
	// Ambient temperature Ta
	AmbientTemp float64 `json:"ambient_temp" example:"20"`
	// Body temperature at death T0; defaults to the configured value
	DeathTemp float64 `json:"death_temp,omitempty" example:"37"`
	// First measurement time (time origin)
	T1 float64 `json:"t1" example:"0"`
	// First measured temperature
	Temp1 float64 `json:"temp1" example:"30"`
	// Second measurement time
	T2 float64 `json:"t2" example:"60"`
	// Second measured temperature
	Temp2 float64 `json:"temp2" example:"25"`
	// Wall-clock time of the first measurement, HH:MM
	DiscoveryTime string `json:"discovery_time,omitempty" example:"14:00"`
}

// CurveRequest documents the curve payload for Swagger.
type CurveRequest struct {
	EstimateRequest
	// Sampling step in time units; defaults to the configured step
	Step float64 `json:"step,omitempty" example:"10"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Estimate time of death
// @Description  Solves Newton's law of cooling from two measurements. Numeric fields may be numbers or strings.
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      EstimateRequest  true  "Measurements"
// @Success      200   {object}  models.EstimateResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  models.ErrorResponse
// @Router       /api/v1/estimate [post]
// @Security     BearerAuth
func (h *Handler) estimate(c *gin.Context) {
	var req estimateRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	res, err := h.services.Estimate(c.Request.Context(), req.raw())
	if err != nil {
		h.respondModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.EstimateResponse{
		RequestID: requestID(c),
		Result:    res,
		Display:   cooling.Display(res),
	})
}

// @Summary      Sample the fitted cooling curve
// @Tags         cooling
// @Accept       json
// @Produce      json
// @Param        body  body      CurveRequest  true  "Measurements and step"
// @Success      200   {object}  models.CurveResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  models.ErrorResponse
// @Router       /api/v1/curve [post]
// @Security     BearerAuth
func (h *Handler) curve(c *gin.Context) {
	var req curveRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}
	step := h.defaultCurveStep
	if req.Step != "" {
		v, err := cooling.ParseStep(string(req.Step))
		if err != nil {
			h.respondModelError(c, err)
			return
		}
		step = v
	}
	samples, err := h.services.Curve(c.Request.Context(), req.raw(), step)
	if err != nil {
		h.respondModelError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.CurveResponse{
		RequestID: requestID(c),
		Step:      step,
		Samples:   samples,
	})
}

// modelError maps a calculation failure to a status code and body.
func modelError(err error) (int, models.ErrorResponse, bool) {
	var ce *cooling.Error
	switch {
	case errors.As(err, &ce):
		return http.StatusUnprocessableEntity, models.ErrorResponse{
			Error: ce.Error(),
			Kind:  ce.KindName(),
			Field: ce.Field,
		}, true
	case errors.Is(err, cooling.ErrInvalidStep):
		return http.StatusBadRequest, models.ErrorResponse{Error: err.Error(), Field: "step"}, true
	default:
		return http.StatusInternalServerError, models.ErrorResponse{Error: errEstimate}, false
	}
}

func (h *Handler) respondModelError(c *gin.Context, err error) {
	code, body, known := modelError(err)
	if !known {
		h.logAndJSONError(c, code, body.Error, "estimate_failed", err)
		return
	}
	c.JSON(code, body)
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.requestLog(c).Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}
