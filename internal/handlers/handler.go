package handlers

import (
	"newton_cooling/internal/logger"
	"newton_cooling/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultCurveStep = 10.0

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services         *service.Service
	log              *logger.Logger
	defaultCurveStep float64
}

// Option customizes a Handler.
type Option func(*Handler)

// WithDefaultCurveStep sets the sampling step used when a curve request
// omits one. Non-positive values are ignored.
func WithDefaultCurveStep(step float64) Option {
	return func(h *Handler) {
		if step > 0 {
			h.defaultCurveStep = step
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: logger.OrNop(log), defaultCurveStep: defaultCurveStep}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestIDMiddleware)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Interactive calculator session; browsers cannot set headers on the
	// upgrade request, so the token may come as ?access_token=.
	router.GET("/ws", h.userIdMiddleware, h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.userIdMiddleware)
	{
		api.POST("/estimate", h.estimate)
		api.POST("/curve", h.curve)
	}
}
