package http

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/nurpe/apper-api/internal/auth"
	"github.com/nurpe/apper-api/internal/http/middleware"
	"github.com/nurpe/apper-api/internal/metrics"
)

type RouterOptions struct {
	Production     bool
	AllowedOrigins []string
	RateLimitRPS   float64
	RateLimitBurst int
	// Auth, when set, protects mutating routes with bearer tokens.
	Auth    *auth.Parser
	Metrics *metrics.Metrics
}

func NewRouter(h *Handler, opts RouterOptions, log zerolog.Logger) *gin.Engine {
	if opts.Production {
		gin.SetMode(gin.ReleaseMode)
	}
	registerValidators()

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.Logger(log))
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))
	if opts.RateLimitRPS > 0 {
		router.Use(middleware.NewRateLimiter(opts.RateLimitRPS, opts.RateLimitBurst, log).Handler())
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	h.Register(router, middleware.Auth(opts.Auth))
	return router
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Type", "Content-Disposition", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

type validatable interface {
	Valid() bool
}

// registerValidators adds the "enum" tag for closed string types.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		value, ok := fl.Field().Interface().(validatable)
		return ok && value.Valid()
	})
}
