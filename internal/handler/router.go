package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/middleware"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterOptions controls the middleware stack of the HTTP router
type RouterOptions struct {
	// ValidateRequests checks every documented request against the OpenAPI contract
	ValidateRequests bool
	AllowOrigins     []string
}

// NewRouter builds the gin engine serving the API
func NewRouter(si api.ServerInterface, opts RouterOptions, logger *zap.Logger) (*gin.Engine, error) {
	r := gin.New()

	// Add recovery middleware (must be first)
	r.Use(middleware.RecoveryMiddleware(logger))

	origins := opts.AllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}))

	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.RequestLoggingMiddleware(logger))
	r.Use(middleware.ErrorLoggingMiddleware(logger))

	if opts.ValidateRequests {
		doc, err := api.GetSwagger()
		if err != nil {
			return nil, fmt.Errorf("failed to load API contract: %w", err)
		}
		validator, err := middleware.OpenAPIValidationMiddleware(doc, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to build request validator: %w", err)
		}
		r.Use(validator)
	}

	api.RegisterHandlers(r, si)

	return r, nil
}
