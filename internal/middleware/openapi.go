package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/legacy"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OpenAPIValidationMiddleware rejects requests that do not match the
// operation's parameters or request body schema. Requests for paths the
// document does not describe pass through untouched.
func OpenAPIValidationMiddleware(doc *openapi3.T, logger *zap.Logger) (gin.HandlerFunc, error) {
	router, err := legacy.NewRouter(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build openapi router: %w", err)
	}

	options := &openapi3filter.Options{
		MultiError:         false,
		AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
	}

	return func(c *gin.Context) {
		route, pathParams, err := router.FindRoute(c.Request)
		if err != nil {
			if !errors.Is(err, routers.ErrPathNotFound) && !errors.Is(err, routers.ErrMethodNotAllowed) {
				logger.Warn("openapi route lookup failed",
					zap.Error(err),
					zap.String("path", c.Request.URL.Path),
				)
			}
			c.Next()
			return
		}

		input := &openapi3filter.RequestValidationInput{
			Request:    c.Request,
			PathParams: pathParams,
			Route:      route,
			Options:    options,
		}

		if err := openapi3filter.ValidateRequest(c.Request.Context(), input); err != nil {
			logger.Debug("request failed openapi validation",
				zap.Error(err),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
			)
			details := validationDetails(err)
			c.AbortWithStatusJSON(http.StatusBadRequest, api.ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Request does not match the API contract",
				Details: &details,
			})
			return
		}

		c.Next()
	}, nil
}

// validationDetails trims kin-openapi's verbose schema dump down to the reason
func validationDetails(err error) string {
	var reqErr *openapi3filter.RequestError
	if !errors.As(err, &reqErr) {
		return err.Error()
	}

	prefix := ""
	if reqErr.Parameter != nil {
		prefix = fmt.Sprintf("parameter %q: ", reqErr.Parameter.Name)
	}

	var schemaErr *openapi3.SchemaError
	if errors.As(reqErr.Err, &schemaErr) {
		if pointer := schemaErr.JSONPointer(); len(pointer) > 0 {
			return prefix + strings.Join(pointer, ".") + ": " + schemaErr.Reason
		}
		return prefix + schemaErr.Reason
	}
	if reqErr.Reason != "" {
		return prefix + reqErr.Reason
	}
	if reqErr.Err != nil {
		return prefix + reqErr.Err.Error()
	}
	return err.Error()
}
