package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetApiV1ExercisesParams defines parameters for GetApiV1Exercises.
type GetApiV1ExercisesParams struct {
	Category   *string `form:"category,omitempty" json:"category,omitempty"`
	Difficulty *string `form:"difficulty,omitempty" json:"difficulty,omitempty"`
}

// GetApiV1MusicTracksParams defines parameters for GetApiV1MusicTracks.
type GetApiV1MusicTracksParams struct {
	Category *string `form:"category,omitempty" json:"category,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	GetHealth(c *gin.Context)
	// (POST /api/v1/stress/assess)
	PostApiV1StressAssess(c *gin.Context)
	// (POST /api/v1/chat)
	PostApiV1Chat(c *gin.Context)
	// (GET /api/v1/exercises)
	GetApiV1Exercises(c *gin.Context, params GetApiV1ExercisesParams)
	// (GET /api/v1/exercises/{id})
	GetApiV1ExercisesId(c *gin.Context, id int)
	// (POST /api/v1/exercises/{id}/sessions)
	PostApiV1ExercisesIdSessions(c *gin.Context, id int)
	// (GET /api/v1/sessions/{sessionId})
	GetApiV1SessionsSessionId(c *gin.Context, sessionId openapi_types.UUID)
	// (DELETE /api/v1/sessions/{sessionId})
	DeleteApiV1SessionsSessionId(c *gin.Context, sessionId openapi_types.UUID)
	// (POST /api/v1/sessions/{sessionId}/start)
	PostApiV1SessionsSessionIdStart(c *gin.Context, sessionId openapi_types.UUID)
	// (POST /api/v1/sessions/{sessionId}/pause)
	PostApiV1SessionsSessionIdPause(c *gin.Context, sessionId openapi_types.UUID)
	// (POST /api/v1/sessions/{sessionId}/next)
	PostApiV1SessionsSessionIdNext(c *gin.Context, sessionId openapi_types.UUID)
	// (POST /api/v1/sessions/{sessionId}/prev)
	PostApiV1SessionsSessionIdPrev(c *gin.Context, sessionId openapi_types.UUID)
	// (POST /api/v1/sessions/{sessionId}/reset)
	PostApiV1SessionsSessionIdReset(c *gin.Context, sessionId openapi_types.UUID)
	// (GET /api/v1/music/tracks)
	GetApiV1MusicTracks(c *gin.Context, params GetApiV1MusicTracksParams)
	// (POST /api/v1/contact)
	PostApiV1Contact(c *gin.Context)
}

// ServerInterfaceWrapper converts contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler            ServerInterface
	HandlerMiddlewares []MiddlewareFunc
	ErrorHandler       func(*gin.Context, error, int)
}

// MiddlewareFunc runs before a wrapped handler
type MiddlewareFunc func(c *gin.Context)

func (siw *ServerInterfaceWrapper) runMiddlewares(c *gin.Context) bool {
	for _, middleware := range siw.HandlerMiddlewares {
		middleware(c)
		if c.IsAborted() {
			return false
		}
	}
	return true
}

func (siw *ServerInterfaceWrapper) exerciseID(c *gin.Context) (int, bool) {
	var id int
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter id: %w", err), http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (siw *ServerInterfaceWrapper) sessionID(c *gin.Context) (openapi_types.UUID, bool) {
	var sessionId openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", "sessionId", c.Param("sessionId"), &sessionId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter sessionId: %w", err), http.StatusBadRequest)
		return sessionId, false
	}
	return sessionId, true
}

// GetHealth operation middleware
func (siw *ServerInterfaceWrapper) GetHealth(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.GetHealth(c)
	}
}

// PostApiV1StressAssess operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1StressAssess(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.PostApiV1StressAssess(c)
	}
}

// PostApiV1Chat operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1Chat(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.PostApiV1Chat(c)
	}
}

// GetApiV1Exercises operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1Exercises(c *gin.Context) {
	var params GetApiV1ExercisesParams

	if err := runtime.BindQueryParameter("form", true, false, "category", c.Request.URL.Query(), &params.Category); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter category: %w", err), http.StatusBadRequest)
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "difficulty", c.Request.URL.Query(), &params.Difficulty); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter difficulty: %w", err), http.StatusBadRequest)
		return
	}

	if siw.runMiddlewares(c) {
		siw.Handler.GetApiV1Exercises(c, params)
	}
}

// GetApiV1ExercisesId operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1ExercisesId(c *gin.Context) {
	id, ok := siw.exerciseID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.GetApiV1ExercisesId(c, id)
	}
}

// PostApiV1ExercisesIdSessions operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1ExercisesIdSessions(c *gin.Context) {
	id, ok := siw.exerciseID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.PostApiV1ExercisesIdSessions(c, id)
	}
}

// GetApiV1SessionsSessionId operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1SessionsSessionId(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.GetApiV1SessionsSessionId(c, sessionId)
	}
}

// DeleteApiV1SessionsSessionId operation middleware
func (siw *ServerInterfaceWrapper) DeleteApiV1SessionsSessionId(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.DeleteApiV1SessionsSessionId(c, sessionId)
	}
}

// PostApiV1SessionsSessionIdStart operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1SessionsSessionIdStart(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.PostApiV1SessionsSessionIdStart(c, sessionId)
	}
}

// PostApiV1SessionsSessionIdPause operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1SessionsSessionIdPause(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.PostApiV1SessionsSessionIdPause(c, sessionId)
	}
}

// PostApiV1SessionsSessionIdNext operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1SessionsSessionIdNext(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.PostApiV1SessionsSessionIdNext(c, sessionId)
	}
}

// PostApiV1SessionsSessionIdPrev operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1SessionsSessionIdPrev(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.PostApiV1SessionsSessionIdPrev(c, sessionId)
	}
}

// PostApiV1SessionsSessionIdReset operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1SessionsSessionIdReset(c *gin.Context) {
	sessionId, ok := siw.sessionID(c)
	if ok && siw.runMiddlewares(c) {
		siw.Handler.PostApiV1SessionsSessionIdReset(c, sessionId)
	}
}

// GetApiV1MusicTracks operation middleware
func (siw *ServerInterfaceWrapper) GetApiV1MusicTracks(c *gin.Context) {
	var params GetApiV1MusicTracksParams

	if err := runtime.BindQueryParameter("form", true, false, "category", c.Request.URL.Query(), &params.Category); err != nil {
		siw.ErrorHandler(c, fmt.Errorf("Invalid format for parameter category: %w", err), http.StatusBadRequest)
		return
	}

	if siw.runMiddlewares(c) {
		siw.Handler.GetApiV1MusicTracks(c, params)
	}
}

// PostApiV1Contact operation middleware
func (siw *ServerInterfaceWrapper) PostApiV1Contact(c *gin.Context) {
	if siw.runMiddlewares(c) {
		siw.Handler.PostApiV1Contact(c)
	}
}

// GinServerOptions provides options for the Gin server.
type GinServerOptions struct {
	BaseURL      string
	Middlewares  []MiddlewareFunc
	ErrorHandler func(*gin.Context, error, int)
}

// RegisterHandlers creates http.Handler with routing matching OpenAPI spec.
func RegisterHandlers(router gin.IRouter, si ServerInterface) {
	RegisterHandlersWithOptions(router, si, GinServerOptions{})
}

// RegisterHandlersWithOptions creates http.Handler with additional options
func RegisterHandlersWithOptions(router gin.IRouter, si ServerInterface, options GinServerOptions) {
	errorHandler := options.ErrorHandler
	if errorHandler == nil {
		errorHandler = func(c *gin.Context, err error, statusCode int) {
			details := err.Error()
			c.AbortWithStatusJSON(statusCode, ErrorResponse{
				Code:    "VALIDATION_ERROR",
				Message: "Invalid request parameters",
				Details: &details,
			})
		}
	}

	wrapper := ServerInterfaceWrapper{
		Handler:            si,
		HandlerMiddlewares: options.Middlewares,
		ErrorHandler:       errorHandler,
	}

	base := options.BaseURL
	router.GET(base+"/health", wrapper.GetHealth)
	router.POST(base+"/api/v1/stress/assess", wrapper.PostApiV1StressAssess)
	router.POST(base+"/api/v1/chat", wrapper.PostApiV1Chat)
	router.GET(base+"/api/v1/exercises", wrapper.GetApiV1Exercises)
	router.GET(base+"/api/v1/exercises/:id", wrapper.GetApiV1ExercisesId)
	router.POST(base+"/api/v1/exercises/:id/sessions", wrapper.PostApiV1ExercisesIdSessions)
	router.GET(base+"/api/v1/sessions/:sessionId", wrapper.GetApiV1SessionsSessionId)
	router.DELETE(base+"/api/v1/sessions/:sessionId", wrapper.DeleteApiV1SessionsSessionId)
	router.POST(base+"/api/v1/sessions/:sessionId/start", wrapper.PostApiV1SessionsSessionIdStart)
	router.POST(base+"/api/v1/sessions/:sessionId/pause", wrapper.PostApiV1SessionsSessionIdPause)
	router.POST(base+"/api/v1/sessions/:sessionId/next", wrapper.PostApiV1SessionsSessionIdNext)
	router.POST(base+"/api/v1/sessions/:sessionId/prev", wrapper.PostApiV1SessionsSessionIdPrev)
	router.POST(base+"/api/v1/sessions/:sessionId/reset", wrapper.PostApiV1SessionsSessionIdReset)
	router.GET(base+"/api/v1/music/tracks", wrapper.GetApiV1MusicTracks)
	router.POST(base+"/api/v1/contact", wrapper.PostApiV1Contact)
}
