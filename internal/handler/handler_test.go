package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/chat"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/exercise"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/middleware"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/notify"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/service"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/api"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newExerciseService(t *testing.T, logger *zap.Logger) *service.ExerciseService {
	t.Helper()
	catalog, err := exercise.DefaultCatalog()
	require.NoError(t, err)

	svc := service.NewExerciseService(catalog, service.ExerciseConfig{
		StepDuration: 30 * time.Second,
		TickInterval: time.Hour,
		MaxSessions:  10,
	}, logger)
	t.Cleanup(svc.CloseAll)
	return svc
}

type testServer struct {
	router   *gin.Engine
	notifier *notify.MockNotifier
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	exercises := newExerciseService(t, logger)
	notifier := &notify.MockNotifier{}

	apiHandler := NewAPIHandler(
		NewHealthHandler(exercises, logger),
		NewStressHandler(service.NewAssessmentService(logger), logger),
		NewChatHandler(service.NewChatService(chat.Default(), logger), logger),
		NewExerciseHandler(exercises, logger),
		NewContactHandler(service.NewContactService(notifier, logger), logger),
	)

	router, err := NewRouter(apiHandler, RouterOptions{ValidateRequests: true}, logger)
	require.NoError(t, err)

	return &testServer{router: router, notifier: notifier}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestGetHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	resp := decode[api.HealthResponse](t, w)
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, ServiceName, resp.Service)
	assert.Equal(t, 0, resp.ActiveSessions)
}

func TestPostStressAssess(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/stress/assess", api.AssessRequest{
		SleepHours:      "5",
		BloodPressure:   "145/95",
		RespirationRate: "26",
		MaxHeartRate:    "185",
		CaffeineIntake:  "5",
		MoodRating:      "2",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[api.AssessResponse](t, w)
	assert.Equal(t, 100, resp.StressLevelScore)
	assert.Equal(t, string(model.CategoryHighStress), resp.Category)
	assert.Equal(t, string(model.OrbColorRed), resp.OrbColor)
	assert.Equal(t, 0.9, resp.OrbIntensity)
	assert.Len(t, resp.Recommendations, 6)
}

func TestPostStressAssess_CalmDefaults(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/stress/assess", api.AssessRequest{
		SleepHours:      "8",
		BloodPressure:   "115/75",
		RespirationRate: "14",
		MaxHeartRate:    "120",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// default mood of 5 contributes 10 points
	resp := decode[api.AssessResponse](t, w)
	assert.Equal(t, 10, resp.StressLevelScore)
	assert.Equal(t, string(model.CategoryVeryCalm), resp.Category)
}

func TestPostStressAssess_MissingRequiredField(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/stress/assess", map[string]string{
		"sleepHours":    "7",
		"bloodPressure": "120/80",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[api.ErrorResponse](t, w).Code)
}

func TestPostChat(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/chat", api.ChatRequest{Message: "I can't sleep and I'm so stressed"})
	require.Equal(t, http.StatusOK, w.Code)

	// stress is checked before sleep
	resp := decode[api.ChatResponse](t, w)
	assert.Contains(t, resp.Reply, "feeling stressed")
	assert.Len(t, resp.Suggestions, 4)
}

func TestPostChat_Fallback(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/chat", api.ChatRequest{Message: "qwerty"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decode[api.ChatResponse](t, w).Reply, "I hear you")
}

func TestGetExercises(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/exercises?category=breathing", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[api.ExerciseListResponse](t, w)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "4-7-8 Breathing Technique", resp.Exercises[0].Title)
	assert.Equal(t, "Box Breathing", resp.Exercises[1].Title)

	w = s.do(t, http.MethodGet, "/api/v1/exercises", nil)
	assert.Equal(t, 6, decode[api.ExerciseListResponse](t, w).Total)
}

func TestGetExercise(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/exercises/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Yoga", decode[model.Exercise](t, w).Category)

	w = s.do(t, http.MethodGet, "/api/v1/exercises/99", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[api.ErrorResponse](t, w).Code)

	w = s.do(t, http.MethodGet, "/api/v1/exercises/abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[api.ErrorResponse](t, w).Code)
}

func TestGetMusicTracks(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/api/v1/music/tracks?category=Focus", nil)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[api.TrackListResponse](t, w)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "Focus Flow", resp.Tracks[0].Title)
	assert.Equal(t, "/audio/focus-flow.mp3", resp.Tracks[0].AudioURL)

	var raw struct {
		Tracks []map[string]any `json:"tracks"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, "/audio/focus-flow.mp3", raw.Tracks[0]["audioUrl"])
	assert.NotContains(t, raw.Tracks[0], "audio_url")
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/exercises/6/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	created := decode[api.SessionResponse](t, w)
	assert.Equal(t, 6, created.ExerciseId)
	assert.Equal(t, "Box Breathing", created.Title)
	assert.Equal(t, model.SessionStatusIdle, created.Status)
	assert.Equal(t, 7, created.StepCount)
	assert.Equal(t, "Sit upright in a comfortable position", created.StepText)
	assert.Equal(t, 30.0, created.RemainingSeconds)

	base := "/api/v1/sessions/" + uuidToString(created.SessionId)

	w = s.do(t, http.MethodPost, base+"/start", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.SessionStatusRunning, decode[api.SessionResponse](t, w).Status)

	w = s.do(t, http.MethodPost, base+"/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	next := decode[api.SessionResponse](t, w)
	assert.Equal(t, 1, next.StepIndex)
	assert.Equal(t, "Exhale all air from your lungs", next.StepText)

	w = s.do(t, http.MethodPost, base+"/pause", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, model.SessionStatusPaused, decode[api.SessionResponse](t, w).Status)

	w = s.do(t, http.MethodPost, base+"/prev", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[api.SessionResponse](t, w).StepIndex)

	s.do(t, http.MethodPost, base+"/next", nil)
	w = s.do(t, http.MethodPost, base+"/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)
	reset := decode[api.SessionResponse](t, w)
	assert.Equal(t, model.SessionStatusIdle, reset.Status)
	assert.Equal(t, 0, reset.StepIndex)

	w = s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, 1, decode[api.HealthResponse](t, w).ActiveSessions)

	w = s.do(t, http.MethodDelete, base, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, base, nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NOT_FOUND", decode[api.ErrorResponse](t, w).Code)
}

func TestSession_UnknownAndMalformedIDs(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/start", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/sessions/not-a-uuid/start", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(t, http.MethodPost, "/api/v1/exercises/42/sessions", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostContact(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/contact", api.ContactRequest{
		Name:    "Asha",
		Email:   "asha@example.com",
		Subject: "Feedback",
		Message: "The breathing exercises help a lot.",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	resp := decode[api.ContactResponse](t, w)
	assert.True(t, resp.Ok)
	assert.Equal(t, service.ContactAcknowledgement, resp.Message)
	assert.Regexp(t, `^MSG-`, resp.Reference)

	sent := s.notifier.Messages()
	require.Len(t, sent, 1)
	assert.Equal(t, resp.Reference, sent[0].Reference)
	assert.Equal(t, "asha@example.com", sent[0].Email)
}

func TestPostContact_MissingSubject(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodPost, "/api/v1/contact", map[string]string{
		"name":    "Asha",
		"email":   "asha@example.com",
		"subject": "",
		"message": "hi",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", decode[api.ErrorResponse](t, w).Code)
	assert.Empty(t, s.notifier.Messages())
}
