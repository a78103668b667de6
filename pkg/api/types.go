package api

import (
	"time"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ErrorResponse is the error envelope returned by every endpoint
type ErrorResponse struct {
	Code    string  `json:"code"`
	Message string  `json:"message"`
	Details *string `json:"details,omitempty"`
}

// HealthResponse defines model for HealthResponse.
type HealthResponse struct {
	Status         string `json:"status"`
	Service        string `json:"service"`
	Version        string `json:"version"`
	ActiveSessions int    `json:"activeSessions"`
}

// AssessRequest carries the stress form fields as entered by the user
type AssessRequest struct {
	SleepHours      string `json:"sleepHours"`
	BloodPressure   string `json:"bloodPressure"`
	RespirationRate string `json:"respirationRate"`
	MaxHeartRate    string `json:"maxHeartRate"`
	CaffeineIntake  string `json:"caffeineIntake,omitempty"`
	MoodRating      string `json:"moodRating,omitempty"`
}

// AssessResponse defines model for AssessResponse.
type AssessResponse struct {
	StressLevelScore int      `json:"stressLevelScore"`
	Category         string   `json:"category"`
	OrbColor         string   `json:"orbColor"`
	OrbIntensity     float64  `json:"orbIntensity"`
	Recommendations  []string `json:"recommendations"`
}

// ChatRequest defines model for ChatRequest.
type ChatRequest struct {
	Message string `json:"message" binding:"required"`
}

// ChatResponse defines model for ChatResponse.
type ChatResponse struct {
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// ExerciseListResponse defines model for ExerciseListResponse.
type ExerciseListResponse struct {
	Exercises []model.Exercise `json:"exercises"`
	Total     int              `json:"total"`
}

// SessionResponse is the wire form of a step session snapshot
type SessionResponse struct {
	SessionId           openapi_types.UUID  `json:"sessionId"`
	ExerciseId          int                 `json:"exerciseId"`
	Title               string              `json:"title"`
	Status              model.SessionStatus `json:"status"`
	StepIndex           int                 `json:"stepIndex"`
	StepCount           int                 `json:"stepCount"`
	StepText            string              `json:"stepText"`
	StepDurationSeconds float64             `json:"stepDurationSeconds"`
	RemainingSeconds    float64             `json:"remainingSeconds"`
	ElapsedSeconds      float64             `json:"elapsedSeconds"`
	Progress            float64             `json:"progress"`
	Completed           bool                `json:"completed"`
	CreatedAt           time.Time           `json:"createdAt"`
}

// TrackListResponse defines model for TrackListResponse.
type TrackListResponse struct {
	Tracks []model.Track `json:"tracks"`
	Total  int           `json:"total"`
}

// ContactRequest defines model for ContactRequest.
type ContactRequest struct {
	Name    string              `json:"name"`
	Email   openapi_types.Email `json:"email"`
	Subject string              `json:"subject"`
	Message string              `json:"message"`
}

// ContactResponse defines model for ContactResponse.
type ContactResponse struct {
	Ok        bool   `json:"ok"`
	Message   string `json:"message"`
	Reference string `json:"reference"`
}
