package model

import "time"

// MeasurementInput holds the parsed physiological and lifestyle measurements
// used to compute a stress assessment.
type MeasurementInput struct {
	SleepHours      float64 `json:"sleepHours"`
	Systolic        int     `json:"systolic"`
	Diastolic       int     `json:"diastolic"`
	RespirationRate int     `json:"respirationRate"`
	MaxHeartRate    int     `json:"maxHeartRate"`
	CaffeineIntake  int     `json:"caffeineIntake"`
	MoodRating      int     `json:"moodRating"`
}

// Measurement defaults applied when optional fields are absent
const (
	DefaultCaffeineIntake = 0
	DefaultMoodRating     = 5
	DefaultSystolic       = 120
	DefaultDiastolic      = 80
)

// StressCategory is one of four ordered severity bands
type StressCategory string

const (
	CategoryHighStress     StressCategory = "High Stress / Anxious"
	CategoryModerateStress StressCategory = "Moderate Stress"
	CategoryLowStress      StressCategory = "Low Stress / Calm"
	CategoryVeryCalm       StressCategory = "Very Calm / Happy"
)

// OrbColor is the hex display color mapped 1:1 from a StressCategory
type OrbColor string

const (
	OrbColorRed   OrbColor = "#ef4444"
	OrbColorAmber OrbColor = "#f59e0b"
	OrbColorBlue  OrbColor = "#3b82f6"
	OrbColorGreen OrbColor = "#10b981"
)

// StressAssessment is the immutable result of evaluating a MeasurementInput
type StressAssessment struct {
	Score           int            `json:"score"`
	Category        StressCategory `json:"category"`
	Color           OrbColor       `json:"color"`
	Intensity       float64        `json:"intensity"`
	Recommendations []string       `json:"recommendations"`
}

// ChatReply is the payload returned for a user utterance
type ChatReply struct {
	Rule        string   `json:"rule"`
	Reply       string   `json:"reply"`
	Suggestions []string `json:"suggestions"`
}

// SessionStatus represents the state of a guided exercise session
type SessionStatus string

const (
	SessionStatusIdle      SessionStatus = "idle"
	SessionStatusRunning   SessionStatus = "running"
	SessionStatusPaused    SessionStatus = "paused"
	SessionStatusCompleted SessionStatus = "completed"
)

// Exercise represents a guided activity in the exercise library
type Exercise struct {
	ID          int      `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	Steps       []string `json:"steps" yaml:"steps"`
	Duration    string   `json:"duration" yaml:"duration"`
	Difficulty  string   `json:"difficulty" yaml:"difficulty"`
	Category    string   `json:"category" yaml:"category"`
	Benefits    []string `json:"benefits" yaml:"benefits"`
	Quote       string   `json:"quote" yaml:"quote"`
}

// Track represents a music therapy track
type Track struct {
	ID       int    `json:"id" yaml:"id"`
	Title    string `json:"title" yaml:"title"`
	Artist   string `json:"artist" yaml:"artist"`
	Duration string `json:"duration" yaml:"duration"`
	Category string `json:"category" yaml:"category"`
	AudioURL string `json:"audioUrl" yaml:"audio_url"`
}

// ContactMessage represents a submitted contact form
type ContactMessage struct {
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Subject    string    `json:"subject"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"receivedAt"`
}
