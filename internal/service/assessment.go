package service

import (
	"context"
	"math"
	"strconv"
	"strings"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/internal/stress"
	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"go.uber.org/zap"
)

// Accepted ranges for the assessment form
const (
	MinCaffeineIntake = 0
	MaxCaffeineIntake = 20
	MaxBloodPressure  = 300
)

// AssessmentRequest carries the raw string-typed fields of the assessment form
type AssessmentRequest struct {
	SleepHours      string
	BloodPressure   string
	RespirationRate string
	MaxHeartRate    string
	CaffeineIntake  string
	MoodRating      string
}

// AssessmentService validates measurements and runs the scoring engine
type AssessmentService struct {
	logger *zap.Logger
}

// NewAssessmentService creates a new AssessmentService
func NewAssessmentService(logger *zap.Logger) *AssessmentService {
	return &AssessmentService{
		logger: logger,
	}
}

// Assess parses the request and evaluates it
func (s *AssessmentService) Assess(ctx context.Context, req AssessmentRequest) (model.StressAssessment, error) {
	in, err := ParseMeasurements(req)
	if err != nil {
		s.logger.Debug("assessment rejected", zap.Error(err))
		return model.StressAssessment{}, err
	}

	result := stress.Evaluate(in)

	s.logger.Info("stress assessed",
		zap.Int("score", result.Score),
		zap.String("category", string(result.Category)),
	)

	return result, nil
}

// ParseMeasurements converts and range-checks the raw form fields.
// Missing optional fields take their defaults; a blood pressure reading
// missing either half defaults that half to 120/80.
func ParseMeasurements(req AssessmentRequest) (model.MeasurementInput, error) {
	in := model.MeasurementInput{
		CaffeineIntake: model.DefaultCaffeineIntake,
		MoodRating:     model.DefaultMoodRating,
	}

	sleep, err := parseNumber("sleepHours", req.SleepHours, true)
	if err != nil {
		return in, err
	}
	if sleep < stress.MinSleepHours || sleep > stress.MaxSleepHours {
		return in, invalid("sleepHours", "must be between 0 and 24")
	}
	in.SleepHours = sleep

	if in.Systolic, in.Diastolic, err = parseBloodPressure(req.BloodPressure); err != nil {
		return in, err
	}

	if in.RespirationRate, err = parseInt("respirationRate", req.RespirationRate, true, stress.MinRespirationRate, stress.MaxRespirationRate); err != nil {
		return in, err
	}
	if in.MaxHeartRate, err = parseInt("maxHeartRate", req.MaxHeartRate, true, stress.MinMaxHeartRate, stress.MaxMaxHeartRate); err != nil {
		return in, err
	}

	if strings.TrimSpace(req.CaffeineIntake) != "" {
		if in.CaffeineIntake, err = parseInt("caffeineIntake", req.CaffeineIntake, false, MinCaffeineIntake, MaxCaffeineIntake); err != nil {
			return in, err
		}
	}
	if strings.TrimSpace(req.MoodRating) != "" {
		if in.MoodRating, err = parseInt("moodRating", req.MoodRating, false, stress.MinMoodRating, stress.MaxMoodRating); err != nil {
			return in, err
		}
	}

	return in, nil
}

func parseBloodPressure(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, invalid("bloodPressure", "is required")
	}

	systolic, diastolic := model.DefaultSystolic, model.DefaultDiastolic
	parts := strings.SplitN(raw, "/", 2)

	if v := strings.TrimSpace(parts[0]); v != "" {
		n, err := wholeNumber(v)
		if err != nil || n <= 0 || n > MaxBloodPressure {
			return 0, 0, invalid("bloodPressure", "systolic must be a whole number between 1 and %d", MaxBloodPressure)
		}
		systolic = n
	}
	if len(parts) == 2 {
		if v := strings.TrimSpace(parts[1]); v != "" {
			n, err := wholeNumber(v)
			if err != nil || n <= 0 || n > MaxBloodPressure {
				return 0, 0, invalid("bloodPressure", "diastolic must be a whole number between 1 and %d", MaxBloodPressure)
			}
			diastolic = n
		}
	}

	return systolic, diastolic, nil
}

func parseNumber(field, raw string, required bool) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if required {
			return 0, invalid(field, "is required")
		}
		return 0, nil
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "must be a number")
	}
	return v, nil
}

func parseInt(field, raw string, required bool, lo, hi int) (int, error) {
	v, err := parseNumber(field, raw, required)
	if err != nil {
		return 0, err
	}
	if v != math.Trunc(v) {
		return 0, invalid(field, "must be a whole number")
	}
	if v < float64(lo) || v > float64(hi) {
		return 0, invalid(field, "must be between %d and %d", lo, hi)
	}
	return int(v), nil
}

// wholeNumber parses a reading that must carry no fractional part
func wholeNumber(raw string) (int, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, strconv.ErrSyntax
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, strconv.ErrRange
	}
	return int(v), nil
}
