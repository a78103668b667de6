package stress

import (
	"testing"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var expectedPresentation = map[model.StressCategory]struct {
	color     model.OrbColor
	intensity float64
}{
	model.CategoryHighStress:     {model.OrbColorRed, 0.9},
	model.CategoryModerateStress: {model.OrbColorAmber, 0.6},
	model.CategoryLowStress:      {model.OrbColorBlue, 0.4},
	model.CategoryVeryCalm:       {model.OrbColorGreen, 0.3},
}

func expectedCategory(score int) model.StressCategory {
	switch {
	case score > 70:
		return model.CategoryHighStress
	case score > 40:
		return model.CategoryModerateStress
	case score > 20:
		return model.CategoryLowStress
	default:
		return model.CategoryVeryCalm
	}
}

// Score is bounded, category agrees with the thresholds and the display
// fields map 1:1 from the category.
func TestProperty_AssessmentConsistency(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 500
	properties := gopter.NewProperties(parameters)

	properties.Property("score in [0,100] with a consistent category", prop.ForAll(
		func(sleep float64, systolic, diastolic, respiration, heartRate, caffeine, mood int) bool {
			in := model.MeasurementInput{
				SleepHours:      sleep,
				Systolic:        systolic,
				Diastolic:       diastolic,
				RespirationRate: respiration,
				MaxHeartRate:    heartRate,
				CaffeineIntake:  caffeine,
				MoodRating:      mood,
			}
			result := Evaluate(in)

			if result.Score < 0 || result.Score > 100 {
				t.Logf("score out of range: %d", result.Score)
				return false
			}
			if result.Category != expectedCategory(result.Score) {
				t.Logf("score %d got category %q", result.Score, result.Category)
				return false
			}
			want := expectedPresentation[result.Category]
			if result.Color != want.color || result.Intensity != want.intensity {
				t.Logf("category %q got color %s intensity %v", result.Category, result.Color, result.Intensity)
				return false
			}
			if len(result.Recommendations) < 5 || len(result.Recommendations) > 6 {
				t.Logf("unexpected recommendation count %d", len(result.Recommendations))
				return false
			}
			return true
		},
		gen.Float64Range(0, 24),
		gen.IntRange(80, 200),
		gen.IntRange(40, 130),
		gen.IntRange(5, 50),
		gen.IntRange(50, 220),
		gen.IntRange(0, 10),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// Evaluate is a pure function of its input
func TestProperty_EvaluateIsDeterministic(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("evaluate(x) == evaluate(x)", prop.ForAll(
		func(sleep float64, respiration, heartRate, mood int) bool {
			in := model.MeasurementInput{
				SleepHours:      sleep,
				Systolic:        125,
				Diastolic:       82,
				RespirationRate: respiration,
				MaxHeartRate:    heartRate,
				MoodRating:      mood,
			}
			a, b := Evaluate(in), Evaluate(in)
			if a.Score != b.Score || a.Category != b.Category || len(a.Recommendations) != len(b.Recommendations) {
				return false
			}
			for i := range a.Recommendations {
				if a.Recommendations[i] != b.Recommendations[i] {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 24),
		gen.IntRange(5, 50),
		gen.IntRange(50, 220),
		gen.IntRange(1, 10),
	))

	properties.TestingRun(t)
}

// Intensity never decreases as the score rises
func TestProperty_IntensityMonotonicWithScore(t *testing.T) {
	properties := gopter.NewProperties(nil)

	intensity := func(score int) float64 {
		return expectedPresentation[Category(score)].intensity
	}

	properties.Property("higher score never lowers intensity", prop.ForAll(
		func(a, b int) bool {
			if a > b {
				a, b = b, a
			}
			return intensity(a) <= intensity(b)
		},
		gen.IntRange(0, 100),
		gen.IntRange(0, 100),
	))

	properties.TestingRun(t)
}
