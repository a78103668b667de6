package stress

import (
	"math"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
)

// Documented measurement bounds. Values past these are clamped before scoring.
const (
	MinSleepHours      = 0.0
	MaxSleepHours      = 24.0
	MinRespirationRate = 5
	MaxRespirationRate = 50
	MinMaxHeartRate    = 50
	MaxMaxHeartRate    = 220
	MinMoodRating      = 1
	MaxMoodRating      = 10

	MinScore = 0
	MaxScore = 100
)

// FactorScores holds the point contribution of each factor before clamping
type FactorScores struct {
	Sleep         int
	BloodPressure int
	Respiration   int
	HeartRate     int
	Caffeine      int
	Mood          int
}

// Total returns the unclamped sum of all factor contributions
func (f FactorScores) Total() int {
	return f.Sleep + f.BloodPressure + f.Respiration + f.HeartRate + f.Caffeine + f.Mood
}

// band is a single factor band; the first band whose predicate holds applies
type band[T any] struct {
	match  func(T) bool
	points int
}

type pressure struct{ systolic, diastolic int }

var sleepBands = []band[float64]{
	{func(h float64) bool { return h < 6 }, 25},
	{func(h float64) bool { return h < 7 }, 15},
	{func(h float64) bool { return h > 9 }, 10},
}

var pressureBands = []band[pressure]{
	{func(p pressure) bool { return p.systolic > 140 || p.diastolic > 90 }, 20},
	{func(p pressure) bool { return p.systolic > 130 || p.diastolic > 85 }, 15},
	{func(p pressure) bool { return p.systolic > 120 || p.diastolic > 80 }, 10},
}

var respirationBands = []band[int]{
	{func(r int) bool { return r > 24 }, 15},
	{func(r int) bool { return r > 20 }, 10},
	{func(r int) bool { return r < 10 }, 5},
}

var heartRateBands = []band[int]{
	{func(hr int) bool { return hr > 180 }, 15},
	{func(hr int) bool { return hr > 160 }, 10},
	{func(hr int) bool { return hr > 140 }, 5},
}

var caffeineBands = []band[int]{
	{func(c int) bool { return c > 4 }, 10},
	{func(c int) bool { return c > 2 }, 5},
}

var moodBands = []band[int]{
	{func(m int) bool { return m <= 3 }, 20},
	{func(m int) bool { return m <= 5 }, 10},
	{func(m int) bool { return m >= 8 }, -5},
}

func score[T any](bands []band[T], v T) int {
	for _, b := range bands {
		if b.match(v) {
			return b.points
		}
	}
	return 0
}

// categoryBand maps a score threshold to its category presentation
type categoryBand struct {
	above           int
	category        model.StressCategory
	color           model.OrbColor
	intensity       float64
	recommendations []string
}

// categoryBands is ordered by descending threshold; the first band whose
// threshold the score exceeds wins.
var categoryBands = []categoryBand{
	{
		above:     70,
		category:  model.CategoryHighStress,
		color:     model.OrbColorRed,
		intensity: 0.9,
		recommendations: []string{
			"Consider speaking with a counselor or mental health professional",
			"Try our guided breathing exercises to help manage immediate stress",
			"Listen to our calming music therapy sessions",
			"Prioritize getting 7-9 hours of sleep tonight",
			"Reduce caffeine intake and try herbal tea instead",
			"Take short breaks throughout your day for mindfulness",
		},
	},
	{
		above:     40,
		category:  model.CategoryModerateStress,
		color:     model.OrbColorAmber,
		intensity: 0.6,
		recommendations: []string{
			"Practice daily stress-reduction exercises from our library",
			"Try our music therapy sessions for relaxation",
			"Maintain a consistent sleep schedule",
			"Consider light physical activity like walking or yoga",
			"Use our chatbot for supportive conversation",
			"Take regular breaks from studying or work",
		},
	},
	{
		above:     20,
		category:  model.CategoryLowStress,
		color:     model.OrbColorBlue,
		intensity: 0.4,
		recommendations: []string{
			"You're doing well! Keep up your current wellness routine",
			"Try our music therapy for continued relaxation",
			"Maintain your healthy sleep habits",
			"Consider our exercise recommendations for ongoing wellness",
			"Use our resources proactively to maintain your calm state",
		},
	},
	{
		above:     math.MinInt,
		category:  model.CategoryVeryCalm,
		color:     model.OrbColorGreen,
		intensity: 0.3,
		recommendations: []string{
			"Excellent! You're managing stress very well",
			"Continue your current healthy habits",
			"Consider sharing your wellness strategies with friends",
			"Use our resources to maintain this positive state",
			"You might enjoy our uplifting music therapy sessions",
		},
	},
}

// Factors computes the per-factor contributions for an input after clamping
// it to the documented bounds.
func Factors(in model.MeasurementInput) FactorScores {
	in = Clamp(in)
	return FactorScores{
		Sleep:         score(sleepBands, in.SleepHours),
		BloodPressure: score(pressureBands, pressure{in.Systolic, in.Diastolic}),
		Respiration:   score(respirationBands, in.RespirationRate),
		HeartRate:     score(heartRateBands, in.MaxHeartRate),
		Caffeine:      score(caffeineBands, in.CaffeineIntake),
		Mood:          score(moodBands, in.MoodRating),
	}
}

// Evaluate maps a measurement tuple to a stress assessment.
// It is pure and total: the factor sum is clamped to [0, 100] and the
// category is the first band whose threshold the score exceeds.
func Evaluate(in model.MeasurementInput) model.StressAssessment {
	total := Factors(in).Total()
	s := min(max(total, MinScore), MaxScore)

	b := categorize(s)
	recs := make([]string, len(b.recommendations))
	copy(recs, b.recommendations)

	return model.StressAssessment{
		Score:           s,
		Category:        b.category,
		Color:           b.color,
		Intensity:       b.intensity,
		Recommendations: recs,
	}
}

// categorize returns the category band for an already clamped score
func categorize(score int) categoryBand {
	for _, b := range categoryBands {
		if score > b.above {
			return b
		}
	}
	return categoryBands[len(categoryBands)-1]
}

// Category returns the category label for a score
func Category(score int) model.StressCategory {
	return categorize(score).category
}

// Clamp pulls every field of the input into its documented range.
// Blood pressure halves only need to be positive.
func Clamp(in model.MeasurementInput) model.MeasurementInput {
	if math.IsNaN(in.SleepHours) {
		in.SleepHours = MinSleepHours
	}
	in.SleepHours = math.Min(math.Max(in.SleepHours, MinSleepHours), MaxSleepHours)
	in.Systolic = max(in.Systolic, 1)
	in.Diastolic = max(in.Diastolic, 1)
	in.RespirationRate = min(max(in.RespirationRate, MinRespirationRate), MaxRespirationRate)
	in.MaxHeartRate = min(max(in.MaxHeartRate, MinMaxHeartRate), MaxMaxHeartRate)
	in.CaffeineIntake = max(in.CaffeineIntake, 0)
	in.MoodRating = min(max(in.MoodRating, MinMoodRating), MaxMoodRating)
	return in
}
