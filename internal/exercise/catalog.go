package exercise

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/Spandanabvs/KALPATHON-HELLO-KITTY/pkg/model"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

// ErrExerciseNotFound is returned when an exercise id is not in the catalog
var ErrExerciseNotFound = errors.New("exercise not found")

// FilterAll disables a catalog filter
const FilterAll = "all"

var (
	ExerciseCategories = []string{"Breathing", "Yoga", "Meditation", "Movement"}
	Difficulties       = []string{"Beginner", "Intermediate", "Advanced"}
	TrackCategories    = []string{"Ambient", "Guided Meditation", "Sleep", "Focus"}
)

type catalogFile struct {
	Exercises []model.Exercise `yaml:"exercises"`
	Tracks    []model.Track    `yaml:"tracks"`
}

// Catalog is the read-only library of guided exercises and music tracks
type Catalog struct {
	exercises []model.Exercise
	tracks    []model.Track
	byID      map[int]int
}

// Filter narrows an exercise listing. Empty or "all" fields match everything.
type Filter struct {
	Category   string
	Difficulty string
}

// DefaultCatalog parses the embedded catalog
func DefaultCatalog() (*Catalog, error) {
	return LoadCatalog(catalogYAML)
}

// LoadCatalog parses and validates a YAML catalog document
func LoadCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	c := &Catalog{
		exercises: file.Exercises,
		tracks:    file.Tracks,
		byID:      make(map[int]int, len(file.Exercises)),
	}

	for i, ex := range file.Exercises {
		if _, dup := c.byID[ex.ID]; dup {
			return nil, fmt.Errorf("duplicate exercise id: %d", ex.ID)
		}
		if len(ex.Steps) == 0 {
			return nil, fmt.Errorf("exercise %d: %w", ex.ID, ErrNoSteps)
		}
		if !slices.Contains(ExerciseCategories, ex.Category) {
			return nil, fmt.Errorf("exercise %d: unknown category %q", ex.ID, ex.Category)
		}
		if !slices.Contains(Difficulties, ex.Difficulty) {
			return nil, fmt.Errorf("exercise %d: unknown difficulty %q", ex.ID, ex.Difficulty)
		}
		c.byID[ex.ID] = i
	}

	for _, tr := range file.Tracks {
		if !slices.Contains(TrackCategories, tr.Category) {
			return nil, fmt.Errorf("track %d: unknown category %q", tr.ID, tr.Category)
		}
	}

	return c, nil
}

// Exercises lists exercises matching the filter in catalog order
func (c *Catalog) Exercises(f Filter) []model.Exercise {
	out := make([]model.Exercise, 0, len(c.exercises))
	for _, ex := range c.exercises {
		if matches(f.Category, ex.Category) && matches(f.Difficulty, ex.Difficulty) {
			out = append(out, cloneExercise(ex))
		}
	}
	return out
}

// Exercise returns a single exercise by id
func (c *Catalog) Exercise(id int) (model.Exercise, error) {
	i, ok := c.byID[id]
	if !ok {
		return model.Exercise{}, fmt.Errorf("%w: %d", ErrExerciseNotFound, id)
	}
	return cloneExercise(c.exercises[i]), nil
}

// Tracks lists music tracks in the given category, or all of them
func (c *Catalog) Tracks(category string) []model.Track {
	out := make([]model.Track, 0, len(c.tracks))
	for _, tr := range c.tracks {
		if matches(category, tr.Category) {
			out = append(out, tr)
		}
	}
	return out
}

func matches(filter, value string) bool {
	filter = strings.TrimSpace(filter)
	return filter == "" || strings.EqualFold(filter, FilterAll) || strings.EqualFold(filter, value)
}

func cloneExercise(ex model.Exercise) model.Exercise {
	ex.Steps = slices.Clone(ex.Steps)
	ex.Benefits = slices.Clone(ex.Benefits)
	return ex
}
