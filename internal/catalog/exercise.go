package catalog

// Exercise is one immutable reference entry of the exercise catalog,
// bulk-loaded from the static dataset and never mutated afterwards.
type Exercise struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Force            string        `json:"force,omitempty"`
	Level            string        `json:"level"`
	Mechanic         string        `json:"mechanic,omitempty"`
	Equipment        string        `json:"equipment,omitempty"`
	PrimaryMuscles   []MuscleGroup `json:"primaryMuscles"`
	SecondaryMuscles []MuscleGroup `json:"secondaryMuscles"`
	Instructions     []string      `json:"instructions,omitempty"`
	Category         string        `json:"category"`
	Images           []string      `json:"images,omitempty"`
}

const (
	LevelBeginner     = "beginner"
	LevelIntermediate = "intermediate"
	LevelExpert       = "expert"
)

var Categories = []string{
	"powerlifting",
	"strength",
	"stretching",
	"cardio",
	"olympic weightlifting",
	"strongman",
	"plyometrics",
}
