package workoutlog

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrLogNotFound = errors.New("workout log not found")
	// ErrValidation marks malformed client input. Handlers map it to 400,
	// as opposed to not-found (404) and everything else (500).
	ErrValidation = errors.New("invalid input")
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04:05"
)

// Set is a single set within a workout session. Reps and Weight are
// pointers so that an absent field can be told apart from an explicit
// zero: a set missing either one is malformed input for the analytics
// layer and must fail the whole computation.
type Set struct {
	Reps   *int     `json:"reps,omitempty"`
	Weight *float64 `json:"weight,omitempty"`
}

func NewSet(reps int, weight float64) Set {
	return Set{
		Reps:   &reps,
		Weight: &weight,
	}
}

// Factor is the load factor of the set: reps * weight.
// Returns false when reps or weight is missing.
func (s Set) Factor() (float64, bool) {
	if s.Reps == nil || s.Weight == nil {
		return 0, false
	}
	return float64(*s.Reps) * *s.Weight, true
}

// WorkoutLog is one recorded exercise session of a user.
type WorkoutLog struct {
	ID           int    `json:"logId"`
	UserUID      string `json:"userUid"`
	ExerciseID   string `json:"exerciseId"`
	ExerciseName string `json:"exerciseName,omitempty"`
	WorkoutDate  string `json:"workoutDate"` // YYYY-MM-DD
	WorkoutTime  string `json:"workoutTime"` // HH:MM:SS
	Sets         []Set  `json:"sets"`
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return fmt.Errorf("%w: invalid date format, use YYYY-MM-DD", ErrValidation)
	}
	return nil
}

func ValidateTime(timeOfDay string) error {
	if _, err := time.Parse(TimeLayout, timeOfDay); err == nil {
		return nil
	}
	if _, err := time.Parse("15:04", timeOfDay); err == nil {
		return nil
	}
	return fmt.Errorf("%w: invalid time format, use HH:MM[:SS]", ErrValidation)
}
