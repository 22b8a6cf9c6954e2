package stats

import (
	"context"
	"fmt"
	"math"

	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/internal/workoutlog"

	"go.opentelemetry.io/otel/attribute"
)

const (
	primaryMuscleWeight   = 2
	secondaryMuscleWeight = 1
	// loadBaseline is the raw load score that maps to 100%.
	// TODO: make this configurable per user fitness level once the
	// frontend settings page lands.
	loadBaseline = 10000
)

type exerciseResolver interface {
	Resolve(exerciseID string) (*catalog.Exercise, bool)
}

// MusclePercentages maps every known muscle group to its load
// percentage, 0 to 100. All groups are always present.
type MusclePercentages map[catalog.MuscleGroup]float64

// Analyzer turns a batch of workout logs into per muscle group load
// percentages. A set contributes reps times weight to every muscle of
// its exercise, primary muscles counting double.
type Analyzer struct {
	exercises exerciseResolver
}

func NewAnalyzer(exercises exerciseResolver) *Analyzer {
	return &Analyzer{
		exercises: exercises,
	}
}

func (a *Analyzer) ComputeMusclePercentages(ctx context.Context, logs []workoutlog.WorkoutLog) (_ MusclePercentages, err error) {
	_, span := tracing.GlobalTracer.Start(ctx, "analyzer.musclePercentages")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("logs.count", len(logs)))

	loadCounts := make(map[catalog.MuscleGroup]float64, len(catalog.AllMuscleGroups))
	for _, muscleGroup := range catalog.AllMuscleGroups {
		loadCounts[muscleGroup] = 0
	}

	for _, workoutLog := range logs {
		exercise, ok := a.exercises.Resolve(workoutLog.ExerciseID)
		if !ok {
			// exercise gone from the catalog, old log survives but
			// contributes nothing
			continue
		}

		for _, set := range workoutLog.Sets {
			factor, ok := set.Factor()
			if !ok {
				return nil, fmt.Errorf(
					"%w: log %d has a set without reps or weight",
					workoutlog.ErrValidation, workoutLog.ID,
				)
			}
			for _, muscleGroup := range exercise.PrimaryMuscles {
				loadCounts[muscleGroup] += primaryMuscleWeight * factor
			}
			for _, muscleGroup := range exercise.SecondaryMuscles {
				loadCounts[muscleGroup] += secondaryMuscleWeight * factor
			}
		}
	}

	percentages := make(MusclePercentages, len(loadCounts))
	for muscleGroup, count := range loadCounts {
		percentages[muscleGroup] = loadToPercentage(count)
	}
	return percentages, nil
}

// loadToPercentage scales a raw load count against the baseline,
// rounded to two decimals and capped at 100.
func loadToPercentage(count float64) float64 {
	pct := math.Round(count/loadBaseline*100*100) / 100
	return math.Min(pct, 100)
}
