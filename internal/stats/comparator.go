package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/internal/users"
	"github.com/drazenc/fittrack/internal/workoutlog"

	"go.opentelemetry.io/otel/attribute"
)

// TODO: replace with a real formula once enough historical data is
// collected to calibrate one (needs the per-user baseline work).
const placeholderProgressPercentage = 79

type logSource interface {
	ListAll(ctx context.Context, params workoutlog.LogParams) ([]workoutlog.WorkoutLog, error)
}

type userSource interface {
	Get(ctx context.Context, uid string) (*users.User, error)
}

// WindowSummary aggregates one week of training activity.
type WindowSummary struct {
	NumOfLogs    int `json:"numOfLogs"`
	NumOfMuscles int `json:"numOfMuscles"`
	NumOfSets    int `json:"numOfSets"`
}

type Dashboard struct {
	FirstName          string        `json:"firstName"`
	StartDate          string        `json:"startDate"`
	EndDate            string        `json:"endDate"`
	CurrentWeek        WindowSummary `json:"currentWeek"`
	PreviousWeek       WindowSummary `json:"previousWeek"`
	ProgressPercentage int           `json:"progressPercentage"`
}

// Comparator builds the weekly dashboard: the requested week summary
// next to the week immediately before it, both bounds shifted back by
// seven days.
type Comparator struct {
	logs      logSource
	users     userSource
	exercises exerciseResolver
}

func NewComparator(logs logSource, users userSource, exercises exerciseResolver) *Comparator {
	return &Comparator{
		logs:      logs,
		users:     users,
		exercises: exercises,
	}
}

func (c *Comparator) WeeklyDashboard(ctx context.Context, userUID, startDate, endDate string) (_ *Dashboard, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "comparator.weeklyDashboard")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("window.start", startDate),
		attribute.String("window.end", endDate),
	)

	if err := workoutlog.ValidateDate(startDate); err != nil {
		return nil, err
	}
	if err := workoutlog.ValidateDate(endDate); err != nil {
		return nil, err
	}

	user, err := c.users.Get(ctx, userUID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	currentWeek, err := c.summarizeWindow(ctx, userUID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("summarize current week: %w", err)
	}

	prevStart, prevEnd, err := shiftWindowBack(startDate, endDate)
	if err != nil {
		return nil, err
	}
	previousWeek, err := c.summarizeWindow(ctx, userUID, prevStart, prevEnd)
	if err != nil {
		return nil, fmt.Errorf("summarize previous week: %w", err)
	}

	return &Dashboard{
		FirstName:          user.FirstName(),
		StartDate:          startDate,
		EndDate:            endDate,
		CurrentWeek:        *currentWeek,
		PreviousWeek:       *previousWeek,
		ProgressPercentage: placeholderProgressPercentage,
	}, nil
}

func (c *Comparator) summarizeWindow(ctx context.Context, userUID, from, to string) (*WindowSummary, error) {
	logs, err := c.logs.ListAll(ctx, workoutlog.LogParams{
		UserUID: userUID,
		From:    &from,
		To:      &to,
	})
	if err != nil {
		return nil, err
	}

	summary := &WindowSummary{
		NumOfLogs: len(logs),
	}

	musclesHit := make(map[catalog.MuscleGroup]struct{})
	for _, workoutLog := range logs {
		summary.NumOfSets += len(workoutLog.Sets)

		exercise, ok := c.exercises.Resolve(workoutLog.ExerciseID)
		if !ok {
			continue
		}
		for _, muscleGroup := range exercise.PrimaryMuscles {
			musclesHit[muscleGroup] = struct{}{}
		}
		for _, muscleGroup := range exercise.SecondaryMuscles {
			musclesHit[muscleGroup] = struct{}{}
		}
	}
	summary.NumOfMuscles = len(musclesHit)

	return summary, nil
}

func shiftWindowBack(startDate, endDate string) (string, string, error) {
	start, err := time.Parse(workoutlog.DateLayout, startDate)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid start date", workoutlog.ErrValidation)
	}
	end, err := time.Parse(workoutlog.DateLayout, endDate)
	if err != nil {
		return "", "", fmt.Errorf("%w: invalid end date", workoutlog.ErrValidation)
	}
	return start.AddDate(0, 0, -7).Format(workoutlog.DateLayout),
		end.AddDate(0, 0, -7).Format(workoutlog.DateLayout),
		nil
}
