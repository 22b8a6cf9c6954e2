package workoutlog

import (
	"context"
	"fmt"

	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"

	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=service_mocks_test.go -package=workoutlog_test

type logsRepo interface {
	Add(ctx context.Context, workoutLog WorkoutLog) (*WorkoutLog, error)
	Get(ctx context.Context, userUID string, logID int) (*WorkoutLog, error)
	Update(ctx context.Context, workoutLog *WorkoutLog) error
	ListAll(ctx context.Context, params LogParams) ([]WorkoutLog, error)
	DeleteForUser(ctx context.Context, userUID string) (int64, error)
}

type exerciseResolver interface {
	Resolve(exerciseID string) (*catalog.Exercise, bool)
}

type CreateLogRequest struct {
	ExerciseID  string `json:"exerciseId"`
	WorkoutDate string `json:"workoutDate"`
	WorkoutTime string `json:"workoutTime"`
	Sets        []Set  `json:"sets"`
}

// UpdateLogRequest is a partial update: only fields that carry a
// non-empty value are applied. An explicitly supplied empty value is
// indistinguishable from an absent field, so a field can not be
// cleared through this operation.
type UpdateLogRequest struct {
	LogID       int    `json:"logId"`
	ExerciseID  string `json:"exerciseId"`
	WorkoutDate string `json:"workoutDate"`
	WorkoutTime string `json:"workoutTime"`
	Sets        []Set  `json:"sets"`
}

// Service validates and applies workout log mutations. All writes go
// through here so that no invalid row ever reaches the repo.
type Service struct {
	repo      logsRepo
	exercises exerciseResolver
}

func NewService(repo logsRepo, exercises exerciseResolver) *Service {
	return &Service{
		repo:      repo,
		exercises: exercises,
	}
}

func (s *Service) Create(ctx context.Context, userUID string, req CreateLogRequest) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.create")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("exercise.id", req.ExerciseID))

	if req.ExerciseID == "" || req.WorkoutDate == "" || req.WorkoutTime == "" {
		return nil, fmt.Errorf("%w: exerciseId, workoutDate and workoutTime are required", ErrValidation)
	}
	if err := ValidateDate(req.WorkoutDate); err != nil {
		return nil, err
	}
	if err := ValidateTime(req.WorkoutTime); err != nil {
		return nil, err
	}

	exercise, ok := s.exercises.Resolve(req.ExerciseID)
	if !ok {
		return nil, fmt.Errorf("exercise %s: %w", req.ExerciseID, catalog.ErrExerciseNotFound)
	}

	sets := req.Sets
	if sets == nil {
		sets = make([]Set, 0)
	}

	added, err := s.repo.Add(ctx, WorkoutLog{
		UserUID:      userUID,
		ExerciseID:   exercise.ID,
		ExerciseName: exercise.Name,
		WorkoutDate:  req.WorkoutDate,
		WorkoutTime:  req.WorkoutTime,
		Sets:         sets,
	})
	if err != nil {
		return nil, fmt.Errorf("add workout log: %w", err)
	}
	return added, nil
}

func (s *Service) Update(ctx context.Context, userUID string, req UpdateLogRequest) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", req.LogID))

	if req.LogID == 0 {
		return nil, fmt.Errorf("%w: logId is required", ErrValidation)
	}

	workoutLog, err := s.repo.Get(ctx, userUID, req.LogID)
	if err != nil {
		return nil, err
	}

	if req.ExerciseID != "" {
		exercise, ok := s.exercises.Resolve(req.ExerciseID)
		if !ok {
			return nil, fmt.Errorf("exercise %s: %w", req.ExerciseID, catalog.ErrExerciseNotFound)
		}
		workoutLog.ExerciseID = exercise.ID
		workoutLog.ExerciseName = exercise.Name
	}
	if req.WorkoutDate != "" {
		if err := ValidateDate(req.WorkoutDate); err != nil {
			return nil, err
		}
		workoutLog.WorkoutDate = req.WorkoutDate
	}
	if req.WorkoutTime != "" {
		if err := ValidateTime(req.WorkoutTime); err != nil {
			return nil, err
		}
		workoutLog.WorkoutTime = req.WorkoutTime
	}
	if len(req.Sets) > 0 {
		workoutLog.Sets = req.Sets
	}

	if err := s.repo.Update(ctx, workoutLog); err != nil {
		return nil, fmt.Errorf("update workout log: %w", err)
	}
	return workoutLog, nil
}

func (s *Service) Get(ctx context.Context, userUID string, logID int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))

	return s.repo.Get(ctx, userUID, logID)
}

func (s *Service) List(ctx context.Context, params LogParams) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	logs, err := s.repo.ListAll(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("list workout logs: %w", err)
	}
	return logs, nil
}

// DeleteForUser removes all logs of the user, as part of the user
// deletion cascade.
func (s *Service) DeleteForUser(ctx context.Context, userUID string) (deleted int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.workoutlog.deleteforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	return s.repo.DeleteForUser(ctx, userUID)
}
