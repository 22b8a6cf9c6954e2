package workoutlog_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/workoutlog"
)

const testUserUID = "user-uid-1"

var testBenchPress = catalog.Exercise{
	ID:               "Barbell_Bench_Press",
	Name:             "Barbell Bench Press",
	PrimaryMuscles:   []catalog.MuscleGroup{catalog.MuscleChest},
	SecondaryMuscles: []catalog.MuscleGroup{catalog.MuscleTriceps, catalog.MuscleShoulders},
}

func TestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	ctx := context.Background()

	resolverMock.EXPECT().
		Resolve("barbell_bench_press").
		Return(&testBenchPress, true)
	repoMock.EXPECT().
		Add(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wl workoutlog.WorkoutLog) (*workoutlog.WorkoutLog, error) {
			assert.Equal(t, testUserUID, wl.UserUID)
			assert.Equal(t, "Barbell_Bench_Press", wl.ExerciseID)
			assert.Equal(t, "Barbell Bench Press", wl.ExerciseName)
			assert.Equal(t, "2024-01-10", wl.WorkoutDate)
			assert.Equal(t, "18:30:00", wl.WorkoutTime)
			require.NotNil(t, wl.Sets)
			assert.Empty(t, wl.Sets)
			wl.ID = 42
			return &wl, nil
		})

	added, err := service.Create(ctx, testUserUID, workoutlog.CreateLogRequest{
		ExerciseID:  "barbell_bench_press",
		WorkoutDate: "2024-01-10",
		WorkoutTime: "18:30:00",
	})
	require.NoError(t, err)
	assert.Equal(t, 42, added.ID)
}

func TestService_Create_missingRequiredFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	ctx := context.Background()

	for _, req := range []workoutlog.CreateLogRequest{
		{WorkoutDate: "2024-01-10", WorkoutTime: "18:30:00"},
		{ExerciseID: "Barbell_Bench_Press", WorkoutTime: "18:30:00"},
		{ExerciseID: "Barbell_Bench_Press", WorkoutDate: "2024-01-10"},
	} {
		_, err := service.Create(ctx, testUserUID, req)
		assert.ErrorIs(t, err, workoutlog.ErrValidation)
	}
}

func TestService_Create_invalidDate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	_, err := service.Create(context.Background(), testUserUID, workoutlog.CreateLogRequest{
		ExerciseID:  "Barbell_Bench_Press",
		WorkoutDate: "10.01.2024",
		WorkoutTime: "18:30:00",
	})
	assert.ErrorIs(t, err, workoutlog.ErrValidation)
}

func TestService_Create_unknownExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	resolverMock.EXPECT().
		Resolve("No_Such_Exercise").
		Return(nil, false)

	_, err := service.Create(context.Background(), testUserUID, workoutlog.CreateLogRequest{
		ExerciseID:  "No_Such_Exercise",
		WorkoutDate: "2024-01-10",
		WorkoutTime: "18:30:00",
	})
	assert.ErrorIs(t, err, catalog.ErrExerciseNotFound)
}

func TestService_Update_partialOverwrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	ctx := context.Background()
	existing := workoutlog.WorkoutLog{
		ID:          7,
		UserUID:     testUserUID,
		ExerciseID:  "Barbell_Bench_Press",
		WorkoutDate: "2024-01-10",
		WorkoutTime: "18:30:00",
		Sets:        []workoutlog.Set{workoutlog.NewSet(10, 50)},
	}

	repoMock.EXPECT().
		Get(gomock.Any(), testUserUID, 7).
		Return(&existing, nil)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wl *workoutlog.WorkoutLog) error {
			assert.Equal(t, "2024-01-11", wl.WorkoutDate)
			// untouched fields keep their values
			assert.Equal(t, "18:30:00", wl.WorkoutTime)
			assert.Equal(t, "Barbell_Bench_Press", wl.ExerciseID)
			assert.Len(t, wl.Sets, 1)
			return nil
		})

	updated, err := service.Update(ctx, testUserUID, workoutlog.UpdateLogRequest{
		LogID:       7,
		WorkoutDate: "2024-01-11",
	})
	require.NoError(t, err)
	assert.Equal(t, "2024-01-11", updated.WorkoutDate)
}

func TestService_Update_emptySetsLeaveSetsUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	existing := workoutlog.WorkoutLog{
		ID:          7,
		UserUID:     testUserUID,
		ExerciseID:  "Barbell_Bench_Press",
		WorkoutDate: "2024-01-10",
		WorkoutTime: "18:30:00",
		Sets:        []workoutlog.Set{workoutlog.NewSet(10, 50)},
	}

	repoMock.EXPECT().
		Get(gomock.Any(), testUserUID, 7).
		Return(&existing, nil)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wl *workoutlog.WorkoutLog) error {
			assert.Len(t, wl.Sets, 1)
			return nil
		})

	_, err := service.Update(context.Background(), testUserUID, workoutlog.UpdateLogRequest{
		LogID: 7,
		Sets:  []workoutlog.Set{},
	})
	require.NoError(t, err)
}

func TestService_Update_replaceSets(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	existing := workoutlog.WorkoutLog{
		ID:          7,
		UserUID:     testUserUID,
		ExerciseID:  "Barbell_Bench_Press",
		WorkoutDate: "2024-01-10",
		WorkoutTime: "18:30:00",
		Sets:        []workoutlog.Set{workoutlog.NewSet(10, 50)},
	}
	newSets := []workoutlog.Set{workoutlog.NewSet(5, 20)}

	repoMock.EXPECT().
		Get(gomock.Any(), testUserUID, 7).
		Return(&existing, nil)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, wl *workoutlog.WorkoutLog) error {
			assert.Equal(t, newSets, wl.Sets)
			return nil
		})

	updated, err := service.Update(context.Background(), testUserUID, workoutlog.UpdateLogRequest{
		LogID: 7,
		Sets:  newSets,
	})
	require.NoError(t, err)
	assert.Equal(t, newSets, updated.Sets)
}

func TestService_Update_foreignLogInvisible(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	repoMock.EXPECT().
		Get(gomock.Any(), "other-user-uid", 7).
		Return(nil, workoutlog.ErrLogNotFound)

	_, err := service.Update(context.Background(), "other-user-uid", workoutlog.UpdateLogRequest{
		LogID:       7,
		WorkoutDate: "2024-01-11",
	})
	assert.ErrorIs(t, err, workoutlog.ErrLogNotFound)
}

func TestService_Update_reresolveExercise(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMocklogsRepo(ctrl)
	resolverMock := NewMockexerciseResolver(ctrl)
	service := workoutlog.NewService(repoMock, resolverMock)

	existing := workoutlog.WorkoutLog{
		ID:          7,
		UserUID:     testUserUID,
		ExerciseID:  "Barbell_Bench_Press",
		WorkoutDate: "2024-01-10",
		WorkoutTime: "18:30:00",
	}
	squat := catalog.Exercise{
		ID:             "Barbell_Squat",
		Name:           "Barbell Squat",
		PrimaryMuscles: []catalog.MuscleGroup{catalog.MuscleQuadriceps},
	}

	repoMock.EXPECT().
		Get(gomock.Any(), testUserUID, 7).
		Return(&existing, nil)
	resolverMock.EXPECT().
		Resolve("barbell_squat").
		Return(&squat, true)
	repoMock.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		Return(nil)

	updated, err := service.Update(context.Background(), testUserUID, workoutlog.UpdateLogRequest{
		LogID:      7,
		ExerciseID: "barbell_squat",
	})
	require.NoError(t, err)
	assert.Equal(t, "Barbell_Squat", updated.ExerciseID)
	assert.Equal(t, "Barbell Squat", updated.ExerciseName)
}
