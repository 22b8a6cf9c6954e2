package catalog_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drazenc/fittrack/internal/catalog"
)

func TestParseDataset(t *testing.T) {
	dataset := `[
		{
			"id": "Barbell_Bench_Press",
			"name": "Barbell Bench Press",
			"force": "push",
			"level": "beginner",
			"mechanic": "compound",
			"equipment": "barbell",
			"primaryMuscles": ["chest"],
			"secondaryMuscles": ["triceps", "shoulders"],
			"category": "strength"
		},
		{
			"id": "Barbell_Squat",
			"name": "Barbell Squat",
			"level": "intermediate",
			"primaryMuscles": ["quadriceps"],
			"secondaryMuscles": ["glutes", "hamstrings", "lower back"],
			"category": "strength"
		}
	]`

	exercises, err := catalog.ParseDataset(strings.NewReader(dataset))
	require.NoError(t, err)
	require.Len(t, exercises, 2)
	assert.Equal(t, "Barbell_Bench_Press", exercises[0].ID)
	assert.Equal(t, []catalog.MuscleGroup{catalog.MuscleTriceps, catalog.MuscleShoulders}, exercises[0].SecondaryMuscles)
	assert.Equal(t, []catalog.MuscleGroup{catalog.MuscleGlutes, catalog.MuscleHamstrings, catalog.MuscleLowerBack}, exercises[1].SecondaryMuscles)
}

func TestParseDataset_unknownMuscle(t *testing.T) {
	dataset := `[
		{
			"id": "Some_Exercise",
			"name": "Some Exercise",
			"level": "beginner",
			"primaryMuscles": ["sixpack"],
			"category": "strength"
		}
	]`

	_, err := catalog.ParseDataset(strings.NewReader(dataset))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown primary muscle")
}

func TestParseDataset_emptyID(t *testing.T) {
	dataset := `[{"id": "", "name": "Nameless", "level": "beginner", "category": "strength"}]`

	_, err := catalog.ParseDataset(strings.NewReader(dataset))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty id")
}

func TestParseDataset_malformedJSON(t *testing.T) {
	_, err := catalog.ParseDataset(strings.NewReader(`{"not": "an array"`))
	assert.Error(t, err)
}
