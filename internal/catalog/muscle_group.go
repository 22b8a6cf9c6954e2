package catalog

// MuscleGroup is one of the 17 fixed anatomical categories used as the
// aggregation key domain. Every aggregation result contains all of them,
// so the set is defined once here and nowhere else.
type MuscleGroup string

const (
	MuscleAbdominals MuscleGroup = "abdominals"
	MuscleAbductors  MuscleGroup = "abductors"
	MuscleAdductors  MuscleGroup = "adductors"
	MuscleBiceps     MuscleGroup = "biceps"
	MuscleCalves     MuscleGroup = "calves"
	MuscleChest      MuscleGroup = "chest"
	MuscleForearms   MuscleGroup = "forearms"
	MuscleGlutes     MuscleGroup = "glutes"
	MuscleHamstrings MuscleGroup = "hamstrings"
	MuscleLats       MuscleGroup = "lats"
	MuscleLowerBack  MuscleGroup = "lower back"
	MuscleMiddleBack MuscleGroup = "middle back"
	MuscleNeck       MuscleGroup = "neck"
	MuscleQuadriceps MuscleGroup = "quadriceps"
	MuscleShoulders  MuscleGroup = "shoulders"
	MuscleTraps      MuscleGroup = "traps"
	MuscleTriceps    MuscleGroup = "triceps"
)

// AllMuscleGroups lists every muscle group, in stable order.
var AllMuscleGroups = []MuscleGroup{
	MuscleAbdominals,
	MuscleAbductors,
	MuscleAdductors,
	MuscleBiceps,
	MuscleCalves,
	MuscleChest,
	MuscleForearms,
	MuscleGlutes,
	MuscleHamstrings,
	MuscleLats,
	MuscleLowerBack,
	MuscleMiddleBack,
	MuscleNeck,
	MuscleQuadriceps,
	MuscleShoulders,
	MuscleTraps,
	MuscleTriceps,
}

func (mg MuscleGroup) String() string {
	return string(mg)
}

func (mg MuscleGroup) IsValid() bool {
	switch mg {
	case MuscleAbdominals, MuscleAbductors, MuscleAdductors, MuscleBiceps,
		MuscleCalves, MuscleChest, MuscleForearms, MuscleGlutes,
		MuscleHamstrings, MuscleLats, MuscleLowerBack, MuscleMiddleBack,
		MuscleNeck, MuscleQuadriceps, MuscleShoulders, MuscleTraps,
		MuscleTriceps:
		return true
	default:
		return false
	}
}
