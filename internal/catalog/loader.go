package catalog

import (
	"encoding/json"
	"fmt"
	"io"
)

// ParseDataset reads the static exercises JSON dataset (an array of catalog
// entries) and validates the muscle annotations. Entries referencing unknown
// muscle groups are rejected, since the whole aggregation domain depends on
// the closed 17-value set.
func ParseDataset(r io.Reader) ([]Exercise, error) {
	var exercises []Exercise
	if err := json.NewDecoder(r).Decode(&exercises); err != nil {
		return nil, fmt.Errorf("decode exercises dataset: %w", err)
	}

	for _, e := range exercises {
		if e.ID == "" {
			return nil, fmt.Errorf("exercise %q: empty id", e.Name)
		}
		for _, mg := range e.PrimaryMuscles {
			if !mg.IsValid() {
				return nil, fmt.Errorf("exercise %s: unknown primary muscle %q", e.ID, mg)
			}
		}
		for _, mg := range e.SecondaryMuscles {
			if !mg.IsValid() {
				return nil, fmt.Errorf("exercise %s: unknown secondary muscle %q", e.ID, mg)
			}
		}
	}

	return exercises, nil
}
