package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/drazenc/fittrack/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// ListAll returns the full catalog, used to build the boot-time snapshot.
func (r *Repo) ListAll(ctx context.Context) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, force, level, mechanic, equipment,
			primary_muscles, secondary_muscles, instructions, category, images
		FROM exercise_catalog
		ORDER BY id;`,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return r.rows2exercises(rows)
}

// List returns one page of the catalog plus the total count.
func (r *Repo) List(ctx context.Context, page, size int) (_ []Exercise, total int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("page", page))
	span.SetAttributes(attribute.Int("size", size))

	if page < 1 {
		return nil, -1, errors.New("page must be greater than 0")
	}
	if size < 1 {
		return nil, -1, errors.New("size must be greater than 0")
	}

	if err := r.db.
		QueryRow(ctx, `SELECT COUNT(*) FROM exercise_catalog;`).
		Scan(&total); err != nil {
		return nil, -1, fmt.Errorf("count: %w", err)
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, name, force, level, mechanic, equipment,
			primary_muscles, secondary_muscles, instructions, category, images
		FROM exercise_catalog
		ORDER BY id
		LIMIT $1 OFFSET $2;`,
		size, (page-1)*size,
	)
	if err != nil {
		return nil, -1, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, -1, err
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, -1, err
	}
	return exercises, total, nil
}

// Get returns a single catalog entry, matching the id case-insensitively.
func (r *Repo) Get(ctx context.Context, id string) (_ *Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", id))

	rows, err := r.db.Query(ctx, `
		SELECT id, name, force, level, mechanic, equipment,
			primary_muscles, secondary_muscles, instructions, category, images
		FROM exercise_catalog
		WHERE lower(id) = lower($1);`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	exercises, err := r.rows2exercises(rows)
	if err != nil {
		return nil, err
	}
	if len(exercises) != 1 {
		return nil, ErrExerciseNotFound
	}
	return &exercises[0], nil
}

// Upsert writes one catalog entry, used by the bulk importer.
func (r *Repo) Upsert(ctx context.Context, e Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.catalog.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("id", e.ID))

	primaryJson, err := json.Marshal(e.PrimaryMuscles)
	if err != nil {
		return fmt.Errorf("marshal primary muscles: %w", err)
	}
	secondaryJson, err := json.Marshal(e.SecondaryMuscles)
	if err != nil {
		return fmt.Errorf("marshal secondary muscles: %w", err)
	}
	instructionsJson, err := json.Marshal(e.Instructions)
	if err != nil {
		return fmt.Errorf("marshal instructions: %w", err)
	}
	imagesJson, err := json.Marshal(e.Images)
	if err != nil {
		return fmt.Errorf("marshal images: %w", err)
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO exercise_catalog
			(id, name, force, level, mechanic, equipment,
			primary_muscles, secondary_muscles, instructions, category, images)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			force = EXCLUDED.force,
			level = EXCLUDED.level,
			mechanic = EXCLUDED.mechanic,
			equipment = EXCLUDED.equipment,
			primary_muscles = EXCLUDED.primary_muscles,
			secondary_muscles = EXCLUDED.secondary_muscles,
			instructions = EXCLUDED.instructions,
			category = EXCLUDED.category,
			images = EXCLUDED.images;`,
		e.ID, e.Name, e.Force, e.Level, e.Mechanic, e.Equipment,
		primaryJson, secondaryJson, instructionsJson, e.Category, imagesJson,
	)
	return err
}

func (r *Repo) rows2exercises(rows pgx.Rows) ([]Exercise, error) {
	var exercises []Exercise
	for rows.Next() {
		var e Exercise
		var primaryBytes, secondaryBytes, instructionsBytes, imagesBytes []byte
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Force, &e.Level, &e.Mechanic, &e.Equipment,
			&primaryBytes, &secondaryBytes, &instructionsBytes, &e.Category, &imagesBytes,
		); err != nil {
			return nil, err
		}

		if err := json.Unmarshal(primaryBytes, &e.PrimaryMuscles); err != nil {
			return nil, fmt.Errorf("unmarshal primary muscles for %s: %w", e.ID, err)
		}
		if err := json.Unmarshal(secondaryBytes, &e.SecondaryMuscles); err != nil {
			return nil, fmt.Errorf("unmarshal secondary muscles for %s: %w", e.ID, err)
		}
		if len(instructionsBytes) > 0 {
			if err := json.Unmarshal(instructionsBytes, &e.Instructions); err != nil {
				return nil, fmt.Errorf("unmarshal instructions for %s: %w", e.ID, err)
			}
		}
		if len(imagesBytes) > 0 {
			if err := json.Unmarshal(imagesBytes, &e.Images); err != nil {
				return nil, fmt.Errorf("unmarshal images for %s: %w", e.ID, err)
			}
		}

		exercises = append(exercises, e)
	}

	if exercises == nil {
		exercises = make([]Exercise, 0)
	}
	return exercises, nil
}
