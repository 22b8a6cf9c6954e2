package workoutlog

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

// LogParams filters listed workout logs. Date filters are plain
// YYYY-MM-DD strings, cast to dates in SQL.
type LogParams struct {
	UserUID string
	Date    *string
	From    *string
	To      *string
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Add(ctx context.Context, workoutLog WorkoutLog) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	setsJson, err := json.Marshal(workoutLog.Sets)
	if err != nil {
		return nil, fmt.Errorf("marshal sets: %w", err)
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO workout_log (user_uid, exercise_id, workout_date, workout_time, sets)
		VALUES ($1, $2, $3::date, $4::time, $5)
		RETURNING log_id;`,
		workoutLog.UserUID, workoutLog.ExerciseID,
		workoutLog.WorkoutDate, workoutLog.WorkoutTime, setsJson,
	).Scan(&id)
	if err != nil {
		if pkg.IsForeignKeyViolationError(err) {
			return nil, fmt.Errorf("%w: unknown user %s", ErrValidation, workoutLog.UserUID)
		}
		return nil, err
	}

	span.SetAttributes(attribute.Int("log.id", id))

	workoutLog.ID = id
	return &workoutLog, nil
}

// Get returns one log scoped by both log id and owner, so that foreign
// log ids stay invisible.
func (r *Repo) Get(ctx context.Context, userUID string, logID int) (_ *WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", logID))

	rows, err := r.db.Query(ctx, `
		SELECT
			l.log_id, l.user_uid, l.exercise_id, COALESCE(c.name, ''),
			to_char(l.workout_date, 'YYYY-MM-DD'), to_char(l.workout_time, 'HH24:MI:SS'),
			l.sets
		FROM workout_log l
		LEFT JOIN exercise_catalog c ON lower(c.id) = lower(l.exercise_id)
		WHERE l.log_id = $1 AND l.user_uid = $2;`,
		logID, userUID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, err
	}

	logs, err := r.rows2logs(rows)
	if err != nil {
		return nil, err
	}
	if len(logs) != 1 {
		return nil, ErrLogNotFound
	}
	return &logs[0], nil
}

func (r *Repo) Update(ctx context.Context, workoutLog *WorkoutLog) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("log.id", workoutLog.ID))

	setsJson, err := json.Marshal(workoutLog.Sets)
	if err != nil {
		return fmt.Errorf("marshal sets: %w", err)
	}

	tag, err := r.db.Exec(ctx, `
		UPDATE workout_log
		SET exercise_id = $1, workout_date = $2::date, workout_time = $3::time, sets = $4
		WHERE log_id = $5 AND user_uid = $6;`,
		workoutLog.ExerciseID, workoutLog.WorkoutDate, workoutLog.WorkoutTime, setsJson,
		workoutLog.ID, workoutLog.UserUID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}

// ListAll returns all logs of a user matching the given filters,
// newest first.
func (r *Repo) ListAll(ctx context.Context, params LogParams) (_ []WorkoutLog, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.listall")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", params.UserUID))
	if params.Date != nil {
		span.SetAttributes(attribute.String("date", *params.Date))
	}
	if params.From != nil {
		span.SetAttributes(attribute.String("from", *params.From))
	}
	if params.To != nil {
		span.SetAttributes(attribute.String("to", *params.To))
	}

	rows, err := r.db.Query(ctx, `
		SELECT
			l.log_id, l.user_uid, l.exercise_id, COALESCE(c.name, ''),
			to_char(l.workout_date, 'YYYY-MM-DD'), to_char(l.workout_time, 'HH24:MI:SS'),
			l.sets
		FROM workout_log l
		LEFT JOIN exercise_catalog c ON lower(c.id) = lower(l.exercise_id)
		WHERE l.user_uid = $1
			AND ($2::date IS NULL OR l.workout_date = $2::date)
			AND ($3::date IS NULL OR l.workout_date >= $3::date)
			AND ($4::date IS NULL OR l.workout_date <= $4::date)
		ORDER BY l.workout_date DESC, l.workout_time DESC;`,
		params.UserUID, params.Date, params.From, params.To,
	)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	logs, err := r.rows2logs(rows)
	if err != nil {
		return nil, fmt.Errorf("rows2logs: %w", err)
	}
	return logs, nil
}

// DeleteForUser removes all logs of a user. Only invoked from the user
// deletion cascade; single logs are never deleted directly.
func (r *Repo) DeleteForUser(ctx context.Context, userUID string) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workoutlog.deleteforuser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("user.uid", userUID))

	tag, err := r.db.Exec(ctx, `DELETE FROM workout_log WHERE user_uid = $1;`, userUID)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) rows2logs(rows pgx.Rows) ([]WorkoutLog, error) {
	var logs []WorkoutLog
	for rows.Next() {
		var l WorkoutLog
		var setsBytes []byte
		if err := rows.Scan(
			&l.ID, &l.UserUID, &l.ExerciseID, &l.ExerciseName,
			&l.WorkoutDate, &l.WorkoutTime, &setsBytes,
		); err != nil {
			return nil, err
		}

		if len(setsBytes) > 0 {
			if err := json.Unmarshal(setsBytes, &l.Sets); err != nil {
				return nil, fmt.Errorf("unmarshal sets for log %d: %w", l.ID, err)
			}
		}
		if l.Sets == nil {
			l.Sets = make([]Set, 0)
		}

		logs = append(logs, l)
	}

	if logs == nil {
		logs = make([]WorkoutLog, 0)
	}
	return logs, nil
}
