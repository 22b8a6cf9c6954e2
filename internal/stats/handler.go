package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/drazenc/fittrack/internal/identity"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/internal/users"
	"github.com/drazenc/fittrack/internal/workoutlog"
	"github.com/drazenc/fittrack/pkg"
)

type Handler struct {
	logs       logSource
	analyzer   *Analyzer
	comparator *Comparator
}

func NewHandler(logs logSource, analyzer *Analyzer, comparator *Comparator) *Handler {
	return &Handler{
		logs:       logs,
		analyzer:   analyzer,
		comparator: comparator,
	}
}

func (handler *Handler) HandleMusclePercentageByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.muscle-percentage-by-date")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	workoutDate := r.URL.Query().Get("workout_date")
	if workoutDate == "" {
		http.Error(w, "error, workout_date empty", http.StatusBadRequest)
		return
	}
	if err := workoutlog.ValidateDate(workoutDate); err != nil {
		http.Error(w, "error, invalid workout_date", http.StatusBadRequest)
		return
	}

	handler.writeMusclePercentages(ctx, w, workoutlog.LogParams{
		UserUID: userUID,
		Date:    &workoutDate,
	})
}

func (handler *Handler) HandleMusclePercentageByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.muscle-percentage-by-date-range")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		http.Error(w, "error, start_date or end_date empty", http.StatusBadRequest)
		return
	}
	if err := workoutlog.ValidateDate(startDate); err != nil {
		http.Error(w, "error, invalid start_date", http.StatusBadRequest)
		return
	}
	if err := workoutlog.ValidateDate(endDate); err != nil {
		http.Error(w, "error, invalid end_date", http.StatusBadRequest)
		return
	}

	handler.writeMusclePercentages(ctx, w, workoutlog.LogParams{
		UserUID: userUID,
		From:    &startDate,
		To:      &endDate,
	})
}

func (handler *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.stats.dashboard")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" || endDate == "" {
		http.Error(w, "error, start_date or end_date empty", http.StatusBadRequest)
		return
	}

	dashboard, err := handler.comparator.WeeklyDashboard(ctx, userUID, startDate, endDate)
	switch {
	case errors.Is(err, workoutlog.ErrValidation):
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	case errors.Is(err, users.ErrUserNotFound):
		http.Error(w, "user not found", http.StatusNotFound)
		return
	case err != nil:
		log.Errorf("failed to build dashboard for %s: %s", userUID, err)
		http.Error(w, "failed to build dashboard", http.StatusInternalServerError)
		return
	}

	dashboardJson, err := json.Marshal(dashboard)
	if err != nil {
		log.Errorf("failed to marshal dashboard: %s", err)
		http.Error(w, "failed to marshal dashboard", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, dashboardJson, http.StatusOK)
}

func (handler *Handler) writeMusclePercentages(ctx context.Context, w http.ResponseWriter, params workoutlog.LogParams) {
	logs, err := handler.logs.ListAll(ctx, params)
	if err != nil {
		log.Errorf("failed to list workout logs for muscle percentages: %s", err)
		http.Error(w, "failed to get workout logs", http.StatusInternalServerError)
		return
	}

	percentages, err := handler.analyzer.ComputeMusclePercentages(ctx, logs)
	if err != nil {
		if errors.Is(err, workoutlog.ErrValidation) {
			log.Tracef("muscle percentages: %s", err)
			http.Error(w, "invalid input", http.StatusBadRequest)
			return
		}
		log.Errorf("failed to compute muscle percentages: %s", err)
		http.Error(w, "failed to compute muscle percentages", http.StatusInternalServerError)
		return
	}

	percentagesJson, err := json.Marshal(percentages)
	if err != nil {
		log.Errorf("failed to marshal muscle percentages: %s", err)
		http.Error(w, "failed to marshal muscle percentages", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, percentagesJson, http.StatusOK)
}
