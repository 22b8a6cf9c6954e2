package workoutlog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/identity"
	"github.com/drazenc/fittrack/internal/telemetry/metrics"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workoutlog_test

type logsService interface {
	Create(ctx context.Context, userUID string, req CreateLogRequest) (*WorkoutLog, error)
	Update(ctx context.Context, userUID string, req UpdateLogRequest) (*WorkoutLog, error)
	Get(ctx context.Context, userUID string, logID int) (*WorkoutLog, error)
	List(ctx context.Context, params LogParams) ([]WorkoutLog, error)
}

type ListLogsResponse struct {
	Logs  []WorkoutLog `json:"logs"`
	Total int          `json:"total"`
}

type Handler struct {
	service logsService
	metrics *metrics.Manager
}

func NewHandler(service logsService, metrics *metrics.Manager) *Handler {
	return &Handler{
		service: service,
		metrics: metrics,
	}
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.add")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var req CreateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("new workout log, unmarshal json params: %s", err)
		http.Error(w, "add workout log failed", http.StatusBadRequest)
		return
	}

	addedLog, err := handler.service.Create(ctx, userUID, req)
	if err != nil {
		handler.writeLogError(w, err, "failed to add workout log")
		return
	}

	handler.metrics.CounterWorkoutLogs.Inc()

	addedLogJson, err := json.Marshal(addedLog)
	if err != nil {
		log.Errorf("failed to marshal new workout log: %s", err)
		http.Error(w, "error, failed to add workout log", http.StatusInternalServerError)
		return
	}

	log.Debugf("new workout log added: %s", addedLogJson)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, addedLogJson, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.update")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var req UpdateLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update workout log, unmarshal json params: %s", err)
		http.Error(w, "update workout log failed", http.StatusBadRequest)
		return
	}

	updatedLog, err := handler.service.Update(ctx, userUID, req)
	if err != nil {
		handler.writeLogError(w, err, "failed to update workout log")
		return
	}

	updatedLogJson, err := json.Marshal(updatedLog)
	if err != nil {
		log.Errorf("failed to marshal updated workout log: %s", err)
		http.Error(w, "error, failed to update workout log", http.StatusInternalServerError)
		return
	}

	log.Debugf("workout log %d updated", updatedLog.ID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, updatedLogJson, http.StatusOK)
}

// HandleList serves all logs of the user, or a single one when the
// log_id query param is given.
func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	if logIDStr := r.URL.Query().Get("log_id"); logIDStr != "" {
		logID, err := strconv.Atoi(logIDStr)
		if err != nil {
			http.Error(w, "error, log_id NaN", http.StatusBadRequest)
			return
		}

		workoutLog, err := handler.service.Get(ctx, userUID, logID)
		if err != nil {
			handler.writeLogError(w, err, "failed to get workout log")
			return
		}

		logJson, err := json.Marshal(workoutLog)
		if err != nil {
			log.Errorf("failed to marshal workout log: %s", err)
			http.Error(w, "failed to marshal workout log", http.StatusInternalServerError)
			return
		}
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, logJson, http.StatusOK)
		return
	}

	handler.listLogs(ctx, w, LogParams{UserUID: userUID})
}

func (handler *Handler) HandleListByDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list-by-date")
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
	if err := ValidateDate(workoutDate); err != nil {
		http.Error(w, "error, invalid workout_date", http.StatusBadRequest)
		return
	}

	handler.listLogs(ctx, w, LogParams{
		UserUID: userUID,
		Date:    &workoutDate,
	})
}

func (handler *Handler) HandleListByDateRange(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workoutlog.list-by-date-range")
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
	if err := ValidateDate(startDate); err != nil {
		http.Error(w, "error, invalid start_date", http.StatusBadRequest)
		return
	}
	if err := ValidateDate(endDate); err != nil {
		http.Error(w, "error, invalid end_date", http.StatusBadRequest)
		return
	}

	handler.listLogs(ctx, w, LogParams{
		UserUID: userUID,
		From:    &startDate,
		To:      &endDate,
	})
}

func (handler *Handler) listLogs(ctx context.Context, w http.ResponseWriter, params LogParams) {
	logs, err := handler.service.List(ctx, params)
	if err != nil {
		log.Errorf("list workout logs error: %s", err)
		http.Error(w, "failed to get workout logs", http.StatusInternalServerError)
		return
	}

	listResponseJson, err := json.Marshal(ListLogsResponse{
		Logs:  logs,
		Total: len(logs),
	})
	if err != nil {
		log.Errorf("marshal workout logs error: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listResponseJson, http.StatusOK)
}

func (handler *Handler) writeLogError(w http.ResponseWriter, err error, logMsg string) {
	switch {
	case errors.Is(err, ErrValidation):
		log.Tracef("%s: %s", logMsg, err)
		http.Error(w, "invalid input", http.StatusBadRequest)
	case errors.Is(err, catalog.ErrExerciseNotFound):
		log.Debugf("%s: %s", logMsg, err)
		http.Error(w, "exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrLogNotFound):
		log.Debugf("%s: %s", logMsg, err)
		http.Error(w, "workout log not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", logMsg, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
