package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=catalog_mocks_test.go -package=catalog_test

type catalogRepo interface {
	List(ctx context.Context, page, size int) (_ []Exercise, total int, err error)
	Get(ctx context.Context, id string) (*Exercise, error)
}

const defaultPageSize = 50

type ListResponse struct {
	Exercises []Exercise `json:"exercises"`
	Total     int        `json:"total"`
}

// ExerciseDetails is the public single-exercise view: the reference fields
// a client needs to render one catalog entry, without instructions/images.
type ExerciseDetails struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Force            string        `json:"force,omitempty"`
	Level            string        `json:"level"`
	Mechanic         string        `json:"mechanic,omitempty"`
	PrimaryMuscles   []MuscleGroup `json:"primaryMuscles"`
	SecondaryMuscles []MuscleGroup `json:"secondaryMuscles"`
}

type Handler struct {
	repo catalogRepo
}

func NewHandler(repo catalogRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.list")
	defer span.End()

	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		var err error
		page, err = strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			http.Error(w, "invalid page (has to be a positive number)", http.StatusBadRequest)
			return
		}
	}
	size := defaultPageSize
	if sizeStr := r.URL.Query().Get("size"); sizeStr != "" {
		var err error
		size, err = strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			http.Error(w, "invalid size (has to be a positive number)", http.StatusBadRequest)
			return
		}
	}

	exercises, total, err := handler.repo.List(ctx, page, size)
	if err != nil {
		log.Errorf("list catalog exercises: %s", err)
		http.Error(w, "failed to get exercises", http.StatusInternalServerError)
		return
	}

	listRespJson, err := json.Marshal(ListResponse{
		Exercises: exercises,
		Total:     total,
	})
	if err != nil {
		log.Errorf("marshal catalog exercises: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, listRespJson, http.StatusOK)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.catalog.get")
	defer span.End()

	vars := mux.Vars(r)
	id := vars["id"]
	if id == "" {
		http.Error(w, "error, id empty", http.StatusBadRequest)
		return
	}

	e, err := handler.repo.Get(ctx, id)
	if err != nil && errors.Is(err, ErrExerciseNotFound) {
		http.Error(w, "exercise not found", http.StatusNotFound)
		return
	} else if err != nil {
		log.Errorf("failed to get catalog exercise %s: %s", id, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	detailsJson, err := json.Marshal(ExerciseDetails{
		ID:               e.ID,
		Name:             e.Name,
		Force:            e.Force,
		Level:            e.Level,
		Mechanic:         e.Mechanic,
		PrimaryMuscles:   e.PrimaryMuscles,
		SecondaryMuscles: e.SecondaryMuscles,
	})
	if err != nil {
		log.Errorf("marshal catalog exercise: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, detailsJson, http.StatusOK)
}
