package users

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/drazenc/fittrack/internal/identity"
	"github.com/drazenc/fittrack/internal/telemetry/metrics"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/pkg"
)

//go:generate mockgen -source=$GOFILE -destination=users_mocks_test.go -package=users_test

type usersRepo interface {
	Add(ctx context.Context, user User) error
	Get(ctx context.Context, uid string) (*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, uid string) error
}

type logsRemover interface {
	DeleteForUser(ctx context.Context, userUID string) (int64, error)
}

type RegisterUserRequest struct {
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Password     string  `json:"password"`
	Age          int     `json:"age"`
	Height       float64 `json:"height"`
	Weight       float64 `json:"weight"`
	FitnessLevel string  `json:"fitnessLevel"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	UID     string `json:"uid"`
	IDToken string `json:"idToken"`
}

type UsernameResponse struct {
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
}

type Handler struct {
	repo     usersRepo
	logs     logsRemover
	identity identity.Client
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(repo usersRepo, logs logsRemover, identityClient identity.Client, metrics *metrics.Manager) *Handler {
	return &Handler{
		repo:     repo,
		logs:     logs,
		identity: identityClient,
		metrics:  metrics,
		now:      time.Now,
	}
}

func (handler *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.register")
	defer span.End()

	var req RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("register user, unmarshal json params: %s", err)
		http.Error(w, "register user failed", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" || req.Name == "" {
		http.Error(w, "error, name, email or password empty", http.StatusBadRequest)
		return
	}

	uid, err := handler.identity.CreateUser(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrUserExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to create identity for %s: %s", req.Email, err)
		http.Error(w, "error, failed to register user", http.StatusInternalServerError)
		return
	}

	user := User{
		UID:          uid,
		Name:         req.Name,
		Email:        req.Email,
		Age:          req.Age,
		Height:       req.Height,
		Weight:       req.Weight,
		FitnessLevel: req.FitnessLevel,
		CreatedAt:    handler.now(),
	}
	if err := handler.repo.Add(ctx, user); err != nil {
		if errors.Is(err, ErrUserAlreadyExists) {
			http.Error(w, "user already exists", http.StatusConflict)
			return
		}
		log.Errorf("failed to store user %s: %s", uid, err)
		http.Error(w, "error, failed to register user", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterUsersRegistered.Inc()

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal new user: %s", err)
		http.Error(w, "error, failed to register user", http.StatusInternalServerError)
		return
	}

	log.Debugf("new user registered: %s", uid)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusCreated)
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.login")
	defer span.End()

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("login, unmarshal json params: %s", err)
		http.Error(w, "login failed", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		http.Error(w, "error, email or password empty", http.StatusBadRequest)
		return
	}

	tokenInfo, err := handler.identity.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, identity.ErrInvalidCredentials) {
			http.Error(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("failed to sign in %s: %s", req.Email, err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}

	loginRespJson, err := json.Marshal(LoginResponse{
		UID:     tokenInfo.UID,
		IDToken: tokenInfo.IDToken,
	})
	if err != nil {
		log.Errorf("failed to marshal login response: %s", err)
		http.Error(w, "login failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, loginRespJson, http.StatusOK)
}

func (handler *Handler) HandleGetInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.info")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.Get(ctx, userUID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get user %s: %s", userUID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal user: %s", err)
		http.Error(w, "failed to marshal user", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}

func (handler *Handler) HandleUpdateInfo(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.update-info")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	var req User
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Tracef("update user, unmarshal json params: %s", err)
		http.Error(w, "update user failed", http.StatusBadRequest)
		return
	}

	user, err := handler.repo.Get(ctx, userUID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get user %s: %s", userUID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Age != 0 {
		user.Age = req.Age
	}
	if req.Height != 0 {
		user.Height = req.Height
	}
	if req.Weight != 0 {
		user.Weight = req.Weight
	}
	if req.FitnessLevel != "" {
		user.FitnessLevel = req.FitnessLevel
	}

	if err := handler.repo.Update(ctx, user); err != nil {
		log.Errorf("failed to update user %s: %s", userUID, err)
		http.Error(w, "error, failed to update user", http.StatusInternalServerError)
		return
	}

	userJson, err := json.Marshal(user)
	if err != nil {
		log.Errorf("failed to marshal user: %s", err)
		http.Error(w, "failed to marshal user", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, userJson, http.StatusOK)
}

// HandleDelete removes the user's identity, all their workout logs
// and the profile row, in that order. Logs are only ever deleted as
// part of this cascade.
func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.delete")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	idToken := bearerToken(r)
	if err := handler.identity.DeleteUser(ctx, idToken); err != nil {
		log.Errorf("failed to delete identity of %s: %s", userUID, err)
		http.Error(w, "error, failed to delete user", http.StatusInternalServerError)
		return
	}

	deletedLogs, err := handler.logs.DeleteForUser(ctx, userUID)
	if err != nil {
		log.Errorf("failed to delete workout logs of %s: %s", userUID, err)
		http.Error(w, "error, failed to delete user", http.StatusInternalServerError)
		return
	}

	if err := handler.repo.Delete(ctx, userUID); err != nil && !errors.Is(err, ErrUserNotFound) {
		log.Errorf("failed to delete user %s: %s", userUID, err)
		http.Error(w, "error, failed to delete user", http.StatusInternalServerError)
		return
	}

	log.Debugf("user %s deleted, %d workout logs removed", userUID, deletedLogs)
	pkg.WriteTextResponseOK(w, "user deleted")
}

func (handler *Handler) HandleGetUsername(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.username")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	user, err := handler.repo.Get(ctx, userUID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("failed to get user %s: %s", userUID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	usernameRespJson, err := json.Marshal(UsernameResponse{
		Username:  user.Name,
		FirstName: user.FirstName(),
	})
	if err != nil {
		log.Errorf("failed to marshal username response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, usernameRespJson, http.StatusOK)
}

// HandleGetUID echoes the authenticated user id back, a cheap way
// for clients to check their token.
func (handler *Handler) HandleGetUID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.users.uid")
	defer span.End()

	userUID, ok := identity.UIDFromContext(ctx)
	if !ok {
		http.Error(w, "no user", http.StatusUnauthorized)
		return
	}

	uidRespJson, err := json.Marshal(map[string]string{"uid": userUID})
	if err != nil {
		log.Errorf("failed to marshal uid response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, uidRespJson, http.StatusOK)
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	return strings.TrimPrefix(authHeader, "Bearer ")
}
