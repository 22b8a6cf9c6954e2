package middleware

import (
	"context"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"

	"github.com/drazenc/fittrack/internal/identity"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
)

//go:generate mockgen -source=$GOFILE -destination=middleware_mocks_test.go -package=middleware_test

type tokenVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (uid string, err error)
}

type AuthMiddlewareHandler struct {
	verifier             tokenVerifier
	allowedPaths         map[string]bool
	allowedPathsPrefixes []string
}

func NewAuthMiddlewareHandler(verifier tokenVerifier) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		verifier: verifier,
		allowedPaths: map[string]bool{
			// ops handler:
			"/":        true,
			"/version": true,

			// user login:
			"/api/auth/login": true,
		},
		allowedPathsPrefixes: []string{
			// admin endpoints carry their own session checks
			"/a/",
		},
	}
}

func (h *AuthMiddlewareHandler) pathIsAlwaysAllowed(r *http.Request) bool {
	path := r.URL.Path
	if h.allowedPaths[path] {
		return true
	}
	for _, prefix := range h.allowedPathsPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}

	// registration is the one open write endpoint
	if path == "/api/users" && r.Method == http.MethodPost {
		return true
	}

	// the exercise catalog is public, the log and stats endpoints
	// underneath it are not
	if strings.HasPrefix(path, "/api/exercises") {
		return !strings.HasPrefix(path, "/api/exercises/logs") &&
			!strings.HasPrefix(path, "/api/exercises/muscle-percentage")
	}

	return false
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.pathIsAlwaysAllowed(r) {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			authHeader := r.Header.Get("Authorization")
			idToken := strings.TrimPrefix(authHeader, "Bearer ")
			if idToken == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			uid, err := h.verifier.VerifyToken(ctx, idToken)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "token-verify-failed")
				span.RecordError(err)
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(identity.ContextWithUID(ctx, uid)))
		})
	}
}
