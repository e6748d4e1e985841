package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/foodie/internal/common"
	"github.com/dmitrijs2005/foodie/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey struct{}

// ClaimsFromContext returns the claims stored by Authenticate.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	c, ok := ctx.Value(ctxKey{}).(*auth.Claims)
	return c, ok
}

// Authenticate requires a valid "Authorization: Bearer <token>" header and
// stores the verified claims in the request context.
func (h *Handler) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get(common.AuthorizationHeaderName))
		if !ok {
			h.fail(w, r, common.ErrMissingToken)
			return
		}

		claims, err := h.Tokens.Verify(token)
		if err != nil {
			h.fail(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin must run after Authenticate. The role is read from the store
// on every request.
func (h *Handler) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			h.fail(w, r, common.ErrMissingToken)
			return
		}

		admin, err := h.Users.IsAdmin(r.Context(), claims.Email)
		if err != nil {
			h.fail(w, r, err)
			return
		}
		if !admin {
			h.fail(w, r, common.ErrForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, common.BearerScheme) {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// checkOwner fails with common.ErrForbidden unless email is the token
// identity. The store is not consulted.
func checkOwner(r *http.Request, email string) error {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		return common.ErrMissingToken
	}
	if email != claims.Email {
		return common.ErrForbidden
	}
	return nil
}
