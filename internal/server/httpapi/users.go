package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/foodie/internal/server/auth"
	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/go-chi/chi/v5"
)

type tokenResponse struct {
	Token string `json:"token"`
}

type adminResponse struct {
	Admin bool `json:"admin"`
}

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Restaurant project"))
}

func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	var identity auth.Identity
	if err := decodeJSON(r, &identity); err != nil {
		h.fail(w, r, err)
		return
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.Users.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.Users.Create(r.Context(), &user)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// isAdmin answers {admin:false} rather than 403 when the path email is not
// the caller's.
func (h *Handler) isAdmin(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	if err := checkOwner(r, email); err != nil {
		writeJSON(w, http.StatusOK, adminResponse{Admin: false})
		return
	}

	admin, err := h.Users.IsAdmin(r.Context(), email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, adminResponse{Admin: admin})
}

func (h *Handler) promoteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.Users.Promote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	res, err := h.Users.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
