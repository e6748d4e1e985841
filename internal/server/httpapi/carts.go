package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/foodie/internal/server/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []*models.CartEntry{})
		return
	}
	if err := checkOwner(r, email); err != nil {
		h.fail(w, r, err)
		return
	}

	entries, err := h.Carts.List(r.Context(), email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	var entry models.CartEntry
	if err := decodeJSON(r, &entry); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := checkOwner(r, entry.Email); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.Carts.Add(r.Context(), &entry)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// removeFromCart only deletes entries owned by the caller; someone else's
// id yields deletedCount 0.
func (h *Handler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	claims, _ := ClaimsFromContext(r.Context())

	res, err := h.Carts.Remove(r.Context(), chi.URLParam(r, "id"), claims.Email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
