package httpapi

import (
	"net/http"

	"github.com/dmitrijs2005/foodie/internal/server/models"
)

type intentRequest struct {
	OverallTotal float64 `json:"overallTotal"`
}

type intentResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type intentError struct {
	Error string `json:"error"`
}

// createPaymentIntent answers every failure, including a total below one
// cent, with a bare 500.
func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req intentRequest
	if err := decodeJSON(r, &req); err != nil {
		h.intentFailed(w, r, err)
		return
	}

	secret, err := h.Intents.CreateIntent(r.Context(), req.OverallTotal)
	if err != nil {
		h.intentFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, intentResponse{ClientSecret: secret})
}

func (h *Handler) intentFailed(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error(r.Context(), "create payment intent", "err", err)
	writeJSON(w, http.StatusInternalServerError, intentError{Error: http.StatusText(http.StatusInternalServerError)})
}

func (h *Handler) recordPayment(w http.ResponseWriter, r *http.Request) {
	var payment models.Payment
	if err := decodeJSON(r, &payment); err != nil {
		h.fail(w, r, err)
		return
	}

	res, err := h.Payments.Record(r.Context(), &payment)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) paymentHistory(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusOK, []*models.Payment{})
		return
	}
	if err := checkOwner(r, email); err != nil {
		h.fail(w, r, err)
		return
	}

	list, err := h.Payments.History(r.Context(), email)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *Handler) adminStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Stats.Stats(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
