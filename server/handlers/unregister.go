package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/metrics"
)

// UnregisterHandler handles requests to remove a student from an
// activity's roster.
//
// Route: DELETE /activities/{activity}/participants/{email}
type UnregisterHandler struct {
	logger      *slog.Logger
	service     WithdrawalService
	withdrawals metrics.CounterVec
}

// NewUnregisterHandler creates a new UnregisterHandler.
func NewUnregisterHandler(logger *slog.Logger, service WithdrawalService, withdrawals metrics.CounterVec) *UnregisterHandler {
	return &UnregisterHandler{
		logger:      logger,
		service:     service,
		withdrawals: withdrawals,
	}
}

// ServeHTTP implements http.Handler.
func (h *UnregisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")
	email := r.PathValue("email")

	err := h.service.Remove(activity, email)
	h.withdrawals.With(prometheus.Labels{
		"activity": activity,
		"outcome":  outcomeLabel(err),
	}).Inc()

	if err != nil {
		h.logger.Warn("unregister rejected", "activity", activity, "email", email, "error", err)
		writeStoreError(w, err)
		return
	}

	h.logger.Info("unregister recorded", "activity", activity, "email", email)
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Unregistered %s from %s", email, activity),
	})
}
