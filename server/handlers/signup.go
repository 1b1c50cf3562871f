package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/mergington/activities/metrics"
)

// SignupHandler handles requests to sign a student up for an activity.
//
// Route: POST /activities/{activity}/signup?email={email}
// The mux decodes the path segment, so activity names with spaces
// arrive here in plain form.
type SignupHandler struct {
	logger  *slog.Logger
	service SignupService
	signups metrics.CounterVec
}

// NewSignupHandler creates a new SignupHandler.
func NewSignupHandler(logger *slog.Logger, service SignupService, signups metrics.CounterVec) *SignupHandler {
	return &SignupHandler{
		logger:  logger,
		service: service,
		signups: signups,
	}
}

// ServeHTTP implements http.Handler.
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	activity := r.PathValue("activity")

	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, http.StatusBadRequest, ErrorResponse{
			Detail: "email query parameter is required",
		})
		return
	}

	err := h.service.Signup(activity, email)
	h.signups.With(prometheus.Labels{
		"activity": activity,
		"outcome":  outcomeLabel(err),
	}).Inc()

	if err != nil {
		h.logger.Warn("signup rejected", "activity", activity, "email", email, "error", err)
		writeStoreError(w, err)
		return
	}

	h.logger.Info("signup recorded", "activity", activity, "email", email)
	writeJSON(w, http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Signed up %s for %s", email, activity),
	})
}
