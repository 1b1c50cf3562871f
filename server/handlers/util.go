package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mergington/activities/roster"
)

// ErrorResponse is returned when an error occurs. The field is named
// "detail" to keep the wire contract the frontend already speaks.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// MessageResponse is returned by successful signup and unregister calls.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// writeStoreError maps roster errors to HTTP responses. Unknown
// activities and unknown participants are both 404s with distinct
// messages; duplicate signups and full rosters are client errors.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, roster.ErrActivityNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Activity not found"})
	case errors.Is(err, roster.ErrParticipantNotFound):
		writeJSON(w, http.StatusNotFound, ErrorResponse{Detail: "Participant not found"})
	case errors.Is(err, roster.ErrAlreadySignedUp):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Student already signed up for this activity"})
	case errors.Is(err, roster.ErrActivityFull):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Detail: "Activity is full"})
	default:
		writeJSON(w, http.StatusInternalServerError, ErrorResponse{Detail: "Internal server error"})
	}
}

// outcomeLabel names the result of a mutation for metric labels.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, roster.ErrActivityNotFound):
		return "unknown_activity"
	case errors.Is(err, roster.ErrParticipantNotFound):
		return "unknown_participant"
	case errors.Is(err, roster.ErrAlreadySignedUp):
		return "duplicate"
	case errors.Is(err, roster.ErrActivityFull):
		return "full"
	default:
		return "error"
	}
}
