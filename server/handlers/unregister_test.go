package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/roster"
)

func newUnregisterRequest(activity, email string) *http.Request {
	req := httptest.NewRequest(http.MethodDelete, "/activities/x/participants/y", nil)
	req.SetPathValue("activity", activity)
	req.SetPathValue("email", email)
	return req
}

func TestUnregisterHandler_Success(t *testing.T) {
	service := &mockWithdrawalService{}
	withdrawals := newCountingVec()
	handler := NewUnregisterHandler(slog.Default(), service, withdrawals)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newUnregisterRequest("Chess Club", "michael@mergington.edu"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Chess Club", service.activity)
	assert.Equal(t, "michael@mergington.edu", service.email)

	var resp MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "michael@mergington.edu")
	assert.Contains(t, resp.Message, "Chess Club")

	assert.Equal(t, float64(1), withdrawals.counts["Chess Club/ok"])
}

func TestUnregisterHandler_Errors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantDetail  string
		wantOutcome string
	}{
		{
			name:        "unknown activity",
			err:         roster.ErrActivityNotFound,
			wantStatus:  http.StatusNotFound,
			wantDetail:  "Activity not found",
			wantOutcome: "unknown_activity",
		},
		{
			name:        "unknown participant",
			err:         roster.ErrParticipantNotFound,
			wantStatus:  http.StatusNotFound,
			wantDetail:  "Participant not found",
			wantOutcome: "unknown_participant",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mockWithdrawalService{err: tt.err}
			withdrawals := newCountingVec()
			handler := NewUnregisterHandler(slog.Default(), service, withdrawals)

			w := httptest.NewRecorder()
			handler.ServeHTTP(w, newUnregisterRequest("Chess Club", "a@b.edu"))

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDetail, resp.Detail)

			assert.Equal(t, float64(1), withdrawals.counts["Chess Club/"+tt.wantOutcome])
		})
	}
}
