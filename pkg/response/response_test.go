package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestSuccessEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusCreated, "Prescription created successfully", map[string]string{"prescription_id": "RX1A2B3C4D"})

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	body := decodeBody(t, rec)
	require.True(t, body.Success)
	require.Equal(t, "Prescription created successfully", body.Message)
	require.Nil(t, body.Error)

	data, ok := body.Data.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "RX1A2B3C4D", data["prescription_id"])
}

func TestValidationErrorEnvelope(t *testing.T) {
	rec := httptest.NewRecorder()

	ValidationError(rec, map[string]string{"Email": "Email is required"})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	require.False(t, body.Success)
	require.Equal(t, "Validation failed", body.Message)

	fields, ok := body.Error.(map[string]interface{})
	require.True(t, ok)
	require.Equal(t, "Email is required", fields["Email"])
}

func TestStatusHelpersDefaultMessages(t *testing.T) {
	cases := []struct {
		name    string
		write   func(w http.ResponseWriter)
		code    int
		message string
	}{
		{"unauthorized", func(w http.ResponseWriter) { Unauthorized(w, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"not found", func(w http.ResponseWriter) { NotFound(w, "") }, http.StatusNotFound, "Resource not found"},
		{"forbidden", func(w http.ResponseWriter) { Forbidden(w, "") }, http.StatusForbidden, "Forbidden"},
		{"internal", func(w http.ResponseWriter) { InternalServerError(w, "") }, http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tc.write(rec)

			require.Equal(t, tc.code, rec.Code)

			body := decodeBody(t, rec)
			require.False(t, body.Success)
			require.Equal(t, tc.message, body.Message)
		})
	}
}
