package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"rx-prescription-api/internal/delivery/dto"
	"rx-prescription-api/internal/delivery/http/middleware"
	"rx-prescription-api/internal/pdf"
	"rx-prescription-api/internal/usecase"
	"rx-prescription-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubPrescriptionUsecase struct {
	createErr error
	created   *dto.CreatePrescriptionResponse
	gotReq    *dto.CreatePrescriptionRequest
}

func (s *stubPrescriptionUsecase) Create(ctx context.Context, doctorUserID uuid.UUID, req *dto.CreatePrescriptionRequest) (*dto.CreatePrescriptionResponse, error) {
	s.gotReq = req
	if s.createErr != nil {
		return nil, s.createErr
	}
	return s.created, nil
}

func (s *stubPrescriptionUsecase) GetByID(ctx context.Context, doctorUserID uuid.UUID, id uint) (*dto.PrescriptionResponse, error) {
	return nil, usecase.ErrPrescriptionNotFound
}

func (s *stubPrescriptionUsecase) GetDocument(ctx context.Context, doctorUserID uuid.UUID, id uint) (*pdf.PrescriptionDocument, error) {
	return nil, usecase.ErrPrescriptionNotFound
}

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserIDKey, uuid.New())
	return req.WithContext(ctx)
}

func TestCreatePrescriptionSuccess(t *testing.T) {
	stub := &stubPrescriptionUsecase{created: &dto.CreatePrescriptionResponse{PrescriptionID: "RX1A2B3C4D", ID: 7}}
	h := NewPrescriptionHandler(stub, pdf.NewRenderer(), validator.NewValidator())

	body := `{
		"patient_id": 1,
		"chief_complaint": "Fever and sore throat",
		"medicines": [{"medicine_id": 2, "dosage": "500mg", "frequency": "TID", "duration": "5 days"}]
	}`
	rec := httptest.NewRecorder()
	h.CreatePrescription(rec, authedRequest(http.MethodPost, "/api/v1/prescriptions", body))

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, stub.gotReq)
	require.Equal(t, uint(1), stub.gotReq.PatientID)

	var envelope struct {
		Success bool                           `json:"success"`
		Data    dto.CreatePrescriptionResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.True(t, envelope.Success)
	require.Equal(t, "RX1A2B3C4D", envelope.Data.PrescriptionID)
	require.Equal(t, uint(7), envelope.Data.ID)
}

func TestCreatePrescriptionRejectsInvalidBody(t *testing.T) {
	stub := &stubPrescriptionUsecase{}
	h := NewPrescriptionHandler(stub, pdf.NewRenderer(), validator.NewValidator())

	rec := httptest.NewRecorder()
	h.CreatePrescription(rec, authedRequest(http.MethodPost, "/api/v1/prescriptions", "{not json"))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, stub.gotReq)
}

func TestCreatePrescriptionValidatesFields(t *testing.T) {
	stub := &stubPrescriptionUsecase{}
	h := NewPrescriptionHandler(stub, pdf.NewRenderer(), validator.NewValidator())

	// Missing chief_complaint and a medicine line without dosage
	body := `{"patient_id": 1, "medicines": [{"medicine_id": 2, "frequency": "TID", "duration": "5 days"}]}`
	rec := httptest.NewRecorder()
	h.CreatePrescription(rec, authedRequest(http.MethodPost, "/api/v1/prescriptions", body))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Nil(t, stub.gotReq)

	var envelope struct {
		Message string            `json:"message"`
		Error   map[string]string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&envelope))
	require.Equal(t, "Validation failed", envelope.Message)
	require.Contains(t, envelope.Error, "ChiefComplaint")
	require.Contains(t, envelope.Error, "Dosage")
}

func TestCreatePrescriptionErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"no patient reference", usecase.ErrNoPatientReference, http.StatusBadRequest},
		{"bad follow-up date", usecase.ErrInvalidDateFormat, http.StatusBadRequest},
		{"doctor profile missing", usecase.ErrDoctorProfileNotFound, http.StatusNotFound},
		{"patient missing", usecase.ErrPatientNotFound, http.StatusNotFound},
		{"patient not owned", usecase.ErrPatientNotOwned, http.StatusForbidden},
	}

	body := `{"patient_id": 1, "chief_complaint": "Headache"}`
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := NewPrescriptionHandler(&stubPrescriptionUsecase{createErr: tc.err}, pdf.NewRenderer(), validator.NewValidator())

			rec := httptest.NewRecorder()
			h.CreatePrescription(rec, authedRequest(http.MethodPost, "/api/v1/prescriptions", body))

			require.Equal(t, tc.code, rec.Code)
		})
	}
}

func TestCreatePrescriptionRequiresAuthContext(t *testing.T) {
	h := NewPrescriptionHandler(&stubPrescriptionUsecase{}, pdf.NewRenderer(), validator.NewValidator())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", strings.NewReader(`{}`))
	h.CreatePrescription(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
