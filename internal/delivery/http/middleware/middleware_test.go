package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rx-prescription-api/config"
	"rx-prescription-api/internal/domain/entity"
	"rx-prescription-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() *jwt.JWTService {
	return jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 24 * time.Hour,
	})
}

func okHandler() (http.Handler, *bool) {
	called := false
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}), &called
}

func TestAuthenticateRejectsMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), nil)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/profile", nil)
	m.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthenticateRejectsMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), nil)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/profile", nil)
	req.Header.Set("Authorization", "Token abcdef")
	m.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestAuthenticateRejectsInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(newTestJWTService(), nil)
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/profile", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	m.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

// A refresh token must never pass the access-token gate
func TestAuthenticateRejectsRefreshToken(t *testing.T) {
	jwtService := newTestJWTService()
	m := NewAuthMiddleware(jwtService, nil)
	next, called := okHandler()

	token, _, err := jwtService.GenerateRefreshToken(uuid.New(), "jane.roe@example.com", string(entity.UserTypeDoctor))
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/profile", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	m.Authenticate(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestRequireDoctorAllowsDoctor(t *testing.T) {
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", nil)
	ctx := context.WithValue(req.Context(), UserTypeKey, string(entity.UserTypeDoctor))
	RequireDoctor(next).ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, *called)
}

func TestRequireDoctorForbidsPatient(t *testing.T) {
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", nil)
	ctx := context.WithValue(req.Context(), UserTypeKey, string(entity.UserTypePatient))
	RequireDoctor(next).ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusForbidden, rec.Code)
	require.False(t, *called)
}

func TestRequireUserTypeWithoutContext(t *testing.T) {
	next, called := okHandler()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/prescriptions", nil)
	RequireDoctor(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, *called)
}

func TestContextGetters(t *testing.T) {
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), UserIDKey, userID)
	ctx = context.WithValue(ctx, UserEmailKey, "jane.roe@example.com")
	ctx = context.WithValue(ctx, UserTypeKey, string(entity.UserTypeDoctor))
	ctx = context.WithValue(ctx, TokenIDKey, "token-123")

	gotID, ok := GetUserIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, userID, gotID)

	email, ok := GetUserEmailFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "jane.roe@example.com", email)

	userType, ok := GetUserTypeFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, string(entity.UserTypeDoctor), userType)

	tokenID, ok := GetTokenIDFromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "token-123", tokenID)

	_, ok = GetUserIDFromContext(context.Background())
	require.False(t, ok)
}
