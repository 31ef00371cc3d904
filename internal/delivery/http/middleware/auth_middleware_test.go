package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"kindred/internal/domain/service"
	mockservice "kindred/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuth(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/me/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	nextCalled := false
	handler := m.Authenticate(func(c echo.Context) error {
		nextCalled = true

		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))

	return rec, c, nextCalled
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"user", "admin"}}, nil).
		Once()

	m := NewAuthMiddleware(tokenSvc)
	rec, c, nextCalled := runAuth(t, m, "Bearer good-token")

	assert.True(t, nextCalled)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, userID, c.Get("userID"))
	assert.Equal(t, []string{"user", "admin"}, c.Get("roles"))
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	rec, _, nextCalled := runAuth(t, m, "")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_NotBearer(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))
	rec, _, nextCalled := runAuth(t, m, "Basic dXNlcjpwYXNz")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	tokenSvc := mockservice.NewMockTokenService(t)
	tokenSvc.EXPECT().
		ValidateToken("bad-token").
		Return(nil, errors.New("token is expired")).
		Once()

	m := NewAuthMiddleware(tokenSvc)
	rec, _, nextCalled := runAuth(t, m, "Bearer bad-token")

	assert.False(t, nextCalled)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockservice.NewMockTokenService(t))

	tests := []struct {
		name       string
		roles      any
		wantStatus int
	}{
		{name: "has role", roles: []string{"user", "admin"}, wantStatus: http.StatusOK},
		{name: "missing role", roles: []string{"user"}, wantStatus: http.StatusForbidden},
		{name: "no roles set", roles: nil, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/admin/ngos", nil)
			rec := httptest.NewRecorder()
			c := echo.New().NewContext(req, rec)
			if tt.roles != nil {
				c.Set("roles", tt.roles)
			}

			handler := m.RequireRole("admin")(func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			})
			require.NoError(t, handler(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
