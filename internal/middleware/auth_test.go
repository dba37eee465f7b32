package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, claims Claims, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authTestHandler() (http.Handler, *string, *[]string) {
	var userID string
	var scopes []string
	h := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID = GetUserID(r.Context())
		scopes = GetScopes(r.Context())
		w.WriteHeader(http.StatusOK)
	}))
	return h, &userID, &scopes
}

func TestAuthValidToken(t *testing.T) {
	h, userID, scopes := authTestHandler()

	token := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-42",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scopes: []string{"chat:write"},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", *userID)
	assert.Equal(t, []string{"chat:write"}, *scopes)
}

func TestAuthRejects(t *testing.T) {
	h, _, _ := authTestHandler()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not bearer", "Basic abc"},
		{"garbage token", "Bearer not.a.jwt"},
		{"wrong secret", "Bearer " + signToken(t, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		}, "other-secret")},
		{"expired", "Bearer " + signToken(t, Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   "user-42",
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			},
		}, testSecret)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestHasScope(t *testing.T) {
	h := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, HasScope(r.Context(), "chat:read"))
		assert.False(t, HasScope(r.Context(), "admin"))
		w.WriteHeader(http.StatusOK)
	}))

	token := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Scopes: []string{"chat:read", "chat:write"},
	}, testSecret)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestValidateText(t *testing.T) {
	assert.NoError(t, ValidateText("pasta"))
	assert.NoError(t, ValidateText(""), "blank text is the engine's no-op, not an error")
	assert.Error(t, ValidateText(strings.Repeat("a", 2001)))
	assert.Error(t, ValidateText(string([]byte{0xff, 0xfe})))
}

func TestValidateSessionID(t *testing.T) {
	assert.NoError(t, ValidateSessionID(uuid.Must(uuid.NewV7()).String()))
	assert.Error(t, ValidateSessionID("abc"))
	assert.Error(t, ValidateSessionID(""))
}

func TestValidateTopic(t *testing.T) {
	assert.NoError(t, ValidateTopic("food"))
	assert.Error(t, ValidateTopic(""))
	assert.Error(t, ValidateTopic(strings.Repeat("x", 33)))
}
