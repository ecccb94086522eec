package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shipekarrohit/backend-project/apperror"
)

type stubResolver struct {
	user *User
	err  error
}

func (s *stubResolver) FindUserByID(ctx context.Context, id int64) (*User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

// okHandler records whether the chain reached the handler and echoes the
// principal it saw.
func okHandler(t *testing.T, reached *bool, principal **Principal) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*reached = true
		if p, ok := PrincipalFromContext(r.Context()); ok {
			*principal = p
		}
		w.WriteHeader(http.StatusOK)
	})
}

func decodeEnvelope(t *testing.T, res *httptest.ResponseRecorder) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &env))
	return env
}

func TestAuthenticateMissingHeader(t *testing.T) {
	tokens := newTestTokenService("secret", time.Hour)
	reached := false
	var principal *Principal
	mw := Authenticate(tokens, &stubResolver{})(okHandler(t, &reached, &principal))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	res := httptest.NewRecorder()
	mw.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, reached)
	env := decodeEnvelope(t, res)
	assert.False(t, env.Success)
}

func TestAuthenticateMalformedHeader(t *testing.T) {
	tokens := newTestTokenService("secret", time.Hour)
	reached := false
	var principal *Principal
	mw := Authenticate(tokens, &stubResolver{})(okHandler(t, &reached, &principal))

	for _, header := range []string{"Token abc", "Bearer", "Bearer a b"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", header)
		res := httptest.NewRecorder()
		mw.ServeHTTP(res, req)

		assert.Equal(t, http.StatusUnauthorized, res.Code, "header %q", header)
	}
	assert.False(t, reached)
}

func TestAuthenticateInvalidToken(t *testing.T) {
	tokens := newTestTokenService("secret", time.Hour)
	forged, err := newTestTokenService("other-secret", time.Hour).Issue(1, "a@x.com", RoleStudent)
	require.NoError(t, err)

	reached := false
	var principal *Principal
	mw := Authenticate(tokens, &stubResolver{})(okHandler(t, &reached, &principal))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	res := httptest.NewRecorder()
	mw.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, reached)
}

func TestAuthenticateVanishedPrincipal(t *testing.T) {
	tokens := newTestTokenService("secret", time.Hour)
	token, err := tokens.Issue(7, "gone@x.com", RoleStudent)
	require.NoError(t, err)

	resolver := &stubResolver{err: apperror.NewNotFoundError("user with ID 7 not found", nil)}
	reached := false
	var principal *Principal
	mw := Authenticate(tokens, resolver)(okHandler(t, &reached, &principal))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	mw.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, reached)
}

func TestAuthenticateSuccessAttachesPrincipal(t *testing.T) {
	tokens := newTestTokenService("secret", time.Hour)
	token, err := tokens.Issue(7, "jane@x.com", RoleTeacher)
	require.NoError(t, err)

	resolver := &stubResolver{user: &User{ID: 7, Name: "Jane", Email: "jane@x.com", Role: RoleTeacher}}
	reached := false
	var principal *Principal
	mw := Authenticate(tokens, resolver)(okHandler(t, &reached, &principal))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res := httptest.NewRecorder()
	mw.ServeHTTP(res, req)

	assert.Equal(t, http.StatusOK, res.Code)
	assert.True(t, reached)
	require.NotNil(t, principal)
	assert.Equal(t, int64(7), principal.ID)
	assert.Equal(t, RoleTeacher, principal.Role)
}

func TestAuthorizeRoleMembership(t *testing.T) {
	tests := []struct {
		name     string
		role     Role
		allowed  []Role
		wantCode int
	}{
		{"teacher admitted", RoleTeacher, []Role{RoleTeacher}, http.StatusOK},
		{"student rejected", RoleStudent, []Role{RoleTeacher}, http.StatusForbidden},
		{"student admitted when listed", RoleStudent, []Role{RoleStudent, RoleTeacher}, http.StatusOK},
		// No hierarchy: teacher is not implicitly anything else.
		{"teacher rejected when not listed", RoleTeacher, []Role{RoleStudent}, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reached := false
			var principal *Principal
			mw := Authorize(tt.allowed...)(okHandler(t, &reached, &principal))

			req := httptest.NewRequest(http.MethodPost, "/api/courses", nil)
			ctx := NewContextWithPrincipal(req.Context(), &Principal{ID: 1, Role: tt.role})
			res := httptest.NewRecorder()
			mw.ServeHTTP(res, req.WithContext(ctx))

			assert.Equal(t, tt.wantCode, res.Code)
			assert.Equal(t, tt.wantCode == http.StatusOK, reached)
		})
	}
}

func TestAuthorizeWithoutAuthenticate(t *testing.T) {
	// Route-wiring bug: authorize without a prior authenticate still answers
	// with an auth failure, never a pass-through.
	reached := false
	var principal *Principal
	mw := Authorize(RoleTeacher)(okHandler(t, &reached, &principal))

	req := httptest.NewRequest(http.MethodGet, "/api/logs", nil)
	res := httptest.NewRecorder()
	mw.ServeHTTP(res, req)

	assert.Equal(t, http.StatusUnauthorized, res.Code)
	assert.False(t, reached)
}
