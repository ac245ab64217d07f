package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skellio/hr-backend-go/internal/domain/user"
	"github.com/skellio/hr-backend-go/internal/pkg/jwt"
)

func testJWT() jwt.Service {
	return jwt.NewJWTService("test-secret-key-for-jwt", "1h", "24h")
}

func serveChain(t *testing.T, handler http.Handler, token string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired_AccessTokenPassesAndStashesIDs(t *testing.T) {
	jwtService := testJWT()
	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@acme.test", "company-1", user.RoleAdmin)
	require.NoError(t, err)

	var gotCompany, gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCompany = CompanyID(r.Context())
		gotUser = UserID(r.Context())
	})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(AuthRequired(jwtService.JWTAuth())(next))

	rec := serveChain(t, handler, token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "company-1", gotCompany)
	assert.Equal(t, "user-1", gotUser)
}

func TestAuthRequired_RefreshTokenRejected(t *testing.T) {
	jwtService := testJWT()
	token, _, err := jwtService.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a refresh token")
	})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(AuthRequired(jwtService.JWTAuth())(next))

	rec := serveChain(t, handler, token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequired_MissingTokenRejected(t *testing.T) {
	jwtService := testJWT()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(AuthRequired(jwtService.JWTAuth())(next))

	rec := serveChain(t, handler, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAdmin_AdminPasses(t *testing.T) {
	jwtService := testJWT()
	token, _, err := jwtService.GenerateAccessToken("user-1", "admin@acme.test", "company-1", user.RoleAdmin)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(RequireAdmin(next))

	rec := serveChain(t, handler, token)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireAdmin_StaffForbidden(t *testing.T) {
	jwtService := testJWT()
	token, _, err := jwtService.GenerateAccessToken("user-2", "staff@acme.test", "company-1", user.RoleStaff)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a staff role")
	})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(RequireAdmin(next))

	rec := serveChain(t, handler, token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireAdmin_InvalidTokenForbiddenNotServerError(t *testing.T) {
	jwtService := testJWT()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a garbage token")
	})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(RequireAdmin(next))

	rec := serveChain(t, handler, "not-a-jwt")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequirePermission_ManagerCanApproveLeave(t *testing.T) {
	jwtService := testJWT()
	token, _, err := jwtService.GenerateAccessToken("user-3", "manager@acme.test", "company-1", user.RoleManager)
	require.NoError(t, err)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := jwtauth.Verifier(jwtService.JWTAuth())(RequirePermission(user.PermissionLeaveApprove)(next))

	rec := serveChain(t, handler, token)

	assert.Equal(t, http.StatusOK, rec.Code)
}
