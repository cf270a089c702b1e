package router

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/orangeot/backoffice-api/internal/auth"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

type stubVerifier struct {
	user *auth.User
	err  error
}

func (v *stubVerifier) Verify(_ context.Context, token string) (*auth.User, error) {
	if token == "" {
		return nil, auth.ErrUnauthorized
	}
	if v.err != nil {
		return nil, v.err
	}
	return v.user, nil
}

func adminTestRouter(verifier auth.Verifier) *gin.Engine {
	r := gin.New()
	r.Use(RequireAdmin(verifier, "admin@orangeot.com", "https://orangeot.com/admin/login", slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.GET("/protected", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("admin_email")})
	})
	return r
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name         string
		verifier     *stubVerifier
		authHeader   string
		wantStatus   int
		wantRedirect bool
	}{
		{
			name:       "admin token passes",
			verifier:   &stubVerifier{user: &auth.User{ID: "u1", Email: "admin@orangeot.com"}},
			authHeader: "Bearer valid-token",
			wantStatus: http.StatusOK,
		},
		{
			name:       "admin email comparison is case insensitive",
			verifier:   &stubVerifier{user: &auth.User{ID: "u1", Email: "Admin@OrangeOT.com"}},
			authHeader: "Bearer valid-token",
			wantStatus: http.StatusOK,
		},
		{
			name:         "missing header redirects to login",
			verifier:     &stubVerifier{},
			wantStatus:   http.StatusSeeOther,
			wantRedirect: true,
		},
		{
			name:         "invalid token redirects to login",
			verifier:     &stubVerifier{err: auth.ErrUnauthorized},
			authHeader:   "Bearer expired-token",
			wantStatus:   http.StatusSeeOther,
			wantRedirect: true,
		},
		{
			name:         "non-admin account redirects to login",
			verifier:     &stubVerifier{user: &auth.User{ID: "u2", Email: "intruder@example.com"}},
			authHeader:   "Bearer valid-token",
			wantStatus:   http.StatusSeeOther,
			wantRedirect: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := adminTestRouter(tt.verifier)

			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}

			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantRedirect {
				assert.Equal(t, "https://orangeot.com/admin/login", rec.Header().Get("Location"))
			}
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("Bearer abc "))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
	assert.Equal(t, "", bearerToken("Basic abc"))
}
