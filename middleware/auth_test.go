package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"marketplace/models"
	"marketplace/services/user"
	"marketplace/utils"
)

// fakeUserService resolves exactly one known token.
type fakeUserService struct {
	token string
	user  *models.User
}

func (f *fakeUserService) Signup(user.SignupInput) (*user.AuthResponse, error) {
	panic("not used")
}

func (f *fakeUserService) Login(string, string) (*user.AuthResponse, error) {
	panic("not used")
}

func (f *fakeUserService) Authenticate(token string) (*models.User, error) {
	if token == f.token {
		return f.user, nil
	}
	return nil, utils.AuthError{Message: "invalid or expired token"}
}

func (f *fakeUserService) Logout(*models.User, string) error { return nil }

func (f *fakeUserService) SetProviderMode(*models.User, bool) error { return nil }

func (f *fakeUserService) GetByID(string) (*models.User, error) {
	return f.user, nil
}

func newAuthTestRouter(t *testing.T) (*gin.Engine, *fakeUserService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc := &fakeUserService{
		token: "0011223344556677889900112233445566778899001122334455",
		user:  &models.User{ID: primitive.NewObjectID(), Name: "Test", Email: "t@x.com"},
	}

	r := gin.New()
	r.GET("/protected", AuthRequired(svc), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"id":    c.GetString(CtxUserIDKey),
			"email": u.Email,
			"token": c.GetString(CtxTokenKey),
		})
	})
	return r, svc
}

func TestAuthRequiredRejections(t *testing.T) {
	t.Parallel()

	r, svc := newAuthTestRouter(t)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Basic " + svc.token},
		{"bare token", svc.token},
		{"unknown token", "Bearer deadbeef"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want 401", w.Code)
			}
		})
	}
}

func TestAuthRequiredAcceptsBearerToken(t *testing.T) {
	t.Parallel()

	r, svc := newAuthTestRouter(t)

	// Scheme matching is case-insensitive.
	for _, scheme := range []string{"Bearer", "bearer", "BEARER"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", scheme+" "+svc.token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("scheme %q: status = %d, want 200", scheme, w.Code)
		}
	}
}
