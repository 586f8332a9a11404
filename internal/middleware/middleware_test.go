package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"wellnest-be/internal/auth"
	"wellnest-be/internal/user"
)

// MockUserRepository is a mock implementation of the user repository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, limit int64) ([]*user.User, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*user.User), args.Error(1)
}

func authRig(tokens *auth.TokenManager, repo user.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/whoami", Authenticate(tokens, repo), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": CurrentUser(c).ID})
	})
	return r
}

func TestAuthenticate(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	t.Run("Missing Token", func(t *testing.T) {
		r := authRig(tokens, new(MockUserRepository))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Missing token")
	})

	t.Run("Invalid Token", func(t *testing.T) {
		r := authRig(tokens, new(MockUserRepository))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid token")
	})

	t.Run("Expired Token", func(t *testing.T) {
		expired := auth.NewTokenManager("test-secret", -time.Minute)
		tokenStr, err := expired.Issue("u-1", "a@b.com", auth.RoleCustomer)
		require.NoError(t, err)

		r := authRig(tokens, new(MockUserRepository))

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Token expired")
	})

	t.Run("Deleted Account", func(t *testing.T) {
		tokenStr, err := tokens.Issue("u-gone", "a@b.com", auth.RoleCustomer)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, "u-gone").Return(nil, nil)
		r := authRig(tokens, repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "User not found")
	})

	t.Run("Success Sets Current User", func(t *testing.T) {
		tokenStr, err := tokens.Issue("u-1", "a@b.com", auth.RoleCustomer)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, "u-1").Return(&user.User{ID: "u-1", Role: auth.RoleCustomer}, nil)
		r := authRig(tokens, repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "u-1")
	})

	t.Run("Cookie Fallback", func(t *testing.T) {
		tokenStr, err := tokens.Issue("u-1", "a@b.com", auth.RoleCustomer)
		require.NoError(t, err)

		repo := new(MockUserRepository)
		repo.On("GetByID", mock.Anything, "u-1").Return(&user.User{ID: "u-1", Role: auth.RoleCustomer}, nil)
		r := authRig(tokens, repo)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenStr})
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func roleRig(u *user.User, guard gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	inject := func(c *gin.Context) {
		c.Set(currentUserKey, u)
		c.Next()
	}
	r.GET("/guarded", inject, guard, func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hitGuarded(r *gin.Engine) int {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/guarded", nil))
	return w.Code
}

func TestRequireAdmin(t *testing.T) {
	t.Run("Customer Rejected", func(t *testing.T) {
		r := roleRig(&user.User{ID: "u-1", Role: auth.RoleCustomer}, RequireAdmin())
		assert.Equal(t, http.StatusForbidden, hitGuarded(r))
	})

	t.Run("Pharmacist Rejected", func(t *testing.T) {
		r := roleRig(&user.User{ID: "ph-1", Role: auth.RolePharmacist}, RequireAdmin())
		assert.Equal(t, http.StatusForbidden, hitGuarded(r))
	})

	t.Run("Admin Admitted", func(t *testing.T) {
		r := roleRig(&user.User{ID: "adm-1", Role: auth.RoleAdmin}, RequireAdmin())
		assert.Equal(t, http.StatusOK, hitGuarded(r))
	})
}

func TestRequirePharmacist(t *testing.T) {
	t.Run("Customer Rejected", func(t *testing.T) {
		r := roleRig(&user.User{ID: "u-1", Role: auth.RoleCustomer}, RequirePharmacist())
		assert.Equal(t, http.StatusForbidden, hitGuarded(r))
	})

	t.Run("Pharmacist Admitted", func(t *testing.T) {
		r := roleRig(&user.User{ID: "ph-1", Role: auth.RolePharmacist}, RequirePharmacist())
		assert.Equal(t, http.StatusOK, hitGuarded(r))
	})

	t.Run("Admin Admitted", func(t *testing.T) {
		r := roleRig(&user.User{ID: "adm-1", Role: auth.RoleAdmin}, RequirePharmacist())
		assert.Equal(t, http.StatusOK, hitGuarded(r))
	})
}

func TestCORS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRig := func(origins []string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(origins))
		r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("Preflight Short Circuits", func(t *testing.T) {
		r := newRig([]string{"*"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("Listed Origin Echoed", func(t *testing.T) {
		r := newRig([]string{"https://shop.example.com"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://shop.example.com")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://shop.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("Unlisted Origin Gets No Headers", func(t *testing.T) {
		r := newRig([]string{"https://shop.example.com"})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})
}
