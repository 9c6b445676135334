package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"carhub/config"
	"carhub/internal/domain/user"
	"carhub/internal/services"
	carhub_errors "carhub/pkg/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUserRepo struct {
	users map[uuid.UUID]user.User
}

func (r *stubUserRepo) Create(_ context.Context, u *user.User) error {
	r.users[u.ID] = *u
	return nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, carhub_errors.ErrNotFound
}

func (r *stubUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, carhub_errors.ErrNotFound
	}
	return u, nil
}

func setupAuthTest(t *testing.T) (*gin.Engine, *services.AuthService, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := &stubUserRepo{users: map[uuid.UUID]user.User{}}
	svc := services.NewAuthService(repo, &config.Config{JWTSecret: "test-secret"})

	r := gin.New()
	r.GET("/protected", AuthMiddleware(svc), func(c *gin.Context) {
		u, ok := services.UserFromContext(c.Request.Context())
		require.True(t, ok)
		c.JSON(http.StatusOK, gin.H{"id": u.ID.String()})
	})
	return r, svc, repo
}

func registerTestUser(t *testing.T, svc *services.AuthService) string {
	t.Helper()
	token, err := svc.Register(context.Background(), services.RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "pw",
	})
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	r, svc, _ := setupAuthTest(t)
	token := registerTestUser(t, svc)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddleware_MissingOrMalformedHeader(t *testing.T) {
	r, _, _ := setupAuthTest(t)

	for _, header := range []string{"", "Bearer", "Basic abc", "garbage"} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.Contains(t, w.Body.String(), "No token, authorization denied")
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	r, _, _ := setupAuthTest(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token is not valid")
}

func TestAuthMiddleware_UserGone(t *testing.T) {
	r, svc, repo := setupAuthTest(t)
	token := registerTestUser(t, svc)

	// account deleted after the token was issued
	for id := range repo.users {
		delete(repo.users, id)
	}

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
}
