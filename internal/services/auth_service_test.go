package services

import (
	"context"
	"testing"
	"time"

	"carhub/config"
	"carhub/internal/domain/user"
	carhub_errors "carhub/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	byEmail map[string]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return carhub_errors.ErrAlreadyExists
	}
	r.byEmail[u.Email] = *u
	return nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return user.User{}, carhub_errors.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, carhub_errors.ErrNotFound
}

func newTestAuthService(repo *fakeUserRepo) *AuthService {
	return NewAuthService(repo, &config.Config{JWTSecret: "test-secret"})
}

func TestRegister_TokenEmbedsAccountID(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	token, err := svc.Register(context.Background(), RegisterInput{
		Name: "Alice", Email: "alice@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)

	stored := repo.byEmail["alice@example.com"]
	assert.Equal(t, stored.ID.String(), claims.UserID)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	cases := []RegisterInput{
		{Email: "a@b.c", Password: "pw"},
		{Name: "A", Password: "pw"},
		{Name: "A", Email: "a@b.c"},
		{Name: "  ", Email: "a@b.c", Password: "pw"},
	}
	for _, in := range cases {
		_, err := svc.Register(context.Background(), in)
		assert.ErrorIs(t, err, carhub_errors.ErrInvalidInput)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	in := RegisterInput{Name: "Alice", Email: "alice@example.com", Password: "pw"}
	_, err := svc.Register(context.Background(), in)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), in)
	assert.ErrorIs(t, err, carhub_errors.ErrAlreadyExists)
}

func TestLogin_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.byEmail["bob@example.com"] = user.User{
		ID: uuid.New(), Name: "Bob", Email: "bob@example.com", PasswordHash: string(hash),
	}

	res, err := svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "Bob", res.User.Name)
	assert.Equal(t, "bob@example.com", res.User.Email)

	claims, err := svc.ParseAccessToken(res.Token)
	require.NoError(t, err)
	assert.Equal(t, repo.byEmail["bob@example.com"].ID.String(), claims.UserID)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestAuthService(repo)

	hash, err := bcrypt.GenerateFromPassword([]byte("right"), bcrypt.DefaultCost)
	require.NoError(t, err)
	repo.byEmail["bob@example.com"] = user.User{ID: uuid.New(), Email: "bob@example.com", PasswordHash: string(hash)}

	_, err = svc.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "right"})
	wrongEmail := err

	_, err = svc.Login(context.Background(), LoginInput{Email: "bob@example.com", Password: "wrong"})
	wrongPassword := err

	assert.ErrorIs(t, wrongEmail, carhub_errors.ErrInvalidCredentials)
	assert.ErrorIs(t, wrongPassword, carhub_errors.ErrInvalidCredentials)
}

func TestParseAccessToken_Expired(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, AccessClaims{
		UserID: uuid.NewString(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})
	tokenString, err := expired.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(tokenString)
	assert.ErrorIs(t, err, carhub_errors.ErrUnauthorized)
}

func TestParseAccessToken_WrongSecretAndGarbage(t *testing.T) {
	svc := newTestAuthService(newFakeUserRepo())

	other := NewAuthService(newFakeUserRepo(), &config.Config{JWTSecret: "other-secret"})
	token, err := other.newAccessToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ParseAccessToken(token)
	assert.ErrorIs(t, err, carhub_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken("not.a.jwt")
	assert.ErrorIs(t, err, carhub_errors.ErrUnauthorized)

	_, err = svc.ParseAccessToken("")
	assert.ErrorIs(t, err, carhub_errors.ErrUnauthorized)
}
