package services

import (
	"testing"

	"gamestore_backend/internal/auth"
	"gamestore_backend/internal/models"
	"gamestore_backend/internal/services/dto"
	"gamestore_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *fakeAdminRepo, *recordingEmailProvider) {
	t.Helper()
	auth.Configure("test-secret", 60)

	users := newFakeUserRepo()
	admins := newFakeAdminRepo()
	geo := newFakeGeoRepo()
	mail := &recordingEmailProvider{}

	country := &models.Country{Code: "KZ", Name: "Kazakhstan", RegionID: "region-1", Currency: "KZT"}
	country.ID = "country-kz"
	require.NoError(t, geo.CreateCountry(nil, country))

	return NewAuthService(users, admins, geo, mail), users, admins, mail
}

func TestSignup_CreatesUserAndSendsWelcome(t *testing.T) {
	svc, _, _, mail := newAuthFixture(t)

	user, err := svc.Signup(nil, &dto.SignupRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		Age:       21,
		CountryID: "country-kz",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "secret123", user.PasswordHash)
	assert.Equal(t, []string{"alice@example.com"}, mail.welcomes)
}

func TestSignup_WeakPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(nil, &dto.SignupRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "short",
		Age:       21,
		CountryID: "country-kz",
	})
	assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	req := &dto.SignupRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		Age:       21,
		CountryID: "country-kz",
	}
	_, err := svc.Signup(nil, req)
	require.NoError(t, err)

	_, err = svc.Signup(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignup_UnknownCountry(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(nil, &dto.SignupRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		Age:       21,
		CountryID: "country-missing",
	})
	assert.Error(t, err)
}

func TestLogin_Roundtrip(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(nil, &dto.SignupRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		Age:       21,
		CountryID: "country-kz",
	})
	require.NoError(t, err)

	resp, err := svc.Login(nil, &dto.LoginRequest{Email: "alice@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, string(models.RoleUser), claims.Role)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _, _, _ := newAuthFixture(t)

	_, err := svc.Signup(nil, &dto.SignupRequest{
		Name:      "Alice",
		Email:     "alice@example.com",
		Password:  "secret123",
		Age:       21,
		CountryID: "country-kz",
	})
	require.NoError(t, err)

	_, err = svc.Login(nil, &dto.LoginRequest{Email: "alice@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestAdminLogin(t *testing.T) {
	svc, _, admins, _ := newAuthFixture(t)

	hash, err := auth.HashPassword("admin-pass")
	require.NoError(t, err)
	require.NoError(t, admins.Create(nil, &models.Admin{Email: "admin@example.com", PasswordHash: hash}))

	resp, err := svc.AdminLogin(nil, &dto.LoginRequest{Email: "admin@example.com", Password: "admin-pass"})
	require.NoError(t, err)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)

	_, err = svc.AdminLogin(nil, &dto.LoginRequest{Email: "admin@example.com", Password: "nope"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
