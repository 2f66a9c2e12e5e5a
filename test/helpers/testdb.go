package helpers

import (
	"net/http"
	"testing"

	"gamestore_backend/internal/auth"
	"gamestore_backend/internal/models"
)

// SeedAdmin inserts an admin account directly and logs it in through
// the API, returning the access token.
func SeedAdmin(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	hash, err := auth.HashPassword(password)
	if err != nil {
		t.Fatalf("failed to hash admin password: %v", err)
	}
	admin := &models.Admin{Email: email, PasswordHash: hash}
	if err := ts.DB.Create(admin).Error; err != nil {
		t.Fatalf("failed to create admin: %v", err)
	}

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	r := ts.DoJSON(t, http.MethodPost, "/api/v1/auth/admin/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if r.StatusCode != http.StatusOK {
		t.Fatalf("admin login failed with status %d", r.StatusCode)
	}
	return resp.AccessToken
}

// SeedGeo creates a region and a country through the admin API and
// returns their ids.
func SeedGeo(t *testing.T, ts *TestServer, adminToken string) (regionID, countryID string) {
	t.Helper()

	var region models.Region
	r := ts.DoJSON(t, http.MethodPost, "/api/v1/geo/regions", adminToken, map[string]interface{}{
		"code":     "EU",
		"name":     "Europe",
		"currency": "EUR",
	}, &region)
	if r.StatusCode != http.StatusCreated {
		t.Fatalf("region creation failed with status %d", r.StatusCode)
	}

	var country models.Country
	r = ts.DoJSON(t, http.MethodPost, "/api/v1/geo/countries", adminToken, map[string]interface{}{
		"code":      "DE",
		"name":      "Germany",
		"region_id": region.ID,
		"currency":  "EUR",
	}, &country)
	if r.StatusCode != http.StatusCreated {
		t.Fatalf("country creation failed with status %d", r.StatusCode)
	}

	return region.ID, country.ID
}

// SignupAndLogin registers a user through the API and returns the
// access token plus the created user.
func SignupAndLogin(t *testing.T, ts *TestServer, name, email, password, countryID string) (string, *models.User) {
	t.Helper()

	r := ts.DoJSON(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"name":       name,
		"email":      email,
		"password":   password,
		"age":        25,
		"country_id": countryID,
	}, nil)
	if r.StatusCode != http.StatusCreated {
		t.Fatalf("signup failed with status %d", r.StatusCode)
	}

	var resp struct {
		AccessToken string       `json:"access_token"`
		User        *models.User `json:"user"`
	}
	r = ts.DoJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	}, &resp)
	if r.StatusCode != http.StatusOK {
		t.Fatalf("login failed with status %d", r.StatusCode)
	}

	return resp.AccessToken, resp.User
}
