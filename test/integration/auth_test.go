package integration

import (
	"net/http"
	"testing"

	"gamestore_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignupAndLoginFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	adminToken := helpers.SeedAdmin(t, ts, "admin@gamestore.io", "admin-secret-1")
	_, countryID := helpers.SeedGeo(t, ts, adminToken)

	token, user := helpers.SignupAndLogin(t, ts, "Alice", "alice@example.com", "sup3rSecret", countryID)
	require.NotEmpty(t, token)
	require.NotNil(t, user)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Empty(t, user.PasswordHash)

	// Second signup with the same email must be rejected.
	r := ts.DoJSON(t, http.MethodPost, "/api/v1/auth/signup", "", map[string]interface{}{
		"name":       "Alice Again",
		"email":      "alice@example.com",
		"password":   "sup3rSecret",
		"age":        30,
		"country_id": countryID,
	}, nil)
	assert.Equal(t, http.StatusConflict, r.StatusCode)

	r = ts.DoJSON(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, r.StatusCode)

	// The profile endpoint requires the bearer token.
	r = ts.DoJSON(t, http.MethodGet, "/api/v1/users/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, r.StatusCode)

	var me map[string]interface{}
	r = ts.DoJSON(t, http.MethodGet, "/api/v1/users/me", token, nil, &me)
	assert.Equal(t, http.StatusOK, r.StatusCode)
	assert.Equal(t, "alice@example.com", me["email"])
}

func TestAdminOnlyRoutesRejectUsers(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.ClearTables(t)

	adminToken := helpers.SeedAdmin(t, ts, "admin@gamestore.io", "admin-secret-1")
	_, countryID := helpers.SeedGeo(t, ts, adminToken)
	userToken, _ := helpers.SignupAndLogin(t, ts, "Bob", "bob@example.com", "sup3rSecret", countryID)

	r := ts.DoJSON(t, http.MethodPost, "/api/v1/geo/regions", userToken, map[string]interface{}{
		"code": "NA", "name": "North America", "currency": "USD",
	}, nil)
	assert.Equal(t, http.StatusForbidden, r.StatusCode)

	r = ts.DoJSON(t, http.MethodGet, "/api/v1/users", userToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, r.StatusCode)
}
