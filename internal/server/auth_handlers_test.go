package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRegistration() map[string]any {
	return map[string]any{
		"username":        "newresident",
		"password":        "password123",
		"fullName":        "New Resident",
		"email":           "new@example.com",
		"phoneNumber":     "555-0101",
		"apartmentNumber": "A-101",
	}
}

func TestRegister_EstablishesSession(t *testing.T) {
	_, app := newMemoryTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register", validRegistration()))
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	cookie := sessionCookieFromResponse(resp)
	require.NotNil(t, cookie, "registration must set the session cookie")
	assert.True(t, cookie.HttpOnly)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "newresident", body["username"])
	assert.Equal(t, "New Resident", body["fullName"])
	assert.NotContains(t, body, "password")
	assert.NotContains(t, body, "phoneNumber")

	// The new session is immediately usable
	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/me", nil, cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var me map[string]any
	decodeBody(t, resp, &me)
	assert.Equal(t, "newresident", me["username"])
}

func TestRegister_DuplicateUsername(t *testing.T) {
	s, app := newMemoryTestServer(t)
	createTestUser(t, s, "taken")

	reg := validRegistration()
	reg["username"] = "taken"
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register", reg))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Username already taken", body["error"])
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s, app := newMemoryTestServer(t)
	createTestUser(t, s, "existing")

	reg := validRegistration()
	reg["email"] = "existing@example.com"
	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register", reg))
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "Email already in use", body["error"])
}

func TestRegister_Validation(t *testing.T) {
	_, app := newMemoryTestServer(t)

	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"MissingUsername", func(m map[string]any) { m["username"] = "" }},
		{"ShortPassword", func(m map[string]any) { m["password"] = "short" }},
		{"BadEmail", func(m map[string]any) { m["email"] = "not-an-email" }},
		{"BadUsername", func(m map[string]any) { m["username"] = "no spaces" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := validRegistration()
			tt.mutate(reg)
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/register", reg))
			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestLogin(t *testing.T) {
	s, app := newMemoryTestServer(t)
	createTestUser(t, s, "alice")

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/login", map[string]string{
		"username": "alice",
		"password": "password123",
	}))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotNil(t, sessionCookieFromResponse(resp))

	var body map[string]any
	decodeBody(t, resp, &body)
	assert.Equal(t, "alice", body["username"])
}

func TestLogin_BadCredentials(t *testing.T) {
	s, app := newMemoryTestServer(t)
	createTestUser(t, s, "alice")

	tests := []struct {
		name string
		body map[string]string
	}{
		{"WrongPassword", map[string]string{"username": "alice", "password": "wrong-pass"}},
		{"UnknownUser", map[string]string{"username": "nobody", "password": "password123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(jsonRequest(http.MethodPost, "/api/login", tt.body))
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Nil(t, sessionCookieFromResponse(resp))
		})
	}
}

func TestLogout_DestroysSession(t *testing.T) {
	s, app := newMemoryTestServer(t)
	user := createTestUser(t, s, "alice")
	cookie := loginAs(t, s, user.ID)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/logout", nil, cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(jsonRequest(http.MethodGet, "/api/me", nil, cookie))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestLogout_WithoutSession(t *testing.T) {
	_, app := newMemoryTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodPost, "/api/logout", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestCurrentUser_RequiresSession(t *testing.T) {
	_, app := newMemoryTestServer(t)

	resp, err := app.Test(jsonRequest(http.MethodGet, "/api/me", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
