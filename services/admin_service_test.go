package services_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonReq(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func sessionCookie(t *testing.T, resp *http.Response) *http.Cookie {
	t.Helper()
	for _, c := range resp.Cookies() {
		if c.Name == "admin_token" {
			return c
		}
	}
	return nil
}

func TestLoginWrongPassword(t *testing.T) {
	e := newDiskEnv(t)

	resp, err := e.app.Test(jsonReq(t, http.MethodPost, "/admin/login", map[string]string{
		"user": testAdminUser,
		"pass": "wrong",
	}), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "invalid_credentials", body["error"])
	assert.Nil(t, sessionCookie(t, resp), "no cookie may be set on a failed login")

	// still not logged in
	status, body := doJSON(t, e.app, httptest.NewRequest(http.MethodGet, "/admin/status", nil))
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["loggedIn"])
}

func TestLoginMissingCredentials(t *testing.T) {
	e := newDiskEnv(t)

	status, body := doJSON(t, e.app, jsonReq(t, http.MethodPost, "/admin/login", map[string]string{
		"user": testAdminUser,
	}))
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "missing_credentials", body["error"])
}

func TestLoginLogoutFlow(t *testing.T) {
	e := newDiskEnv(t)

	resp, err := e.app.Test(jsonReq(t, http.MethodPost, "/admin/login", map[string]string{
		"user": testAdminUser,
		"pass": testAdminPass,
	}), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.NotZero(t, body["expires"])

	cookie := sessionCookie(t, resp)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)

	// the cookie opens the gated surface
	req := httptest.NewRequest(http.MethodGet, "/registrations", nil)
	req.AddCookie(cookie)
	listResp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	listResp.Body.Close()
	assert.Equal(t, http.StatusOK, listResp.StatusCode)

	req = httptest.NewRequest(http.MethodGet, "/admin/status", nil)
	req.AddCookie(cookie)
	status, body := doJSON(t, e.app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["loggedIn"])

	// logout revokes the session
	req = httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(cookie)
	status, body = doJSON(t, e.app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])

	req = httptest.NewRequest(http.MethodGet, "/admin/status", nil)
	req.AddCookie(cookie)
	status, body = doJSON(t, e.app, req)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["loggedIn"])

	req = httptest.NewRequest(http.MethodGet, "/registrations", nil)
	req.AddCookie(cookie)
	listResp, err = e.app.Test(req, -1)
	require.NoError(t, err)
	listResp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, listResp.StatusCode)
}

func TestPublicFrontendBypassesAdminGate(t *testing.T) {
	e := newDiskEnv(t)

	// mirror main.go wiring: routes are registered first, the static
	// frontend afterwards
	pub := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(pub, "index.html"), []byte("<html>signup form</html>"), 0o644))
	e.app.Static("/", pub)

	resp, err := e.app.Test(httptest.NewRequest(http.MethodGet, "/index.html", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "public form frontend must be reachable without admin auth")
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "signup form")

	// unknown paths fall through to 404, not 401
	resp, err = e.app.Test(httptest.NewRequest(http.MethodGet, "/no-such-page", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLogoutRequiresAuth(t *testing.T) {
	e := newDiskEnv(t)

	resp, err := e.app.Test(httptest.NewRequest(http.MethodPost, "/admin/logout", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
