package http_test

import (
	"bytes"
	"encoding/json"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	scoreboardhttp "github.com/programme-lv/scoreboard/http"
	"github.com/programme-lv/scoreboard/scoreboard"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testAdminPassword = "admin-pass"

func setupServer(t *testing.T) *scoreboardhttp.HttpServer {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testAdminPassword), bcrypt.MinCost)
	require.NoError(t, err)
	return scoreboardhttp.NewHttpServer(
		scoreboard.NewScoreboard(), nil,
		[]byte("test-jwt-key"), "admin", hash)
}

func doRequest(t *testing.T, server *scoreboardhttp.HttpServer, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	server.Router().ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) (status string, data json.RawMessage, errCode string) {
	t.Helper()
	var wrapper struct {
		Status string          `json:"status"`
		Data   json.RawMessage `json:"data"`
		Code   string          `json:"code"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &wrapper),
		"response body: %s", w.Body.String())
	return wrapper.Status, wrapper.Data, wrapper.Code
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, wantCode string) {
	t.Helper()
	status, _, code := decodeResponse(t, w)
	require.Equal(t, "error", status, "response body: %s", w.Body.String())
	require.Equal(t, wantCode, code)
}

// adminToken logs in as the test admin and returns a bearer token.
func adminToken(t *testing.T, server *scoreboardhttp.HttpServer) string {
	t.Helper()
	w := doRequest(t, server, nethttp.MethodPost, "/auth/login", "",
		map[string]string{"username": "admin", "password": testAdminPassword})
	require.Equal(t, nethttp.StatusOK, w.Code, "response body: %s", w.Body.String())

	_, data, _ := decodeResponse(t, w)
	var payload struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(data, &payload))
	require.NotEmpty(t, payload.Token)
	return payload.Token
}
