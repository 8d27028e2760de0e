package api_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/testutils"
)

type rotorSchema struct {
	Model    string `json:"model"`
	Position int    `json:"position"`
	Turnover string `json:"turnover"`
}

type settingsSchema struct {
	Rotors    []rotorSchema     `json:"rotors"`
	Reflector string            `json:"reflector"`
	Plugs     map[string]string `json:"plugs"`
}

type sessionSchema struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	NameSlug  string         `json:"name_slug"`
	Key       string         `json:"key"`
	Settings  settingsSchema `json:"settings"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

type errorSchema struct {
	Error string `json:"error"`
}

const dayKeyJSON = `{
	"rotors": [
		{"model": "III", "position": 5, "turnover": "e"},
		{"model": "II", "position": 10, "turnover": "v"},
		{"model": "I", "position": 20, "turnover": "q"}
	],
	"reflector": "B",
	"plugs": {"RedA": "a", "RedB": "z", "BlueA": "b", "BlueB": "y", "YellowA": "c", "YellowB": "x"}
}`

func createSession(t *testing.T, ts *httptest.Server, body string) sessionSchema {
	t.Helper()
	var obj sessionSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions", strings.NewReader(body),
		testutils.WithJSONContentType(),
		testutils.MustBindJSON(&obj),
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return obj
}

func newBody(s string) io.Reader {
	return strings.NewReader(s)
}

var ctxBg = context.Background() // nolint: gochecknoglobals
