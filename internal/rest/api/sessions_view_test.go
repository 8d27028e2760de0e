package api_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/sergeii/enigma/internal/testutils"
	"github.com/sergeii/enigma/internal/testutils/factories/sessionfactory"
)

func TestAPI_ViewSession_OK(t *testing.T) {
	ts, deps, cancel := testutils.PrepareTestServerWithDeps(t)
	defer cancel()

	s := sessionfactory.Create(
		ctxBg, deps.Sessions,
		sessionfactory.WithName("Évening traffic"),
		sessionfactory.WithPositions(3, 2, 1),
	)

	var obj sessionSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodGet, "/api/sessions/"+s.ID.String(), nil,
		testutils.MustBindJSON(&obj),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, s.ID.String(), obj.ID)
	assert.Equal(t, "Évening traffic", obj.Name)
	assert.Equal(t, "evening-traffic", obj.NameSlug)
	assert.Equal(t, "I.I.I/03.02.01/qqq/A/......", obj.Key)
	assert.Equal(t, 3, obj.Settings.Rotors[0].Position)
}

func TestAPI_ViewSession_NotFound(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_ViewSession_InvalidID(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	for _, path := range []string{
		"/api/sessions/foo",
		"/api/sessions/123",
		"/api/sessions/4a1bd3c1-7e36-4c36-b6c5",
	} {
		t.Run(path, func(t *testing.T) {
			var obj errorSchema
			resp := testutils.DoTestRequest(ts, http.MethodGet, path, nil, testutils.MustBindJSON(&obj))
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, "Invalid session id", obj.Error)
		})
	}
}

func TestAPI_ListSessions_OK(t *testing.T) {
	ts, deps, cancel := testutils.PrepareTestServerWithDeps(t)
	defer cancel()

	now := time.Now()
	oldest := sessionfactory.Create(ctxBg, deps.Sessions, sessionfactory.WithTime(now.Add(-time.Hour)))
	newest := sessionfactory.Create(ctxBg, deps.Sessions, sessionfactory.WithTime(now))
	middle := sessionfactory.Create(ctxBg, deps.Sessions, sessionfactory.WithTime(now.Add(-time.Minute)))

	tests := []struct {
		query string
		want  []uuid.UUID
	}{
		{"", []uuid.UUID{newest.ID, middle.ID, oldest.ID}},
		{"?limit=0", []uuid.UUID{newest.ID, middle.ID, oldest.ID}},
		{"?limit=2", []uuid.UUID{newest.ID, middle.ID}},
		{"?limit=10", []uuid.UUID{newest.ID, middle.ID, oldest.ID}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var items []sessionSchema
			resp := testutils.DoTestRequest(
				ts, http.MethodGet, "/api/sessions"+tt.query, nil,
				testutils.MustBindJSON(&items),
			)
			require.Equal(t, http.StatusOK, resp.StatusCode)
			got := make([]uuid.UUID, 0, len(items))
			for _, item := range items {
				got = append(got, uuid.MustParse(item.ID))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAPI_ListSessions_Empty(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "[]", resp.Body)
}

func TestAPI_ListSessions_InvalidLimit(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	for _, limit := range []string{"-1", "1001", "foo"} {
		t.Run(limit, func(t *testing.T) {
			resp := testutils.DoTestRequest(ts, http.MethodGet, fmt.Sprintf("/api/sessions?limit=%s", limit), nil)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestAPI_ExportSession_OK(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, `{"name":"day 17","settings":`+dayKeyJSON+`}`)

	resp := testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions/"+created.ID+"/keysheet", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/yaml; charset=utf-8", resp.Header.Get("Content-Type"))

	var sheet struct {
		Name   string `yaml:"name"`
		Rotors []struct {
			Model    string `yaml:"model"`
			Position int    `yaml:"position"`
			Turnover string `yaml:"turnover"`
		} `yaml:"rotors"`
		Reflector string            `yaml:"reflector"`
		Plugs     map[string]string `yaml:"plugs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(resp.Body), &sheet))
	assert.Equal(t, "day 17", sheet.Name)
	require.Len(t, sheet.Rotors, 3)
	assert.Equal(t, "III", sheet.Rotors[0].Model)
	assert.Equal(t, 5, sheet.Rotors[0].Position)
	assert.Equal(t, "e", sheet.Rotors[0].Turnover)
	assert.Equal(t, "B", sheet.Reflector)
	assert.Len(t, sheet.Plugs, 6)
	assert.Equal(t, "z", sheet.Plugs["RedB"])

	// the exported sheet is good for import
	var imported sessionSchema
	resp = testutils.DoTestRequest(
		ts, http.MethodPost, "/api/sessions/import", newBody(resp.Body),
		testutils.MustBindJSON(&imported),
	)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEqual(t, created.ID, imported.ID)
	assert.Equal(t, created.Key, imported.Key)
}

func TestAPI_ExportSession_NotFound(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions/"+uuid.NewString()+"/keysheet", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_Status_OK(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	var obj map[string]string
	resp := testutils.DoTestRequest(ts, http.MethodGet, "/status", nil, testutils.MustBindJSON(&obj))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, obj, "BuildVersion")
	assert.Contains(t, obj, "BuildCommit")
	assert.Contains(t, obj, "BuildTime")
}
