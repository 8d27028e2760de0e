package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sergeii/enigma/internal/testutils"
)

func TestAPI_UpdateSession_Rename(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, `{"name":"day 17","settings":`+dayKeyJSON+`}`)

	var obj sessionSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodPatch, "/api/sessions/"+created.ID, strings.NewReader(`{"name":"  Day 18 "}`),
		testutils.WithJSONContentType(),
		testutils.MustBindJSON(&obj),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, created.ID, obj.ID)
	assert.Equal(t, "Day 18", obj.Name)
	assert.Equal(t, "day-18", obj.NameSlug)
	// the machine is left as it was
	assert.Equal(t, created.Key, obj.Key)
}

func TestAPI_UpdateSession_Settings(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, `{"name":"day 17","settings":`+dayKeyJSON+`}`)

	var obj sessionSchema
	resp := testutils.DoTestRequest(
		ts, http.MethodPatch, "/api/sessions/"+created.ID,
		strings.NewReader(`{"settings":{"rotors":[{"model":"V","position":26},{"model":"IV"},{"model":"iii"}],"reflector":"C"}}`),
		testutils.WithJSONContentType(),
		testutils.MustBindJSON(&obj),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "day 17", obj.Name)
	// omitted parts are reset, the plugs are pulled out
	assert.Equal(t, "V.IV.III/26.01.01/qqq/C/......", obj.Key)
	assert.Empty(t, obj.Settings.Plugs)

	resp = testutils.DoTestRequest(
		ts, http.MethodGet, "/api/sessions/"+created.ID, nil,
		testutils.MustBindJSON(&obj),
	)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "V.IV.III/26.01.01/qqq/C/......", obj.Key)
}

func TestAPI_UpdateSession_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"nothing to configure", `{}`},
		{"blank name", `{"name":""}`},
		{"whitespace name", `{"name":"   "}`},
		{"unknown reflector", `{"settings":{"reflector":"X"}}`},
		{"too many rotors", `{"settings":{"rotors":[{"model":"I"},{"model":"I"},{"model":"I"},{"model":"I"}]}}`},
		{"malformed", `[]`},
	}
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	created := createSession(t, ts, `{"name":"day 17"}`)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := testutils.DoTestRequest(
				ts, http.MethodPatch, "/api/sessions/"+created.ID, strings.NewReader(tt.body),
				testutils.WithJSONContentType(),
			)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}

	var obj sessionSchema
	testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions/"+created.ID, nil, testutils.MustBindJSON(&obj))
	assert.Equal(t, "day 17", obj.Name)
	assert.Equal(t, created.Key, obj.Key)
}

func TestAPI_UpdateSession_NotFound(t *testing.T) {
	ts, cancel := testutils.PrepareTestServer(t)
	defer cancel()

	resp := testutils.DoTestRequest(
		ts, http.MethodPatch, "/api/sessions/"+uuid.NewString(), strings.NewReader(`{"name":"foo"}`),
		testutils.WithJSONContentType(),
	)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAPI_DeleteSession_OK(t *testing.T) {
	ts, deps, cancel := testutils.PrepareTestServerWithDeps(t)
	defer cancel()

	created := createSession(t, ts, `{"name":"day 17"}`)
	other := createSession(t, ts, `{"name":"day 18"}`)

	resp := testutils.DoTestRequest(
		ts, http.MethodDelete, "/api/sessions/"+created.ID, nil,
		testutils.MustHaveNoBody(),
	)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = testutils.DoTestRequest(ts, http.MethodGet, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = testutils.DoTestRequest(ts, http.MethodDelete, "/api/sessions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	count, err := deps.Sessions.Count(ctxBg)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	_, err = deps.Sessions.Get(ctxBg, uuid.MustParse(other.ID))
	assert.NoError(t, err)
}
