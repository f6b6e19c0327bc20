package commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemalens/explorer"
	"github.com/erraggy/schemalens/store"
)

const serveTestDoc = `{
  "info": {"version": "2.0.0"},
  "components": {
    "schemas": {
      "User": {
        "type": "object",
        "description": "An account holder.",
        "x-since-version": "1.2",
        "properties": {
          "name": {"type": "string"},
          "address": {"$ref": "#/components/schemas/Address"}
        }
      },
      "Address": {
        "type": "object",
        "description": "A postal address.",
        "properties": {
          "city": {"type": "string"}
        }
      }
    }
  }
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	st, err := store.Load(store.WithBytes([]byte(serveTestDoc)))
	require.NoError(t, err)
	srv := httptest.NewServer(NewExplorerHandler(explorer.New(st), ""))
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestServeHealth(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]string
	resp := getJSON(t, srv.URL+"/health", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestServeTree(t *testing.T) {
	srv := newTestServer(t)

	var nodes []map[string]any
	resp := getJSON(t, srv.URL+"/tree", &nodes)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, nodes, 2)
	assert.Equal(t, "Address", nodes[0]["id"])
	assert.Equal(t, "User", nodes[1]["id"])
}

func TestServeSchema(t *testing.T) {
	srv := newTestServer(t)

	t.Run("found", func(t *testing.T) {
		var body map[string]any
		resp := getJSON(t, srv.URL+"/schema/User", &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "User", body["title"])
		summary, ok := body["relationshipSummary"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, float64(1), summary["referencesCount"])
	})

	t.Run("not found", func(t *testing.T) {
		var body map[string]string
		resp := getJSON(t, srv.URL+"/schema/Ghost", &body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body["error"], "Ghost")
	})
}

func TestServeSearch(t *testing.T) {
	srv := newTestServer(t)

	var results []map[string]any
	resp := getJSON(t, srv.URL+"/search?q=postal", &results)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, results, 1)
	assert.Equal(t, "Address", results[0]["id"])
}

func TestServeVersions(t *testing.T) {
	srv := newTestServer(t)

	var versions []string
	resp := getJSON(t, srv.URL+"/versions", &versions)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"1.2", "2.0.0"}, versions)
}

func TestServeRootIndex(t *testing.T) {
	srv := newTestServer(t)

	var body map[string]any
	resp := getJSON(t, srv.URL+"/", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "schemalens", body["service"])
}

func TestServePreflight(t *testing.T) {
	srv := newTestServer(t)

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/tree", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "GET, OPTIONS", resp.Header.Get("Access-Control-Allow-Methods"))
}
