package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/mycelia/internal/model"
)

func newEntriesServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("unauthorized"))
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	err := Execute(context.Background(), args, &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

func TestFetch_TextNewestFirst(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `[{"id":"1","text":"first"},{"id":"2","text":"# second"}]`)

	out, _, err := run(t, "fetch", "--endpoint", server.URL, "--api-key", "key")
	require.NoError(t, err)

	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.NotContains(t, out, "# second")
	assert.Less(t, bytes.Index([]byte(out), []byte("second")), bytes.Index([]byte(out), []byte("first")))
}

func TestFetch_JSONKeepsServerOrder(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `[{"id":"1","text":"first"},{"id":"2","text":"second"}]`)

	out, _, err := run(t, "fetch", "--endpoint", server.URL, "--api-key", "key", "--format", "json")
	require.NoError(t, err)

	var entries []model.Entry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	assert.Equal(t, []model.Entry{{ID: "1", Text: "first"}, {ID: "2", Text: "second"}}, entries)
}

func TestFetch_EmptyListAsJSON(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `[]`)

	out, _, err := run(t, "fetch", "--endpoint", server.URL, "--api-key", "key", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)
}

func TestFetch_ServerErrorExitsWithTaggedMessage(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `[]`)

	out, errOut, err := run(t, "fetch", "--endpoint", server.URL, "--api-key", "wrong")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitLoadFailed, exitErr.Code)

	var loadErr *model.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, loadErr.IsServer())
	assert.Equal(t, "unauthorized", loadErr.Message)

	assert.Empty(t, out)
	assert.Contains(t, errOut, "server_error")
	assert.Contains(t, errOut, "unauthorized")
}

func TestFetch_DecodeError(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `{"not":"a list"}`)

	_, errOut, err := run(t, "fetch", "--endpoint", server.URL, "--api-key", "key")
	require.Error(t, err)

	var loadErr *model.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, loadErr.IsDecode())
	assert.Contains(t, errOut, "Failed to parse JSON")
}

func TestFetch_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, _, err := run(t, "fetch", "--endpoint", url, "--api-key", "key", "--timeout", "2s")
	require.Error(t, err)

	var loadErr *model.LoadError
	require.True(t, errors.As(err, &loadErr))
	assert.True(t, loadErr.IsTransport())
	assert.NotEmpty(t, loadErr.Message)
}

func TestFetch_UnknownFormat(t *testing.T) {
	_, _, err := run(t, "fetch", "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestShow(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `[{"id":"1","text":"hello"},{"id":"2","text":"world"}]`)

	out, _, err := run(t, "show", "2", "--endpoint", server.URL, "--api-key", "key")
	require.NoError(t, err)
	assert.Contains(t, out, "#2")
	assert.Contains(t, out, "world")
	assert.NotContains(t, out, "hello")
}

func TestShow_NotFound(t *testing.T) {
	server := newEntriesServer(t, http.StatusOK, `[{"id":"1","text":"hello"}]`)

	_, errOut, err := run(t, "show", "9", "--endpoint", server.URL, "--api-key", "key")
	require.Error(t, err)

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, ExitNotFound, exitErr.Code)
	assert.Contains(t, errOut, "entry not found: 9")
}

func TestShow_RequiresID(t *testing.T) {
	_, _, err := run(t, "show")
	require.Error(t, err)
}

func TestFetch_LogsOnlyWithDebug(t *testing.T) {
	t.Setenv("MYCELIA_DEBUG", "")
	server := newEntriesServer(t, http.StatusOK, `[{"id":"1","text":"hello"}]`)

	_, errOut, err := run(t, "fetch", "--endpoint", server.URL, "--api-key", "key")
	require.NoError(t, err)
	assert.Empty(t, errOut)

	_, errOut, err = run(t, "fetch", "--endpoint", server.URL, "--api-key", "key", "--debug")
	require.NoError(t, err)
	assert.Contains(t, errOut, "reload dispatched")
}
