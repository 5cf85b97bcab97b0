package rest_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pppp606/kamon/internal/adapters/rest"
	"github.com/pppp606/kamon/internal/logging"
	"github.com/pppp606/kamon/pkg/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	handler := rest.NewHandler(session.NewManager())
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })

	var decoded map[string]any
	if resp.Header.Get("Content-Type") == "application/json" {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	}
	return resp, decoded
}

func createSession(t *testing.T, srv *httptest.Server) string {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions", nil)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	require.NotEmpty(t, id)
	return id
}

func linePayload(x1, y1, x2, y2 float64) map[string]any {
	return map[string]any{
		"type":   "line",
		"first":  map[string]any{"x": x1, "y": y1},
		"second": map[string]any{"x": x2, "y": y2},
	}
}

func TestServer_Health(t *testing.T) {
	srv := newServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestServer_CommitAndFetch(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/elements", linePayload(0, 0, 9, 0))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, float64(0), body["history_index"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/sessions/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	lines, _ := body["lines"].([]any)
	assert.Len(t, lines, 1)
}

func TestServer_UnknownElementType(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/elements",
		map[string]any{"type": "bezier"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "unsupported element kind")
}

func TestServer_IncompleteElement(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/elements",
		map[string]any{"type": "line", "first": map[string]any{"x": 0, "y": 0}})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
}

func TestServer_UndoRedoBoundaries(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	// Boundary undo is 200 with applied=false, never an HTTP error.
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/undo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["applied"])

	doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/elements", linePayload(0, 0, 1, 1))

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/undo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["applied"])
	assert.Equal(t, float64(-1), body["history_index"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/redo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["applied"])

	resp, body = doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/redo", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["applied"])
}

func TestServer_DivisionFlow(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/sessions/"+id+"/division", map[string]any{
		"element":   linePayload(0, 0, 9, 0),
		"divisions": 3,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/sessions/"+id+"/division", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["active"])
	points, _ := body["points"].([]any)
	assert.Len(t, points, 2)

	// Pointer near the first division point snaps to it.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/division/pointer",
		map[string]any{"x": 2.8, "y": 0.1})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["hit"])
	point, _ := body["point"].(map[string]any)
	assert.Equal(t, float64(3), point["x"])

	// Cycle advances the preset ring.
	resp, body = doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/division/cycle", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(4), body["divisions"])

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/sessions/"+id+"/division", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body = doJSON(t, http.MethodGet, srv.URL+"/sessions/"+id+"/division", nil)
	assert.Equal(t, false, body["active"])
}

func TestServer_DivisionSoftFail(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	resp, body := doJSON(t, http.MethodPut, srv.URL+"/sessions/"+id+"/division",
		map[string]any{"divisions": 3})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "no element selected", body["error"])
}

func TestServer_DivisionInvalidCount(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)

	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/sessions/"+id+"/division", map[string]any{
		"element":   linePayload(0, 0, 9, 0),
		"divisions": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestServer_UnknownSession(t *testing.T) {
	srv := newServer(t)

	resp, _ := doJSON(t, http.MethodGet, srv.URL+"/sessions/nope", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestServer_ExportSVG(t *testing.T) {
	srv := newServer(t)
	id := createSession(t, srv)
	doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/elements", linePayload(0, 0, 10, 10))

	resp, err := http.Get(srv.URL + "/sessions/" + id + "/export.svg")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestServer_SSEDeliversCommitEvents(t *testing.T) {
	handler := rest.NewHandler(session.NewManager(), rest.WithLogger(logging.NewNop()))
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	id := createSession(t, srv)

	resp, err := http.Get(srv.URL + "/events?session_id=" + id)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	events := make(chan string, 4)
	go func() {
		buf := make([]byte, 4096)
		for {
			n, err := resp.Body.Read(buf)
			if n > 0 {
				events <- string(buf[:n])
			}
			if err != nil {
				close(events)
				return
			}
		}
	}()

	// Connection ping arrives first.
	waitForChunk(t, events, "connected")

	doJSON(t, http.MethodPost, srv.URL+"/sessions/"+id+"/elements", linePayload(0, 0, 5, 5))
	waitForChunk(t, events, `"commit"`)
}

func waitForChunk(t *testing.T, events <-chan string, want string) {
	t.Helper()
	deadline := time.After(2 * time.Second)
	var seen string
	for {
		select {
		case chunk, ok := <-events:
			if !ok {
				t.Fatalf("stream closed before %q arrived; saw: %s", want, seen)
			}
			seen += chunk
			if bytes.Contains([]byte(seen), []byte(want)) {
				return
			}
		case <-deadline:
			t.Fatalf("timed out waiting for %q; saw: %s", want, seen)
		}
	}
}

func TestServer_Info(t *testing.T) {
	srv := newServer(t)
	createSession(t, srv)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/info", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "kamon-server", body["app"])
	assert.Equal(t, float64(1), body["sessions"])
}

func TestStreamManager(t *testing.T) {
	sm := rest.NewStreamManager(logging.NewNop())

	ch, cancel := sm.Subscribe("s1")
	sm.Broadcast("s1", "hello")
	sm.Broadcast("other", "ignored")

	select {
	case msg := <-ch:
		assert.Equal(t, "hello", msg)
	case <-time.After(time.Second):
		t.Fatal("no broadcast received")
	}

	cancel()
	_, open := <-ch
	assert.False(t, open, "cancel must close the channel")

	// Broadcasting after cancel must not panic.
	sm.Broadcast("s1", "late")
}

func TestServer_EventsRequireSessionID(t *testing.T) {
	srv := newServer(t)
	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
