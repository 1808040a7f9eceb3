package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgforge "github.com/svgforge/svgforge"
	"github.com/svgforge/svgforge/pkg/rpc"
	"github.com/svgforge/svgforge/server"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := server.New(svgforge.New(), zerolog.Nop())
	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)
	return ts
}

// response mirrors rpc.Response with the result left raw for inspection.
type response struct {
	ID     json.RawMessage `json:"id"`
	Error  *rpc.Error      `json:"error"`
	Result map[string]any  `json:"result"`
}

func postRPC(t *testing.T, ts *httptest.Server, frame string) response {
	t.Helper()
	resp, err := http.Post(ts.URL+"/rpc", "application/json", bytes.NewBufferString(frame))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestWebSocketRoundTrip(t *testing.T) {
	ts := newTestServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/rpc"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	call := func(frame string) response {
		t.Helper()
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(frame)))
		var out response
		require.NoError(t, conn.ReadJSON(&out))
		return out
	}

	created := call(`{"id":1,"method":"create_document","params":{"doc_id":"d1","width":"100px","height":"100px"}}`)
	require.Nil(t, created.Error)
	assert.Equal(t, json.RawMessage(`1`), created.ID)
	assert.Equal(t, "ok", created.Result["status"])
	assert.Equal(t, "d1", created.Result["doc_id"])

	added := call(`{"id":2,"method":"add_rect","params":{"doc_id":"d1","width":50,"height":50,"fill":"red"}}`)
	require.Nil(t, added.Error)
	assert.Equal(t, "ok", added.Result["status"])

	markup := call(`{"id":"req-3","method":"get_svg_string","params":{"doc_id":"d1"}}`)
	require.Nil(t, markup.Error)
	assert.Equal(t, json.RawMessage(`"req-3"`), markup.ID)
	svg, _ := markup.Result["svg"].(string)
	assert.Contains(t, svg, `<rect`)
	assert.Contains(t, svg, `fill="red"`)
}

func TestHTTPPost(t *testing.T) {
	ts := newTestServer(t)

	out := postRPC(t, ts, `{"id":1,"method":"create_document","params":{"doc_id":"d1"}}`)
	require.Nil(t, out.Error)
	assert.Equal(t, "ok", out.Result["status"])
	assert.Equal(t, "800px", out.Result["width"])
	assert.Equal(t, "600px", out.Result["height"])

	out = postRPC(t, ts, `{"id":2,"method":"list_documents"}`)
	require.Nil(t, out.Error)
	docs, ok := out.Result["documents"].([]any)
	require.True(t, ok)
	assert.Len(t, docs, 1)
}

func TestOperationFailureIsAnEnvelope(t *testing.T) {
	ts := newTestServer(t)

	// Unknown document: an error envelope in the result, not an RPC error.
	out := postRPC(t, ts, `{"id":1,"method":"get_svg_string","params":{"doc_id":"missing"}}`)
	require.Nil(t, out.Error)
	assert.Equal(t, "error", out.Result["status"])
	msg, _ := out.Result["message"].(string)
	assert.Contains(t, msg, `"missing"`)
	assert.Contains(t, msg, "not found")

	// Malformed params decode the same way.
	out = postRPC(t, ts, `{"id":2,"method":"add_circle","params":{"r":"big"}}`)
	require.Nil(t, out.Error)
	assert.Equal(t, "error", out.Result["status"])
}

func TestRPCLevelErrors(t *testing.T) {
	ts := newTestServer(t)

	t.Run("unknown method", func(t *testing.T) {
		out := postRPC(t, ts, `{"id":1,"method":"destroy_everything"}`)
		require.NotNil(t, out.Error)
		assert.Equal(t, rpc.CodeMethodNotFound, out.Error.Code)
	})

	t.Run("no method", func(t *testing.T) {
		out := postRPC(t, ts, `{"id":1,"params":{}}`)
		require.NotNil(t, out.Error)
		assert.Equal(t, rpc.CodeInvalidRequest, out.Error.Code)
	})

	t.Run("parse error", func(t *testing.T) {
		out := postRPC(t, ts, `{"id":1,`)
		require.NotNil(t, out.Error)
		assert.Equal(t, rpc.CodeParseError, out.Error.Code)
	})
}

func TestTransportsShareTheSession(t *testing.T) {
	ts := newTestServer(t)

	out := postRPC(t, ts, `{"id":1,"method":"create_document","params":{"doc_id":"shared"}}`)
	require.Nil(t, out.Error)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/rpc"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage,
		[]byte(`{"id":2,"method":"get_svg_string","params":{"doc_id":"shared"}}`)))
	var wsOut response
	require.NoError(t, conn.ReadJSON(&wsOut))
	require.Nil(t, wsOut.Error)
	assert.Equal(t, "ok", wsOut.Result["status"])
}

func TestHealthz(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
