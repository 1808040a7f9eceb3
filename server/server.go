// Package server exposes a session over JSON-RPC: a WebSocket endpoint
// for conversational use and an HTTP endpoint for one-shot calls. It is
// the outermost boundary: typed operation errors are converted to error
// envelopes here and nowhere else.
package server

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	svgforge "github.com/svgforge/svgforge"
	"github.com/svgforge/svgforge/pkg/rpc"
)

// Server dispatches JSON-RPC requests into a session. The session's
// execution model is single-threaded; the server provides that guarantee
// by serializing every operation through one mutex, whichever transport
// it arrived on.
type Server struct {
	log      zerolog.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	session  *svgforge.Session
	handlers map[rpc.Method]handlerFunc
}

type handlerFunc func(params json.RawMessage) rpc.Envelope

// New creates a server around the given session.
func New(session *svgforge.Session, log zerolog.Logger) *Server {
	s := &Server{
		log:     log,
		session: session,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
		},
	}
	s.handlers = s.methodTable()
	return s
}

// Router builds the HTTP routes: WebSocket upgrade and one-shot POST on
// /rpc, plus a health probe.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/rpc", s.handleRPC).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

// handleRPC serves both transports on one path: upgrade requests get the
// WebSocket loop, plain POSTs get a single dispatch.
func (s *Server) handleRPC(w http.ResponseWriter, r *http.Request) {
	if websocket.IsWebSocketUpgrade(r) {
		s.serveWS(w, r)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "use POST or a WebSocket upgrade", http.StatusMethodNotAllowed)
		return
	}

	var body json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		s.writeJSON(w, rpc.Response{Error: &rpc.Error{Code: rpc.CodeParseError, Message: "parse error"}})
		return
	}
	s.writeJSON(w, s.dispatch(body))
}

func (s *Server) writeJSON(w http.ResponseWriter, resp rpc.Response) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		s.log.Error().Err(err).Msg("write response")
	}
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error().Err(err).Msg("websocket upgrade")
		return
	}
	defer conn.Close()

	s.log.Debug().Str("remote", conn.RemoteAddr().String()).Msg("websocket connected")
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.log.Warn().Err(err).Msg("websocket closed unexpectedly")
			}
			return
		}
		if err := conn.WriteJSON(s.dispatch(data)); err != nil {
			s.log.Error().Err(err).Msg("websocket write")
			return
		}
	}
}

// dispatch routes one raw request frame to its handler and wraps the
// outcome. Frames without a resolvable method and unknown methods are
// RPC-level errors; everything an operation reports comes back as a
// status envelope in the result.
func (s *Server) dispatch(data []byte) rpc.Response {
	started := time.Now()

	raw := rpc.RawRequest{Data: data}
	method, err := raw.ResolveMethod()
	if err != nil {
		return rpc.Response{ID: raw.ID(), Error: &rpc.Error{Code: rpc.CodeInvalidRequest, Message: err.Error()}}
	}

	handler, ok := s.handlers[rpc.Method(method)]
	if !ok {
		s.log.Warn().Str("method", method).Msg("unknown method")
		return rpc.Response{ID: raw.ID(), Error: &rpc.Error{Code: rpc.CodeMethodNotFound, Message: "unknown method " + method}}
	}

	s.mu.Lock()
	env := handler(raw.Params())
	s.mu.Unlock()

	s.log.Info().
		Str("method", method).
		Str("status", env.Status).
		Dur("elapsed", time.Since(started)).
		Msg("dispatched")

	return rpc.Response{ID: raw.ID(), Result: env}
}
