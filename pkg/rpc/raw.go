package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/buger/jsonparser"
)

// RawRequest wraps an undecoded request frame and resolves its fields
// lazily, so the dispatch loop can route and log a request without
// committing to a full decode.
type RawRequest struct {
	Data []byte

	method         string
	resolvedMethod bool
	id             json.RawMessage
	resolvedID     bool
}

// ResolveMethod extracts the method name from the frame.
func (r *RawRequest) ResolveMethod() (string, error) {
	if r.resolvedMethod {
		return r.method, nil
	}
	method, err := jsonparser.GetString(r.Data, "method")
	if err != nil {
		return "", fmt.Errorf("request has no method: %w", err)
	}
	r.method = method
	r.resolvedMethod = true
	return method, nil
}

// ID returns the raw id value of the frame, or nil when absent. The raw
// bytes are echoed back in the response so the caller's id type is
// preserved.
func (r *RawRequest) ID() json.RawMessage {
	if r.resolvedID {
		return r.id
	}
	r.resolvedID = true
	value, dataType, _, err := jsonparser.Get(r.Data, "id")
	if err != nil || dataType == jsonparser.NotExist {
		return nil
	}
	if dataType == jsonparser.String {
		quoted, _ := json.Marshal(string(value))
		r.id = quoted
	} else {
		r.id = json.RawMessage(value)
	}
	return r.id
}

// Params returns the raw params object of the frame, or nil when absent.
func (r *RawRequest) Params() json.RawMessage {
	value, dataType, _, err := jsonparser.Get(r.Data, "params")
	if err != nil || dataType == jsonparser.NotExist {
		return nil
	}
	return json.RawMessage(value)
}
