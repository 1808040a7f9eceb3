package rpc

import (
	"encoding/json"
	"fmt"
)

// Envelope statuses.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope is the uniform result shape of every operation: either
// {"status":"ok", ...payload fields} or {"status":"error","message":…}.
// The payload's fields are merged into the top level of the object.
type Envelope struct {
	Status  string
	Message string
	Payload any
}

// OK wraps a success payload. A nil payload yields a bare
// {"status":"ok"}.
func OK(payload any) Envelope {
	return Envelope{Status: StatusOK, Payload: payload}
}

// Err wraps an operation failure into an error envelope.
func Err(err error) Envelope {
	return Envelope{Status: StatusError, Message: err.Error()}
}

// MarshalJSON flattens the payload fields next to the status field.
func (e Envelope) MarshalJSON() ([]byte, error) {
	out := map[string]any{"status": e.Status}
	if e.Message != "" {
		out["message"] = e.Message
	}
	if e.Payload != nil {
		raw, err := json.Marshal(e.Payload)
		if err != nil {
			return nil, fmt.Errorf("marshal envelope payload: %w", err)
		}
		fields := map[string]any{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("envelope payload must be an object: %w", err)
		}
		for k, v := range fields {
			if k == "status" || k == "message" {
				continue
			}
			out[k] = v
		}
	}
	return json.Marshal(out)
}
