// Package rpc defines the wire contract of the service: the JSON-RPC
// request/response framing used by the transports, and the uniform
// status envelope every operation result is wrapped in.
package rpc

import "encoding/json"

// Error is a JSON-RPC level error: parse failures and unknown methods.
// Operation failures never surface here; they travel inside the result
// envelope.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

// JSON-RPC error codes used by the server.
const (
	CodeParseError     = -32700
	CodeInvalidRequest = -32600
	CodeMethodNotFound = -32601
	CodeInvalidParams  = -32602
)

// Request is an incoming JSON-RPC request. Params stay raw until the
// dispatched handler decodes them into its typed parameter struct.
type Request struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Method string          `json:"method,omitempty"`
	Params json.RawMessage `json:"params,omitempty"`
}

// Response is an outgoing JSON-RPC response. The ID echoes the request
// id verbatim, whatever JSON type the caller used.
type Response struct {
	ID     json.RawMessage `json:"id,omitempty"`
	Error  *Error          `json:"error,omitempty"`
	Result any             `json:"result,omitempty"`
}

// Method names the operations a caller can invoke.
type Method string

const (
	CreateDocument Method = "create_document"
	ListDocuments  Method = "list_documents"
	DeleteDocument Method = "delete_document"
	GetSVGString   Method = "get_svg_string"
	SaveFile       Method = "save_file"

	AddCircle  Method = "add_circle"
	AddRect    Method = "add_rect"
	AddLine    Method = "add_line"
	AddEllipse Method = "add_ellipse"
	AddText    Method = "add_text"
	AddPolygon Method = "add_polygon"
	AddPath    Method = "add_path"

	CreateGroup Method = "create_group"
	ListGroups  Method = "list_groups"

	AddLinearGradient Method = "add_linear_gradient"
	AddRadialGradient Method = "add_radial_gradient"
	ListGradients     Method = "list_gradients"

	AddGridPattern              Method = "add_grid_pattern"
	AddCheckerboardPattern      Method = "add_checkerboard_pattern"
	AddDotGridPattern           Method = "add_dot_grid_pattern"
	AddConcentricCirclesPattern Method = "add_concentric_circles_pattern"

	GetSVGPreview Method = "get_svg_preview"
)
