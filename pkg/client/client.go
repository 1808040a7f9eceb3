// Package client is a Go client for the svgforge JSON-RPC service. It
// speaks the WebSocket transport, which keeps one connection open for a
// whole composition session.
package client

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gorilla/websocket"

	svgforge "github.com/svgforge/svgforge"
	"github.com/svgforge/svgforge/pkg/rpc"
)

// Client holds a WebSocket connection to a running service. Calls are
// serialized; the service answers frames in order on one connection.
type Client struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	nextID int64
}

// Connect dials the service's /rpc endpoint. The url uses the ws scheme,
// e.g. "ws://127.0.0.1:8044/rpc".
func Connect(url string) (*Client, error) {
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %q: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// response keeps the result raw so Call can decode it twice: once for
// the envelope status, once into the caller's payload.
type response struct {
	ID     json.RawMessage `json:"id"`
	Error  *rpc.Error      `json:"error"`
	Result json.RawMessage `json:"result"`
}

// envelope is the status portion of every result.
type envelope struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Call invokes a method and decodes the ok-envelope payload into out,
// which may be nil when the caller only cares about success. An error
// envelope comes back as an error carrying the service's message.
func (c *Client) Call(method rpc.Method, params, out any) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.nextID++
	id, _ := json.Marshal(c.nextID)
	req := rpc.Request{ID: id, Method: string(method)}
	if params != nil {
		raw, err := json.Marshal(params)
		if err != nil {
			return fmt.Errorf("marshal params: %w", err)
		}
		req.Params = raw
	}

	if err := c.conn.WriteJSON(req); err != nil {
		return fmt.Errorf("write %s: %w", method, err)
	}
	var resp response
	if err := c.conn.ReadJSON(&resp); err != nil {
		return fmt.Errorf("read %s: %w", method, err)
	}
	if resp.Error != nil {
		return fmt.Errorf("%s: rpc error %d: %s", method, resp.Error.Code, resp.Error.Message)
	}

	var env envelope
	if err := json.Unmarshal(resp.Result, &env); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}
	if env.Status != rpc.StatusOK {
		return fmt.Errorf("%s: %s", method, env.Message)
	}
	if out != nil {
		if err := json.Unmarshal(resp.Result, out); err != nil {
			return fmt.Errorf("decode %s payload: %w", method, err)
		}
	}
	return nil
}

// CreateDocument creates a document and returns its registration info.
func (c *Client) CreateDocument(params svgforge.CreateDocumentParams) (*svgforge.DocumentInfo, error) {
	var out svgforge.DocumentInfo
	if err := c.Call(rpc.CreateDocument, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListDocuments returns every open document in creation order.
func (c *Client) ListDocuments() ([]svgforge.DocumentInfo, error) {
	var out struct {
		Documents []svgforge.DocumentInfo `json:"documents"`
	}
	if err := c.Call(rpc.ListDocuments, nil, &out); err != nil {
		return nil, err
	}
	return out.Documents, nil
}

// DeleteDocument removes a document and everything scoped to it.
func (c *Client) DeleteDocument(docID string) error {
	return c.Call(rpc.DeleteDocument, docParams{DocID: docID}, nil)
}

// SVGString returns a document's serialized markup.
func (c *Client) SVGString(docID string) (string, error) {
	var out struct {
		SVG string `json:"svg"`
	}
	if err := c.Call(rpc.GetSVGString, docParams{DocID: docID}, &out); err != nil {
		return "", err
	}
	return out.SVG, nil
}

// SaveFile writes a document's markup to a file on the service host.
func (c *Client) SaveFile(params svgforge.SaveFileParams) error {
	return c.Call(rpc.SaveFile, params, nil)
}

func (c *Client) AddCircle(params svgforge.CircleParams) error {
	return c.Call(rpc.AddCircle, params, nil)
}

func (c *Client) AddRect(params svgforge.RectParams) error {
	return c.Call(rpc.AddRect, params, nil)
}

func (c *Client) AddLine(params svgforge.LineParams) error {
	return c.Call(rpc.AddLine, params, nil)
}

func (c *Client) AddEllipse(params svgforge.EllipseParams) error {
	return c.Call(rpc.AddEllipse, params, nil)
}

func (c *Client) AddText(params svgforge.TextParams) error {
	return c.Call(rpc.AddText, params, nil)
}

func (c *Client) AddPolygon(params svgforge.PolygonParams) error {
	return c.Call(rpc.AddPolygon, params, nil)
}

func (c *Client) AddPath(params svgforge.PathParams) error {
	return c.Call(rpc.AddPath, params, nil)
}

// CreateGroup creates a group and returns its id.
func (c *Client) CreateGroup(params svgforge.CreateGroupParams) (string, error) {
	var out struct {
		GroupID string `json:"group_id"`
	}
	if err := c.Call(rpc.CreateGroup, params, &out); err != nil {
		return "", err
	}
	return out.GroupID, nil
}

// ListGroups returns a document's group ids in creation order.
func (c *Client) ListGroups(docID string) ([]string, error) {
	var out struct {
		Groups []string `json:"groups"`
	}
	if err := c.Call(rpc.ListGroups, docParams{DocID: docID}, &out); err != nil {
		return nil, err
	}
	return out.Groups, nil
}

// AddLinearGradient registers a linear gradient and returns its paint
// reference.
func (c *Client) AddLinearGradient(params svgforge.LinearGradientParams) (*svgforge.GradientRef, error) {
	var out svgforge.GradientRef
	if err := c.Call(rpc.AddLinearGradient, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddRadialGradient registers a radial gradient and returns its paint
// reference.
func (c *Client) AddRadialGradient(params svgforge.RadialGradientParams) (*svgforge.GradientRef, error) {
	var out svgforge.GradientRef
	if err := c.Call(rpc.AddRadialGradient, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListGradients returns a document's gradient registrations in creation
// order.
func (c *Client) ListGradients(docID string) ([]svgforge.GradientInfo, error) {
	var out struct {
		Gradients []svgforge.GradientInfo `json:"gradients"`
	}
	if err := c.Call(rpc.ListGradients, docParams{DocID: docID}, &out); err != nil {
		return nil, err
	}
	return out.Gradients, nil
}

func (c *Client) AddGridPattern(params svgforge.GridPatternParams) (*svgforge.GridPatternResult, error) {
	var out svgforge.GridPatternResult
	if err := c.Call(rpc.AddGridPattern, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddCheckerboardPattern(params svgforge.CheckerboardParams) (*svgforge.CheckerboardResult, error) {
	var out svgforge.CheckerboardResult
	if err := c.Call(rpc.AddCheckerboardPattern, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddDotGridPattern(params svgforge.DotGridParams) (*svgforge.DotGridResult, error) {
	var out svgforge.DotGridResult
	if err := c.Call(rpc.AddDotGridPattern, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AddConcentricCirclesPattern(params svgforge.ConcentricCirclesParams) (*svgforge.ConcentricCirclesResult, error) {
	var out svgforge.ConcentricCirclesResult
	if err := c.Call(rpc.AddConcentricCirclesPattern, params, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Preview returns a base64 PNG preview of a document.
func (c *Client) Preview(docID string) (*svgforge.PreviewResult, error) {
	var out svgforge.PreviewResult
	if err := c.Call(rpc.GetSVGPreview, docParams{DocID: docID}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type docParams struct {
	DocID string `json:"doc_id"`
}
