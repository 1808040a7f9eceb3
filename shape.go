package svgforge

import "github.com/svgforge/svgforge/pkg/svg"

// Style carries the presentation attributes shared by the shape
// operations. Empty strings and nil numbers mean "use the per-shape
// default"; pointers keep an explicit zero distinguishable from unset.
type Style struct {
	Fill        string   `json:"fill,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
}

func floatOr(p *float64, def float64) float64 {
	if p != nil {
		return *p
	}
	return def
}

func stringOr(s, def string) string {
	if s != "" {
		return s
	}
	return def
}

// apply sets the style attributes on a shape node using the given
// defaults, after range-checking opacity.
func (st Style) apply(el *svg.Element, defFill, defStroke string) error {
	opacity := floatOr(st.Opacity, 1)
	if opacity < 0 || opacity > 1 {
		return validationf("opacity must be in [0,1], got %v", opacity)
	}
	el.Set("fill", stringOr(st.Fill, defFill)).
		Set("stroke", stringOr(st.Stroke, defStroke)).
		SetFloat("stroke-width", floatOr(st.StrokeWidth, 1)).
		SetFloat("opacity", opacity)
	return nil
}

// CircleParams are the inputs for AddCircle.
type CircleParams struct {
	DocID   string  `json:"doc_id"`
	GroupID string  `json:"group_id,omitempty"`
	CX      float64 `json:"cx"`
	CY      float64 `json:"cy"`
	R       float64 `json:"r"`
	Style
}

// AddCircle appends a circle to the document root or to the target group.
func (s *Session) AddCircle(p CircleParams) error {
	if p.R <= 0 {
		return validationf("r must be positive, got %v", p.R)
	}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Circle(p.CX, p.CY, p.R)
		return el, p.Style.apply(el, "black", "none")
	})
}

// RectParams are the inputs for AddRect. RX and RY are optional corner
// radii, emitted only when non-zero.
type RectParams struct {
	DocID   string  `json:"doc_id"`
	GroupID string  `json:"group_id,omitempty"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	RX      float64 `json:"rx,omitempty"`
	RY      float64 `json:"ry,omitempty"`
	Style
}

// AddRect appends a rectangle to the document root or to the target group.
func (s *Session) AddRect(p RectParams) error {
	if p.Width <= 0 || p.Height <= 0 {
		return validationf("width and height must be positive, got %v x %v", p.Width, p.Height)
	}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Rect(p.X, p.Y, p.Width, p.Height)
		if p.RX != 0 {
			el.SetFloat("rx", p.RX)
		}
		if p.RY != 0 {
			el.SetFloat("ry", p.RY)
		}
		return el, p.Style.apply(el, "black", "none")
	})
}

// LineParams are the inputs for AddLine.
type LineParams struct {
	DocID       string   `json:"doc_id"`
	GroupID     string   `json:"group_id,omitempty"`
	X1          float64  `json:"x1"`
	Y1          float64  `json:"y1"`
	X2          float64  `json:"x2"`
	Y2          float64  `json:"y2"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	Opacity     *float64 `json:"opacity,omitempty"`
}

// AddLine appends a line segment to the document root or to the target group.
func (s *Session) AddLine(p LineParams) error {
	st := Style{Stroke: p.Stroke, StrokeWidth: p.StrokeWidth, Opacity: p.Opacity}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Line(p.X1, p.Y1, p.X2, p.Y2)
		return el, st.apply(el, "none", "black")
	})
}

// EllipseParams are the inputs for AddEllipse.
type EllipseParams struct {
	DocID   string  `json:"doc_id"`
	GroupID string  `json:"group_id,omitempty"`
	CX      float64 `json:"cx"`
	CY      float64 `json:"cy"`
	RX      float64 `json:"rx"`
	RY      float64 `json:"ry"`
	Style
}

// AddEllipse appends an ellipse to the document root or to the target group.
func (s *Session) AddEllipse(p EllipseParams) error {
	if p.RX <= 0 || p.RY <= 0 {
		return validationf("rx and ry must be positive, got %v x %v", p.RX, p.RY)
	}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Ellipse(p.CX, p.CY, p.RX, p.RY)
		return el, p.Style.apply(el, "black", "none")
	})
}

// TextParams are the inputs for AddText. FontSize is a size token and is
// validated like any other size string.
type TextParams struct {
	DocID      string   `json:"doc_id"`
	GroupID    string   `json:"group_id,omitempty"`
	Text       string   `json:"text"`
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	FontSize   string   `json:"font_size,omitempty"`
	FontFamily string   `json:"font_family,omitempty"`
	Fill       string   `json:"fill,omitempty"`
	TextAnchor string   `json:"text_anchor,omitempty"`
	Opacity    *float64 `json:"opacity,omitempty"`
}

// AddText appends a text element to the document root or to the target group.
func (s *Session) AddText(p TextParams) error {
	if p.Text == "" {
		return validationf("text must not be empty")
	}
	fontSize, err := parsePositiveLength("font_size", stringOr(p.FontSize, "16px"))
	if err != nil {
		return err
	}
	opacity := floatOr(p.Opacity, 1)
	if opacity < 0 || opacity > 1 {
		return validationf("opacity must be in [0,1], got %v", opacity)
	}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Text(p.Text, p.X, p.Y).
			Set("font-size", fontSize.String()).
			Set("font-family", stringOr(p.FontFamily, "sans-serif")).
			Set("fill", stringOr(p.Fill, "black")).
			Set("text-anchor", stringOr(p.TextAnchor, "start")).
			SetFloat("opacity", opacity)
		return el, nil
	})
}

// PolygonParams are the inputs for AddPolygon. Points are [x, y] pairs.
type PolygonParams struct {
	DocID   string       `json:"doc_id"`
	GroupID string       `json:"group_id,omitempty"`
	Points  [][2]float64 `json:"points"`
	Style
}

// AddPolygon appends a closed polygon to the document root or to the
// target group.
func (s *Session) AddPolygon(p PolygonParams) error {
	if len(p.Points) < 3 {
		return validationf("polygon needs at least 3 points, got %d", len(p.Points))
	}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Polygon(p.Points)
		return el, p.Style.apply(el, "black", "none")
	})
}

// PathParams are the inputs for AddPath. D is raw SVG path data.
type PathParams struct {
	DocID   string `json:"doc_id"`
	GroupID string `json:"group_id,omitempty"`
	D       string `json:"d"`
	Style
}

// AddPath appends a path to the document root or to the target group.
func (s *Session) AddPath(p PathParams) error {
	if p.D == "" {
		return validationf("path data must not be empty")
	}
	return s.addShape(p.DocID, p.GroupID, func() (*svg.Element, error) {
		el := svg.Path(p.D)
		return el, p.Style.apply(el, "none", "black")
	})
}

// addShape is the one contract every shape operation follows: resolve
// the document and optional group, build the node, append it. The build
// step runs before the append so a validation failure inside it leaves
// the tree untouched.
func (s *Session) addShape(docID, groupID string, build func() (*svg.Element, error)) error {
	_, tgt, err := s.resolveTarget(docID, groupID)
	if err != nil {
		return err
	}
	el, err := build()
	if err != nil {
		return err
	}
	tgt.Append(el)
	return nil
}
