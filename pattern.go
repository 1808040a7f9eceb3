package svgforge

import "github.com/svgforge/svgforge/pkg/svg"

// Pattern generators are pure compositions over the shape contract: they
// resolve a target the same way shapes do, then synthesize a
// deterministic sequence of primitives. The sequence is staged in a
// slice and appended only after the whole generation succeeds, so a
// failed pattern operation never leaves partial primitives behind.

// GridPatternParams are the inputs for AddGridPattern. Width and height
// default to the document's declared viewport size.
type GridPatternParams struct {
	DocID       string   `json:"doc_id"`
	GroupID     string   `json:"group_id,omitempty"`
	CellSize    *float64 `json:"cell_size,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
}

// GridPatternResult reports what a grid generation appended.
type GridPatternResult struct {
	CellSize float64 `json:"cell_size"`
	Lines    int     `json:"lines"`
}

// AddGridPattern appends horizontal and vertical lines covering the
// target area at cell_size intervals.
func (s *Session) AddGridPattern(p GridPatternParams) (*GridPatternResult, error) {
	doc, tgt, err := s.resolveTarget(p.DocID, p.GroupID)
	if err != nil {
		return nil, err
	}
	cell := floatOr(p.CellSize, 20)
	if cell <= 0 {
		return nil, validationf("cell_size must be positive, got %v", cell)
	}
	w, h, err := patternArea(doc, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	stroke := stringOr(p.Stroke, "#cccccc")
	strokeWidth := floatOr(p.StrokeWidth, 1)

	var staged []*svg.Element
	for x := 0.0; x <= w; x += cell {
		staged = append(staged, svg.Line(x, 0, x, h).
			Set("stroke", stroke).SetFloat("stroke-width", strokeWidth))
	}
	for y := 0.0; y <= h; y += cell {
		staged = append(staged, svg.Line(0, y, w, y).
			Set("stroke", stroke).SetFloat("stroke-width", strokeWidth))
	}
	appendAll(tgt, staged)

	return &GridPatternResult{CellSize: cell, Lines: len(staged)}, nil
}

// CheckerboardParams are the inputs for AddCheckerboardPattern.
type CheckerboardParams struct {
	DocID    string   `json:"doc_id"`
	GroupID  string   `json:"group_id,omitempty"`
	CellSize *float64 `json:"cell_size,omitempty"`
	Color1   string   `json:"color1,omitempty"`
	Color2   string   `json:"color2,omitempty"`
	Width    *float64 `json:"width,omitempty"`
	Height   *float64 `json:"height,omitempty"`
}

// CheckerboardResult reports the generated board dimensions.
type CheckerboardResult struct {
	CellSize float64 `json:"cell_size"`
	Cols     int     `json:"cols"`
	Rows     int     `json:"rows"`
}

// AddCheckerboardPattern appends alternating colored squares covering
// the target area.
func (s *Session) AddCheckerboardPattern(p CheckerboardParams) (*CheckerboardResult, error) {
	doc, tgt, err := s.resolveTarget(p.DocID, p.GroupID)
	if err != nil {
		return nil, err
	}
	cell := floatOr(p.CellSize, 20)
	if cell <= 0 {
		return nil, validationf("cell_size must be positive, got %v", cell)
	}
	w, h, err := patternArea(doc, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	color1 := stringOr(p.Color1, "white")
	color2 := stringOr(p.Color2, "black")

	cols := int(w/cell) + 1
	rows := int(h/cell) + 1
	staged := make([]*svg.Element, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			color := color1
			if (row+col)%2 != 0 {
				color = color2
			}
			staged = append(staged, svg.Rect(float64(col)*cell, float64(row)*cell, cell, cell).
				Set("fill", color))
		}
	}
	appendAll(tgt, staged)

	return &CheckerboardResult{CellSize: cell, Cols: cols, Rows: rows}, nil
}

// DotGridParams are the inputs for AddDotGridPattern.
type DotGridParams struct {
	DocID     string   `json:"doc_id"`
	GroupID   string   `json:"group_id,omitempty"`
	Spacing   *float64 `json:"spacing,omitempty"`
	DotRadius *float64 `json:"dot_radius,omitempty"`
	Fill      string   `json:"fill,omitempty"`
	Width     *float64 `json:"width,omitempty"`
	Height    *float64 `json:"height,omitempty"`
}

// DotGridResult reports how many dots were appended.
type DotGridResult struct {
	Spacing   float64 `json:"spacing"`
	DotRadius float64 `json:"dot_radius"`
	Dots      int     `json:"dots"`
}

// AddDotGridPattern appends small circles at regular intervals across
// the target area.
func (s *Session) AddDotGridPattern(p DotGridParams) (*DotGridResult, error) {
	doc, tgt, err := s.resolveTarget(p.DocID, p.GroupID)
	if err != nil {
		return nil, err
	}
	spacing := floatOr(p.Spacing, 20)
	if spacing <= 0 {
		return nil, validationf("spacing must be positive, got %v", spacing)
	}
	radius := floatOr(p.DotRadius, 2)
	if radius <= 0 {
		return nil, validationf("dot_radius must be positive, got %v", radius)
	}
	w, h, err := patternArea(doc, p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	fill := stringOr(p.Fill, "#cccccc")

	var staged []*svg.Element
	for y := spacing; y <= h; y += spacing {
		for x := spacing; x <= w; x += spacing {
			staged = append(staged, svg.Circle(x, y, radius).Set("fill", fill))
		}
	}
	appendAll(tgt, staged)

	return &DotGridResult{Spacing: spacing, DotRadius: radius, Dots: len(staged)}, nil
}

// ConcentricCirclesParams are the inputs for AddConcentricCirclesPattern.
type ConcentricCirclesParams struct {
	DocID       string   `json:"doc_id"`
	GroupID     string   `json:"group_id,omitempty"`
	CX          float64  `json:"cx"`
	CY          float64  `json:"cy"`
	MinRadius   *float64 `json:"min_radius,omitempty"`
	MaxRadius   *float64 `json:"max_radius,omitempty"`
	Step        *float64 `json:"step,omitempty"`
	Stroke      string   `json:"stroke,omitempty"`
	StrokeWidth *float64 `json:"stroke_width,omitempty"`
	Fill        string   `json:"fill,omitempty"`
}

// ConcentricCirclesResult reports how many circles were appended.
type ConcentricCirclesResult struct {
	Circles int `json:"circles"`
}

// AddConcentricCirclesPattern appends circles radiating out from a
// center point, from min_radius to max_radius in step increments.
func (s *Session) AddConcentricCirclesPattern(p ConcentricCirclesParams) (*ConcentricCirclesResult, error) {
	_, tgt, err := s.resolveTarget(p.DocID, p.GroupID)
	if err != nil {
		return nil, err
	}
	minR := floatOr(p.MinRadius, 10)
	maxR := floatOr(p.MaxRadius, 100)
	step := floatOr(p.Step, 10)
	if minR <= 0 {
		return nil, validationf("min_radius must be positive, got %v", minR)
	}
	if maxR < minR {
		return nil, validationf("max_radius %v must not be below min_radius %v", maxR, minR)
	}
	if step <= 0 {
		return nil, validationf("step must be positive, got %v", step)
	}
	stroke := stringOr(p.Stroke, "black")
	strokeWidth := floatOr(p.StrokeWidth, 1)
	fill := stringOr(p.Fill, "none")

	var staged []*svg.Element
	// The epsilon keeps the outermost circle when accumulated float
	// error lands the radius just above max_radius.
	for r := minR; r <= maxR+1e-9; r += step {
		staged = append(staged, svg.Circle(p.CX, p.CY, r).
			Set("stroke", stroke).SetFloat("stroke-width", strokeWidth).Set("fill", fill))
	}
	appendAll(tgt, staged)

	return &ConcentricCirclesResult{Circles: len(staged)}, nil
}

// patternArea resolves the area a pattern covers: explicit values when
// given, the document's declared viewport otherwise.
func patternArea(doc *document, width, height *float64) (w, h float64, err error) {
	w = floatOr(width, doc.width.Value)
	h = floatOr(height, doc.height.Value)
	if w <= 0 || h <= 0 {
		return 0, 0, validationf("pattern area must be positive, got %v x %v", w, h)
	}
	return w, h, nil
}

func appendAll(tgt target, staged []*svg.Element) {
	for _, el := range staged {
		tgt.Append(el)
	}
}
