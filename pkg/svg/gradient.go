package svg

// GradientStop is a single color stop on a gradient ramp.
type GradientStop struct {
	Offset  float64
	Color   string
	Opacity float64
}

// LinearGradient builds a <linearGradient> element for the defs section.
// Geometry values are raw tokens ("0%", "100%", "0.5") passed through to
// the markup unmodified.
func LinearGradient(id, x1, y1, x2, y2 string, stops []GradientStop) *Element {
	grad := NewElement("linearGradient").
		Set("id", id).
		Set("x1", x1).
		Set("y1", y1).
		Set("x2", x2).
		Set("y2", y2)
	appendStops(grad, stops)
	return grad
}

// RadialGradient builds a <radialGradient> element for the defs section.
func RadialGradient(id, cx, cy, r, fx, fy string, stops []GradientStop) *Element {
	grad := NewElement("radialGradient").
		Set("id", id).
		Set("cx", cx).
		Set("cy", cy).
		Set("r", r).
		Set("fx", fx).
		Set("fy", fy)
	appendStops(grad, stops)
	return grad
}

func appendStops(grad *Element, stops []GradientStop) {
	for _, s := range stops {
		stop := NewElement("stop").
			SetFloat("offset", s.Offset).
			Set("stop-color", s.Color)
		if s.Opacity != 1 {
			stop.SetFloat("stop-opacity", s.Opacity)
		}
		grad.Append(stop)
	}
}
