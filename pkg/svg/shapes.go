package svg

import "strings"

// Circle builds a <circle> element.
func Circle(cx, cy, r float64) *Element {
	return NewElement("circle").
		SetFloat("cx", cx).
		SetFloat("cy", cy).
		SetFloat("r", r)
}

// Rect builds a <rect> element.
func Rect(x, y, width, height float64) *Element {
	return NewElement("rect").
		SetFloat("x", x).
		SetFloat("y", y).
		SetFloat("width", width).
		SetFloat("height", height)
}

// Line builds a <line> element.
func Line(x1, y1, x2, y2 float64) *Element {
	return NewElement("line").
		SetFloat("x1", x1).
		SetFloat("y1", y1).
		SetFloat("x2", x2).
		SetFloat("y2", y2)
}

// Ellipse builds an <ellipse> element.
func Ellipse(cx, cy, rx, ry float64) *Element {
	return NewElement("ellipse").
		SetFloat("cx", cx).
		SetFloat("cy", cy).
		SetFloat("rx", rx).
		SetFloat("ry", ry)
}

// Text builds a <text> element with the given content and insertion point.
func Text(content string, x, y float64) *Element {
	return NewElement("text").
		SetFloat("x", x).
		SetFloat("y", y).
		SetText(content)
}

// Polygon builds a <polygon> element from [x, y] vertex pairs.
func Polygon(points [][2]float64) *Element {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, formatFloat(p[0])+","+formatFloat(p[1]))
	}
	return NewElement("polygon").Set("points", strings.Join(parts, " "))
}

// Path builds a <path> element with the given path data.
func Path(d string) *Element {
	return NewElement("path").Set("d", d)
}

// Group builds a <g> container element.
func Group(id string) *Element {
	return NewElement("g").Set("id", id)
}
