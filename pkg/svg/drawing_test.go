package svg_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svgforge/svgforge/pkg/svg"
)

func newDrawing(t *testing.T) *svg.Drawing {
	t.Helper()
	w, err := svg.ParseLength("800px")
	require.NoError(t, err)
	h, err := svg.ParseLength("600px")
	require.NoError(t, err)
	return svg.NewDrawing(w, h)
}

func TestDrawingString(t *testing.T) {
	d := newDrawing(t)
	d.Append(svg.Rect(0, 0, 800, 600).Set("fill", "#eef"))

	out := d.String()
	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="utf-8"?>`))
	assert.Contains(t, out, `<svg xmlns="http://www.w3.org/2000/svg" width="800px" height="600px">`)
	assert.Contains(t, out, `<rect x="0" y="0" width="800" height="600" fill="#eef" />`)
	assert.True(t, strings.HasSuffix(out, "</svg>"))
}

func TestDrawingDefsComeFirst(t *testing.T) {
	d := newDrawing(t)
	d.Append(svg.Circle(10, 10, 5).Set("fill", "url(#g1)"))
	d.Def(svg.LinearGradient("g1", "0%", "0%", "100%", "0%", []svg.GradientStop{
		{Offset: 0, Color: "#fff", Opacity: 1},
		{Offset: 1, Color: "#000", Opacity: 1},
	}))

	out := d.String()
	defsAt := strings.Index(out, "<defs>")
	circleAt := strings.Index(out, "<circle")
	require.NotEqual(t, -1, defsAt)
	require.NotEqual(t, -1, circleAt)
	assert.Less(t, defsAt, circleAt)
	assert.Contains(t, out, `<linearGradient id="g1" x1="0%" y1="0%" x2="100%" y2="0%">`)
	assert.Contains(t, out, `<stop offset="0" stop-color="#fff" />`)
}

func TestDrawingEscaping(t *testing.T) {
	d := newDrawing(t)
	d.Append(svg.Text(`a < b & "c"`, 10, 20))
	d.Append(svg.Rect(0, 0, 1, 1).Set("fill", `va"lue`))

	out := d.String()
	assert.Contains(t, out, "a &lt; b &amp; \"c\"")
	assert.Contains(t, out, `fill="va&quot;lue"`)
	assert.NotContains(t, out, `<b &`)
}

func TestDrawingRenderPretty(t *testing.T) {
	d := newDrawing(t)
	grp := svg.Group("layer")
	grp.Append(svg.Line(0, 0, 10, 10).Set("stroke", "black"))
	d.Append(grp)

	out := d.Render(true)
	assert.Contains(t, out, "\n  <g id=\"layer\">\n")
	assert.Contains(t, out, "\n    <line")
}

func TestDrawingSave(t *testing.T) {
	d := newDrawing(t)
	d.Append(svg.Circle(5, 5, 2))

	path := filepath.Join(t.TempDir(), "out.svg")
	require.NoError(t, d.Save(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, d.String(), string(data))
}

func TestElementSetReplaces(t *testing.T) {
	el := svg.NewElement("rect").Set("fill", "red").Set("fill", "blue")
	v, ok := el.Get("fill")
	require.True(t, ok)
	assert.Equal(t, "blue", v)
	assert.Len(t, el.Attrs(), 1)
}

func TestPolygonPoints(t *testing.T) {
	el := svg.Polygon([][2]float64{{0, 0}, {100, 0}, {50, 100}})
	v, ok := el.Get("points")
	require.True(t, ok)
	assert.Equal(t, "0,0 100,0 50,100", v)
}
