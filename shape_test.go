package svgforge_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgforge "github.com/svgforge/svgforge"
)

func TestShapeDefaults(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	require.NoError(t, s.AddCircle(svgforge.CircleParams{DocID: docID, CX: 10, CY: 10, R: 5}))
	require.NoError(t, s.AddLine(svgforge.LineParams{DocID: docID, X1: 0, Y1: 0, X2: 10, Y2: 10}))
	require.NoError(t, s.AddPath(svgforge.PathParams{DocID: docID, D: "M 10 10 L 100 10 Z"}))

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	assert.Contains(t, out, `<circle cx="10" cy="10" r="5" fill="black" stroke="none"`)
	assert.Contains(t, out, `<line x1="0" y1="0" x2="10" y2="10" fill="none" stroke="black"`)
	assert.Contains(t, out, `<path d="M 10 10 L 100 10 Z" fill="none" stroke="black"`)
}

func TestShapesAppendInOrder(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	require.NoError(t, s.AddRect(svgforge.RectParams{DocID: docID, Width: 10, Height: 10}))
	require.NoError(t, s.AddEllipse(svgforge.EllipseParams{DocID: docID, CX: 5, CY: 5, RX: 4, RY: 2}))

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	assert.Less(t, strings.Index(out, "<rect"), strings.Index(out, "<ellipse"))
}

func TestShapeIntoGroup(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)
	groupID, err := s.CreateGroup(svgforge.CreateGroupParams{DocID: docID})
	require.NoError(t, err)

	require.NoError(t, s.AddText(svgforge.TextParams{
		DocID: docID, GroupID: groupID, Text: "hello", X: 10, Y: 20,
	}))

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	textAt := strings.Index(out, "<text")
	groupEnd := strings.Index(out, "</g>")
	require.NotEqual(t, -1, textAt)
	require.NotEqual(t, -1, groupEnd)
	assert.Less(t, textAt, groupEnd, "text should be nested inside the group")
	assert.Contains(t, out, `font-size="16px"`)
	assert.Contains(t, out, `text-anchor="start"`)
}

func TestShapeValidation(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	badOpacity := 1.2
	cases := map[string]error{
		"circle radius": s.AddCircle(svgforge.CircleParams{DocID: docID, R: 0}),
		"rect size":     s.AddRect(svgforge.RectParams{DocID: docID, Width: -1, Height: 10}),
		"ellipse radii": s.AddEllipse(svgforge.EllipseParams{DocID: docID, RX: 0, RY: 1}),
		"polygon count": s.AddPolygon(svgforge.PolygonParams{DocID: docID, Points: [][2]float64{{0, 0}, {1, 1}}}),
		"empty path":    s.AddPath(svgforge.PathParams{DocID: docID}),
		"empty text":    s.AddText(svgforge.TextParams{DocID: docID}),
		"font size":     s.AddText(svgforge.TextParams{DocID: docID, Text: "x", FontSize: "huge"}),
		"opacity": s.AddCircle(svgforge.CircleParams{
			DocID: docID, CX: 1, CY: 1, R: 1, Style: svgforge.Style{Opacity: &badOpacity},
		}),
	}
	for name, err := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, err)
			assert.ErrorIs(t, err, svgforge.ErrValidation)
		})
	}

	// None of the rejected shapes touched the document.
	out, err := s.SVGString(docID)
	require.NoError(t, err)
	for _, tag := range []string{"<circle", "<rect", "<ellipse", "<polygon", "<path", "<text"} {
		assert.NotContains(t, out, tag)
	}
}

func TestShapeUnknownDocument(t *testing.T) {
	s := svgforge.New()
	err := s.AddCircle(svgforge.CircleParams{DocID: "nope", CX: 1, CY: 1, R: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, svgforge.ErrNotFound)
}

func TestAddPolygon(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	require.NoError(t, s.AddPolygon(svgforge.PolygonParams{
		DocID:  docID,
		Points: [][2]float64{{0, 0}, {100, 0}, {50, 100}},
		Style:  svgforge.Style{Fill: "purple", Stroke: "black"},
	}))

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	assert.Contains(t, out, `<polygon points="0,0 100,0 50,100" fill="purple" stroke="black"`)
}

func TestAddRectCornerRadii(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	require.NoError(t, s.AddRect(svgforge.RectParams{
		DocID: docID, Width: 10, Height: 10, RX: 2, RY: 3,
	}))
	require.NoError(t, s.AddRect(svgforge.RectParams{
		DocID: docID, X: 20, Width: 10, Height: 10,
	}))

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	assert.Contains(t, out, `rx="2" ry="3"`)
	// Zero radii are omitted, not serialized as rx="0".
	assert.NotContains(t, out, `rx="0"`)
}
