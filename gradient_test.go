package svgforge_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgforge "github.com/svgforge/svgforge"
)

func grayscaleStops() []svgforge.StopParams {
	return []svgforge.StopParams{
		{Offset: 0, Color: "#fff"},
		{Offset: 1, Color: "#000"},
	}
}

func TestAddLinearGradient(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	ref, err := s.AddLinearGradient(svgforge.LinearGradientParams{
		DocID: docID, GradientID: "g1", Stops: grayscaleStops(),
	})
	require.NoError(t, err)
	assert.Equal(t, "g1", ref.GradientID)
	assert.Equal(t, "url(#g1)", ref.URLRef)

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	assert.Contains(t, out, `<linearGradient id="g1" x1="0%" y1="0%" x2="100%" y2="0%">`)
	assert.Contains(t, out, `<stop offset="0" stop-color="#fff" />`)
	assert.Contains(t, out, `<stop offset="1" stop-color="#000" />`)
}

func TestAddRadialGradient(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	opacity := 0.25
	ref, err := s.AddRadialGradient(svgforge.RadialGradientParams{
		DocID: docID,
		Stops: []svgforge.StopParams{
			{Offset: 0, Color: "red", Opacity: &opacity},
			{Offset: 1, Color: "blue"},
		},
		CX: "40%", CY: "60%",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, ref.GradientID)

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	// Focal point defaults to the supplied center.
	assert.Contains(t, out, `cx="40%" cy="60%" r="50%" fx="40%" fy="60%"`)
	assert.Contains(t, out, `stop-opacity="0.25"`)
}

func TestGradientFillReference(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	ref, err := s.AddLinearGradient(svgforge.LinearGradientParams{
		DocID: docID, Stops: grayscaleStops(),
	})
	require.NoError(t, err)

	require.NoError(t, s.AddCircle(svgforge.CircleParams{
		DocID: docID, CX: 10, CY: 10, R: 5,
		Style: svgforge.Style{Fill: ref.URLRef},
	}))

	out, err := s.SVGString(docID)
	require.NoError(t, err)
	assert.Contains(t, out, `fill="`+ref.URLRef+`"`)
}

func TestGradientDuplicateID(t *testing.T) {
	s := svgforge.New()
	docA := newDoc(t, s)
	docB := newDoc(t, s)

	_, err := s.AddLinearGradient(svgforge.LinearGradientParams{
		DocID: docA, GradientID: "shared", Stops: grayscaleStops(),
	})
	require.NoError(t, err)

	// Same id in the same document fails, once.
	_, err = s.AddRadialGradient(svgforge.RadialGradientParams{
		DocID: docA, GradientID: "shared", Stops: grayscaleStops(),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, svgforge.ErrConflict)

	// Same id in another document is fine.
	_, err = s.AddLinearGradient(svgforge.LinearGradientParams{
		DocID: docB, GradientID: "shared", Stops: grayscaleStops(),
	})
	assert.NoError(t, err)
}

func TestGradientStopValidation(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	badOpacity := 2.0
	cases := map[string]svgforge.LinearGradientParams{
		"empty stops": {DocID: docID},
		"offset high": {DocID: docID, Stops: []svgforge.StopParams{{Offset: 1.5, Color: "red"}}},
		"offset low": {DocID: docID, Stops: []svgforge.StopParams{{Offset: -0.1, Color: "red"}}},
		"empty color": {DocID: docID, Stops: []svgforge.StopParams{{Offset: 0.5}}},
		"bad opacity": {DocID: docID, Stops: []svgforge.StopParams{{Offset: 0.5, Color: "red", Opacity: &badOpacity}}},
	}
	for name, params := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.AddLinearGradient(params)
			require.Error(t, err)
			assert.ErrorIs(t, err, svgforge.ErrValidation)
		})
	}

	// A failed add leaves the registry untouched.
	infos, err := s.ListGradients(docID)
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestListGradients(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)

	_, err := s.AddLinearGradient(svgforge.LinearGradientParams{
		DocID: docID, GradientID: "a", Stops: grayscaleStops(),
	})
	require.NoError(t, err)
	_, err = s.AddRadialGradient(svgforge.RadialGradientParams{
		DocID: docID, GradientID: "b", Stops: grayscaleStops(),
	})
	require.NoError(t, err)

	infos, err := s.ListGradients(docID)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, svgforge.GradientInfo{ID: "a", Kind: svgforge.GradientLinear}, infos[0])
	assert.Equal(t, svgforge.GradientInfo{ID: "b", Kind: svgforge.GradientRadial}, infos[1])

	_, err = s.ListGradients("unknown")
	assert.ErrorIs(t, err, svgforge.ErrNotFound)
}
