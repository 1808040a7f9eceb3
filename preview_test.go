package svgforge_test

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	svgforge "github.com/svgforge/svgforge"
)

func TestPreview(t *testing.T) {
	s := svgforge.New()
	docID := newDoc(t, s)
	require.NoError(t, s.AddRect(svgforge.RectParams{
		DocID: docID, X: 0, Y: 0, Width: 800, Height: 600,
		Style: svgforge.Style{Fill: "red"},
	}))

	res, err := s.Preview(docID)
	require.NoError(t, err)
	assert.Equal(t, "image/png", res.MimeType)

	raw, err := base64.StdEncoding.DecodeString(res.Data)
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, 800, img.Bounds().Dx())
	assert.Equal(t, 600, img.Bounds().Dy())

	r, _, _, _ := img.At(400, 300).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestPreviewUnknownDocument(t *testing.T) {
	s := svgforge.New()
	_, err := s.Preview("nope")
	assert.ErrorIs(t, err, svgforge.ErrNotFound)
}
