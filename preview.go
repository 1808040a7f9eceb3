package svgforge

import (
	"encoding/base64"
	"fmt"

	"github.com/svgforge/svgforge/pkg/raster"
)

// PreviewResult carries an inline-rendered raster preview of a document.
type PreviewResult struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"`
}

// Preview renders a document to a PNG preview. The rasterizer covers the
// solid-fill primitives; see pkg/raster for what it skips.
func (s *Session) Preview(docID string) (*PreviewResult, error) {
	doc, err := s.getDocument(docID)
	if err != nil {
		return nil, err
	}
	png, err := raster.EncodePNG(doc.drawing)
	if err != nil {
		return nil, fmt.Errorf("render preview: %v", err)
	}
	return &PreviewResult{
		MimeType: "image/png",
		Data:     base64.StdEncoding.EncodeToString(png),
	}, nil
}
