package svgforge

import (
	"fmt"

	"github.com/svgforge/svgforge/pkg/svg"
)

// CreateDocumentParams are the inputs for CreateDocument. Width and
// height are size tokens ("800px", "100%", "640"); both default when
// empty. DocID is optional and auto-allocated when empty.
type CreateDocumentParams struct {
	Width  string `json:"width,omitempty"`
	Height string `json:"height,omitempty"`
	DocID  string `json:"doc_id,omitempty"`
}

// DocumentInfo describes one live document.
type DocumentInfo struct {
	DocID  string `json:"doc_id"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

const (
	defaultWidth  = "800px"
	defaultHeight = "600px"
)

// CreateDocument validates both size tokens, allocates or checks the
// document id, constructs the drawing root, and registers the document.
// Nothing is registered when validation fails.
func (s *Session) CreateDocument(p CreateDocumentParams) (*DocumentInfo, error) {
	if p.Width == "" {
		p.Width = defaultWidth
	}
	if p.Height == "" {
		p.Height = defaultHeight
	}

	width, err := parsePositiveLength("width", p.Width)
	if err != nil {
		return nil, err
	}
	height, err := parsePositiveLength("height", p.Height)
	if err != nil {
		return nil, err
	}

	docID := p.DocID
	if docID == "" {
		docID = allocateID("doc_", func(id string) bool {
			_, ok := s.docs[id]
			return ok
		})
	} else if _, ok := s.docs[docID]; ok {
		return nil, conflictf("document %q", docID)
	}

	doc := &document{
		id:          docID,
		width:       width,
		height:      height,
		drawing:     svg.NewDrawing(width, height),
		groups:      make(map[string]*group),
		gradientIDs: make(map[string]struct{}),
	}
	s.docs[docID] = doc
	s.docOrder = append(s.docOrder, docID)

	s.log.Info().Str("doc_id", docID).
		Str("width", width.String()).Str("height", height.String()).
		Msg("document created")

	return &DocumentInfo{DocID: docID, Width: width.String(), Height: height.String()}, nil
}

// ListDocuments returns the live documents in creation order.
func (s *Session) ListDocuments() []DocumentInfo {
	infos := make([]DocumentInfo, 0, len(s.docOrder))
	for _, id := range s.docOrder {
		doc := s.docs[id]
		infos = append(infos, DocumentInfo{
			DocID:  doc.id,
			Width:  doc.width.String(),
			Height: doc.height.String(),
		})
	}
	return infos
}

// DeleteDocument removes a document together with every group and
// gradient scoped to it. Deleting an unknown id fails; repeated deletes
// of the same id keep failing rather than silently succeeding.
func (s *Session) DeleteDocument(docID string) error {
	if _, err := s.getDocument(docID); err != nil {
		return err
	}
	delete(s.docs, docID)
	for i, id := range s.docOrder {
		if id == docID {
			s.docOrder = append(s.docOrder[:i], s.docOrder[i+1:]...)
			break
		}
	}

	s.log.Info().Str("doc_id", docID).Msg("document deleted")
	return nil
}

// SVGString serializes a document to its current SVG markup.
func (s *Session) SVGString(docID string) (string, error) {
	doc, err := s.getDocument(docID)
	if err != nil {
		return "", err
	}
	return doc.drawing.String(), nil
}

// SaveFileParams are the inputs for SaveFile.
type SaveFileParams struct {
	DocID    string `json:"doc_id"`
	Filepath string `json:"filepath"`
	Pretty   bool   `json:"pretty,omitempty"`
}

// SaveFile writes the serialized document to the given path.
func (s *Session) SaveFile(p SaveFileParams) error {
	doc, err := s.getDocument(p.DocID)
	if err != nil {
		return err
	}
	if p.Filepath == "" {
		return validationf("filepath must not be empty")
	}
	if err := doc.drawing.Save(p.Filepath, p.Pretty); err != nil {
		return fmt.Errorf("file error: %v", err)
	}

	s.log.Info().Str("doc_id", p.DocID).Str("filepath", p.Filepath).Msg("document saved")
	return nil
}

// parsePositiveLength parses a size token and requires a positive value,
// which viewport dimensions need.
func parsePositiveLength(name, token string) (svg.Length, error) {
	l, err := svg.ParseLength(token)
	if err != nil {
		return svg.Length{}, validationf("invalid %s %q: %v", name, token, err)
	}
	if l.Value <= 0 {
		return svg.Length{}, validationf("%s must be positive, got %q", name, token)
	}
	return l, nil
}
