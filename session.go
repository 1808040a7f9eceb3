package svgforge

import (
	"github.com/rs/zerolog"

	"github.com/svgforge/svgforge/internal/rand"
	"github.com/svgforge/svgforge/pkg/svg"
)

const idTokenLength = 8

// Session is the state manager for a set of in-memory SVG documents. It
// owns the document registry and, through it, every group and gradient
// scoped to a document. All operations go through a Session; there is no
// package-level state, so tests get isolation by constructing fresh
// sessions.
//
// A Session is not safe for concurrent use. The execution model is
// single-threaded: the caller (the server dispatch loop) runs one
// operation to completion before starting the next.
type Session struct {
	log zerolog.Logger

	docs     map[string]*document
	docOrder []string
}

// New creates an empty session.
func New() *Session {
	return &Session{
		log:  zerolog.Nop(),
		docs: make(map[string]*document),
	}
}

// WithLogger sets the session logger and returns the session.
func (s *Session) WithLogger(log zerolog.Logger) *Session {
	s.log = log
	return s
}

// document is a live registry entry: the declared viewport size, the
// drawing handle, and the group/gradient registries scoped to it.
// Deleting the document drops all of it at once, which is what keeps
// invariant I1 (no orphaned children) trivially true.
type document struct {
	id     string
	width  svg.Length
	height svg.Length

	drawing *svg.Drawing

	groups     map[string]*group
	groupOrder []string

	gradients   []GradientInfo
	gradientIDs map[string]struct{}
}

// group is a live child container inside one document. The node is
// attached to the document root at creation time and never moves.
type group struct {
	id    string
	docID string
	node  *svg.Element
}

// target is anything shapes can be appended to: the drawing root or a
// group node.
type target interface {
	Append(el *svg.Element)
}

// allocateID draws random candidate identifiers with the given prefix
// until one is not taken. The registries are small, so in practice the
// first draw wins; the loop is what guarantees invariant I4.
func allocateID(prefix string, taken func(string) bool) string {
	for {
		id := prefix + rand.Token(idTokenLength)
		if !taken(id) {
			return id
		}
	}
}

// getDocument resolves a document id or fails with an ErrNotFound kind.
func (s *Session) getDocument(docID string) (*document, error) {
	doc, ok := s.docs[docID]
	if !ok {
		return nil, notFoundf("document %q", docID)
	}
	return doc, nil
}

// resolveTarget resolves the append target for a shape operation: the
// group node when a group id is supplied, the document root otherwise.
// A group id that exists under a different document is rejected as a
// cross-document reference rather than a plain not-found (I3).
func (s *Session) resolveTarget(docID, groupID string) (*document, target, error) {
	doc, err := s.getDocument(docID)
	if err != nil {
		return nil, nil, err
	}
	if groupID == "" {
		return doc, doc.drawing, nil
	}
	grp, err := s.resolveGroup(doc, groupID)
	if err != nil {
		return nil, nil, err
	}
	return doc, grp.node, nil
}

func (s *Session) resolveGroup(doc *document, groupID string) (*group, error) {
	if grp, ok := doc.groups[groupID]; ok {
		return grp, nil
	}
	for _, id := range s.docOrder {
		other := s.docs[id]
		if other == doc {
			continue
		}
		if _, ok := other.groups[groupID]; ok {
			return nil, crossReff("group %q belongs to document %q, not %q", groupID, other.id, doc.id)
		}
	}
	return nil, notFoundf("group %q in document %q", groupID, doc.id)
}
