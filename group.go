package svgforge

import "github.com/svgforge/svgforge/pkg/svg"

// CreateGroupParams are the inputs for CreateGroup. GroupID is optional
// and auto-allocated when empty; opacity and transform are immutable
// visual modifiers applied at creation.
type CreateGroupParams struct {
	DocID     string   `json:"doc_id"`
	GroupID   string   `json:"group_id,omitempty"`
	Opacity   *float64 `json:"opacity,omitempty"`
	Transform string   `json:"transform,omitempty"`
}

// CreateGroup constructs a <g> node, attaches it to the document root,
// and registers it. Group ids are unique within their document; a
// caller-supplied duplicate is rejected before any mutation.
func (s *Session) CreateGroup(p CreateGroupParams) (string, error) {
	doc, err := s.getDocument(p.DocID)
	if err != nil {
		return "", err
	}

	opacity := floatOr(p.Opacity, 1)
	if opacity < 0 || opacity > 1 {
		return "", validationf("opacity must be in [0,1], got %v", opacity)
	}

	groupID := p.GroupID
	if groupID == "" {
		groupID = allocateID("group_", func(id string) bool {
			_, ok := doc.groups[id]
			return ok
		})
	} else if _, ok := doc.groups[groupID]; ok {
		return "", conflictf("group %q in document %q", groupID, doc.id)
	}

	node := svg.Group(groupID).SetFloat("opacity", opacity)
	if p.Transform != "" {
		node.Set("transform", p.Transform)
	}
	doc.drawing.Append(node)
	doc.groups[groupID] = &group{id: groupID, docID: doc.id, node: node}
	doc.groupOrder = append(doc.groupOrder, groupID)

	s.log.Info().Str("doc_id", doc.id).Str("group_id", groupID).Msg("group created")
	return groupID, nil
}

// ListGroups returns the group ids of a document in creation order.
func (s *Session) ListGroups(docID string) ([]string, error) {
	doc, err := s.getDocument(docID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(doc.groupOrder))
	copy(ids, doc.groupOrder)
	return ids, nil
}
