package server

import (
	"encoding/json"
	"fmt"

	svgforge "github.com/svgforge/svgforge"
	"github.com/svgforge/svgforge/pkg/rpc"
)

// Envelope payload shapes for operations whose result is not already a
// payload struct in the root package.

type documentsPayload struct {
	Documents []svgforge.DocumentInfo `json:"documents"`
}

type deletedPayload struct {
	DocID string `json:"doc_id"`
}

// docIDParams is the common parameter shape of the single-document
// read operations.
type docIDParams struct {
	DocID string `json:"doc_id"`
}

type svgPayload struct {
	SVG string `json:"svg"`
}

type savedPayload struct {
	DocID    string `json:"doc_id"`
	Filepath string `json:"filepath"`
}

type groupPayload struct {
	GroupID string `json:"group_id"`
}

type groupsPayload struct {
	DocID  string   `json:"doc_id"`
	Groups []string `json:"groups"`
}

type gradientsPayload struct {
	DocID     string                  `json:"doc_id"`
	Gradients []svgforge.GradientInfo `json:"gradients"`
}

func (s *Server) methodTable() map[rpc.Method]handlerFunc {
	return map[rpc.Method]handlerFunc{
		rpc.CreateDocument: handle(func(p svgforge.CreateDocumentParams) (any, error) {
			return s.session.CreateDocument(p)
		}),
		rpc.ListDocuments: handle(func(struct{}) (any, error) {
			return documentsPayload{Documents: s.session.ListDocuments()}, nil
		}),
		rpc.DeleteDocument: handle(func(p docIDParams) (any, error) {
			if err := s.session.DeleteDocument(p.DocID); err != nil {
				return nil, err
			}
			return deletedPayload{DocID: p.DocID}, nil
		}),
		rpc.GetSVGString: handle(func(p docIDParams) (any, error) {
			markup, err := s.session.SVGString(p.DocID)
			if err != nil {
				return nil, err
			}
			return svgPayload{SVG: markup}, nil
		}),
		rpc.SaveFile: handle(func(p svgforge.SaveFileParams) (any, error) {
			if err := s.session.SaveFile(p); err != nil {
				return nil, err
			}
			return savedPayload{DocID: p.DocID, Filepath: p.Filepath}, nil
		}),

		rpc.AddCircle: handle(func(p svgforge.CircleParams) (any, error) {
			return nil, s.session.AddCircle(p)
		}),
		rpc.AddRect: handle(func(p svgforge.RectParams) (any, error) {
			return nil, s.session.AddRect(p)
		}),
		rpc.AddLine: handle(func(p svgforge.LineParams) (any, error) {
			return nil, s.session.AddLine(p)
		}),
		rpc.AddEllipse: handle(func(p svgforge.EllipseParams) (any, error) {
			return nil, s.session.AddEllipse(p)
		}),
		rpc.AddText: handle(func(p svgforge.TextParams) (any, error) {
			return nil, s.session.AddText(p)
		}),
		rpc.AddPolygon: handle(func(p svgforge.PolygonParams) (any, error) {
			return nil, s.session.AddPolygon(p)
		}),
		rpc.AddPath: handle(func(p svgforge.PathParams) (any, error) {
			return nil, s.session.AddPath(p)
		}),

		rpc.CreateGroup: handle(func(p svgforge.CreateGroupParams) (any, error) {
			groupID, err := s.session.CreateGroup(p)
			if err != nil {
				return nil, err
			}
			return groupPayload{GroupID: groupID}, nil
		}),
		rpc.ListGroups: handle(func(p docIDParams) (any, error) {
			groups, err := s.session.ListGroups(p.DocID)
			if err != nil {
				return nil, err
			}
			return groupsPayload{DocID: p.DocID, Groups: groups}, nil
		}),

		rpc.AddLinearGradient: handle(func(p svgforge.LinearGradientParams) (any, error) {
			return s.session.AddLinearGradient(p)
		}),
		rpc.AddRadialGradient: handle(func(p svgforge.RadialGradientParams) (any, error) {
			return s.session.AddRadialGradient(p)
		}),
		rpc.ListGradients: handle(func(p docIDParams) (any, error) {
			gradients, err := s.session.ListGradients(p.DocID)
			if err != nil {
				return nil, err
			}
			return gradientsPayload{DocID: p.DocID, Gradients: gradients}, nil
		}),

		rpc.AddGridPattern: handle(func(p svgforge.GridPatternParams) (any, error) {
			return s.session.AddGridPattern(p)
		}),
		rpc.AddCheckerboardPattern: handle(func(p svgforge.CheckerboardParams) (any, error) {
			return s.session.AddCheckerboardPattern(p)
		}),
		rpc.AddDotGridPattern: handle(func(p svgforge.DotGridParams) (any, error) {
			return s.session.AddDotGridPattern(p)
		}),
		rpc.AddConcentricCirclesPattern: handle(func(p svgforge.ConcentricCirclesParams) (any, error) {
			return s.session.AddConcentricCirclesPattern(p)
		}),

		rpc.GetSVGPreview: handle(func(p docIDParams) (any, error) {
			return s.session.Preview(p.DocID)
		}),
	}
}

// handle adapts a typed operation to the handler contract: decode
// params, run, wrap the outcome in an envelope. Returning a nil payload
// with a nil error yields a bare ok envelope.
func handle[T any](op func(T) (any, error)) handlerFunc {
	return func(params json.RawMessage) rpc.Envelope {
		var p T
		if len(params) > 0 {
			if err := json.Unmarshal(params, &p); err != nil {
				return rpc.Err(fmt.Errorf("invalid params: %v", err))
			}
		}
		payload, err := op(p)
		if err != nil {
			return rpc.Err(err)
		}
		return rpc.OK(payload)
	}
}
