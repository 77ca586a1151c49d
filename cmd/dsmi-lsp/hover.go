package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"
)

// Hover shows the SMILES which a line decodes to.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	i := int(params.Position.Line)
	if i >= len(doc.lines) || doc.lines[i].skip {
		return nil, nil
	}
	ln := doc.lines[i]
	hoverText := buildHoverText(ln)
	start, end := ln.span(0, len(ln.text))
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverText,
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(i), Character: start},
			End:   protocol.Position{Line: uint32(i), Character: end},
		},
	}, nil
}

func buildHoverText(ln line) string {
	if ln.err != nil {
		return fmt.Sprintf("**error**: %s\n\n```\n%s```", ln.err.Message(), ln.err.Caret())
	}
	return fmt.Sprintf("**SMILES**: `%s`", ln.decoded)
}
