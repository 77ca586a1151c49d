package main

import (
	"context"

	"go.lsp.dev/protocol"
)

// Formatting rewrites every decodable line in canonical form, the encoding
// of its decoding, keeping comments and names.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	return s.formatLines(doc, 0, len(doc.lines)), nil
}

func (s *Server) RangeFormatting(ctx context.Context, params *protocol.DocumentRangeFormattingParams) ([]protocol.TextEdit, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	end := min(int(params.Range.End.Line)+1, len(doc.lines))
	return s.formatLines(doc, int(params.Range.Start.Line), end), nil
}

func (s *Server) formatLines(doc *document, from, to int) []protocol.TextEdit {
	edits := []protocol.TextEdit{}
	for i := from; i < to; i++ {
		ln := doc.lines[i]
		if ln.skip || ln.err != nil {
			continue
		}
		canon := s.conv.Encode(ln.decoded)
		if canon == ln.text {
			continue
		}
		start, end := ln.span(0, len(ln.text))
		edits = append(edits, protocol.TextEdit{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(i), Character: start},
				End:   protocol.Position{Line: uint32(i), Character: end},
			},
			NewText: canon,
		})
	}
	return edits
}
