package main

import (
	"context"

	"github.com/baoilleach/deepsmiles/token"
	"go.lsp.dev/protocol"
)

// tokenTypes is the legend; semantic token type indices refer to it.
var tokenTypes = []protocol.SemanticTokenTypes{
	protocol.SemanticTokenComment,
	protocol.SemanticTokenProperty,
	protocol.SemanticTokenOperator,
	protocol.SemanticTokenNumber,
	protocol.SemanticTokenKeyword,
}

const (
	semComment uint32 = iota
	semAtom
	semBond
	semRing
	semBranch
)

func semanticType(t token.TokenType) uint32 {
	switch t {
	case token.TBond:
		return semBond
	case token.TRing:
		return semRing
	case token.TOpen, token.TClose:
		return semBranch
	default:
		return semAtom
	}
}

type tokenInfo struct {
	line, character, length, typ uint32
}

func (s *Server) collectSemanticTokens(doc *document, from, to int) []uint32 {
	notation := token.SMILES
	if s.conv.Rings() {
		notation = token.DeepSMILES
	}
	var infos []tokenInfo
	var toks []token.Token
	for i := from; i < to && i < len(doc.lines); i++ {
		ln := doc.lines[i]
		if ln.text == "" {
			continue
		}
		if ln.skip {
			start, end := ln.span(0, len(ln.text))
			infos = append(infos, tokenInfo{line: uint32(i), character: start, length: end - start, typ: semComment})
			continue
		}
		toks, _ = token.Tokenize(toks[:0], ln.text, token.WithNotation(notation), token.Lenient(true))
		for j := range toks {
			tok := &toks[j]
			start, end := ln.span(tok.Pos, len(tok.Text))
			infos = append(infos, tokenInfo{
				line:      uint32(i),
				character: start,
				length:    end - start,
				typ:       semanticType(tok.Type),
			})
		}
	}

	tokens := make([]uint32, 0, 5*len(infos))
	var prevLine, prevChar uint32
	for _, ti := range infos {
		deltaLine := ti.line - prevLine
		deltaChar := ti.character
		if deltaLine == 0 {
			deltaChar = ti.character - prevChar
		}
		tokens = append(tokens, deltaLine, deltaChar, ti.length, ti.typ, 0)
		prevLine = ti.line
		prevChar = ti.character
	}
	return tokens
}

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc, 0, len(doc.lines)),
	}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{
			Data: []uint32{},
		}, nil
	}
	from := int(params.Range.Start.Line)
	to := int(params.Range.End.Line) + 1
	return &protocol.SemanticTokens{
		Data: s.collectSemanticTokens(doc, from, to),
	}, nil
}
