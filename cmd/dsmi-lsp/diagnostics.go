package main

import (
	"context"
	"errors"
	"strings"
	"sync"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/baoilleach/deepsmiles"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
	conv *deepsmiles.Converter
}

// document holds one DeepSMILES string per line.
type document struct {
	uri     string
	content string
	version int32
	lines   []line
}

type line struct {
	src  string
	text string
	// start is the byte offset of text within src.
	start int
	// skip marks blank and comment lines.
	skip    bool
	decoded string
	err     *deepsmiles.DecodeError
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	doc := &document{
		uri:     uri,
		content: content,
		version: version,
		lines:   decodeLines(ds.conv, content),
	}
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func decodeLines(conv *deepsmiles.Converter, content string) []line {
	srcs := strings.Split(content, "\n")
	res := make([]line, len(srcs))
	for i, src := range srcs {
		src = strings.TrimSuffix(src, "\r")
		text := strings.TrimSpace(src)
		ln := line{src: src, text: text, start: strings.Index(src, text)}
		if text == "" || text[0] == '#' {
			ln.skip = true
			res[i] = ln
			continue
		}
		// a trailing name is not part of the string
		if j := strings.IndexAny(text, " \t"); j != -1 {
			ln.text = text[:j]
		}
		dec, err := conv.Decode(ln.text)
		if err != nil {
			var de *deepsmiles.DecodeError
			if errors.As(err, &de) {
				ln.err = de
			}
		}
		ln.decoded = dec
		res[i] = ln
	}
	return res
}

// col converts a byte offset within the source line to a position
// character, which counts UTF-16 code units.
func (ln line) col(off int) uint32 {
	return utf16Len(ln.src[:min(off, len(ln.src))])
}

// span returns the characters covered by n bytes at byte offset off of text.
func (ln line) span(off, n int) (uint32, uint32) {
	return ln.col(ln.start + off), ln.col(ln.start + off + n)
}

func utf16Len(s string) uint32 {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return uint32(n)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for i, ln := range doc.lines {
		if ln.err == nil {
			continue
		}
		pos := min(ln.err.Pos, len(ln.text))
		_, w := utf8.DecodeRuneInString(ln.text[pos:])
		start, end := ln.span(pos, max(w, 1))
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(i), Character: start},
				End:   protocol.Position{Line: uint32(i), Character: end},
			},
			Severity: protocol.DiagnosticSeverityError,
			Message:  ln.err.Message(),
			Source:   "deepsmiles",
		})
	}
	return diagnostics
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	// full sync: the last change holds the whole document
	content := params.ContentChanges[len(params.ContentChanges)-1].Text
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         params.TextDocument.URI,
			Diagnostics: []protocol.Diagnostic{},
		})
	}
	return nil
}
