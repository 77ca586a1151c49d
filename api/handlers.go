package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/baoilleach/deepsmiles"
)

type convertRequest struct {
	Input    string `json:"input"`
	Rings    bool   `json:"rings"`
	Branches bool   `json:"branches"`
}

type convertResponse struct {
	Output string `json:"output"`
}

type decodeErrorResponse struct {
	Error  string `json:"error"`
	Offset int    `json:"offset"`
	Input  string `json:"input"`
}

func (s *Server) handleEncode(w http.ResponseWriter, r *http.Request) {
	req, conv, ok := readRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Output: conv.Encode(req.Input)})
}

func (s *Server) handleDecode(w http.ResponseWriter, r *http.Request) {
	req, conv, ok := readRequest(w, r)
	if !ok {
		return
	}
	out, err := conv.Decode(req.Input)
	if err != nil {
		var de *deepsmiles.DecodeError
		if !errors.As(err, &de) {
			s.log.Error("decode failed", "input", req.Input, "error", err)
			jsonError(w, err.Error(), http.StatusInternalServerError)
			return
		}
		s.log.Debug("decode rejected", "input", req.Input, "offset", de.Pos, "error", de.Message())
		writeJSON(w, http.StatusUnprocessableEntity, decodeErrorResponse{
			Error:  de.Message(),
			Offset: de.Pos,
			Input:  de.Input,
		})
		return
	}
	writeJSON(w, http.StatusOK, convertResponse{Output: out})
}

func readRequest(w http.ResponseWriter, r *http.Request) (*convertRequest, *deepsmiles.Converter, bool) {
	req := &convertRequest{}
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return nil, nil, false
	}
	conv := deepsmiles.New(deepsmiles.Rings(req.Rings), deepsmiles.Branches(req.Branches))
	return req, conv, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	writeJSON(w, status, map[string]string{"error": msg})
}
