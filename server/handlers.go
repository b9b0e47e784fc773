// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

package server

import (
	"encoding/json"
	"net/http"

	"github.com/flexjson/flexjson"
	"github.com/flexjson/flexjson/tree"
)

// parseRequest is the envelope every endpoint that accepts raw JSON text
// decodes. Its own JSON is well-formed by construction (it's produced by
// the UI's fetch() calls), so it is decoded with encoding/json rather
// than run through the fault-tolerant reader -- that reader is for the
// *body's* Input field, not for this wrapper.
type parseRequest struct {
	Input   string            `json:"input"`
	Options *flexjson.Options `json:"options,omitempty"`
	Path    string            `json:"path,omitempty"`
	Other   string            `json:"other,omitempty"`
	Indent  string            `json:"indent,omitempty"`
}

type parseResponse struct {
	OK         bool            `json:"ok"`
	Result     json.RawMessage `json:"result,omitempty"`
	ErrorCount int             `json:"errorCount"`
	Errors     []string        `json:"errors,omitempty"`
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (parseRequest, bool) {
	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return parseRequest{}, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

// parseValue runs the fault-tolerant reader over req.Input and returns
// its first result (Null when there is none) together with the Outcome.
func parseValue(req parseRequest) (flexjson.Value, flexjson.Outcome) {
	out := flexjson.ParseSmart(req.Input, req.Options)
	if len(out.Results) == 0 {
		return flexjson.Null(), out
	}
	return out.Results[0], out
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Minify(v)),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

func (s *Server) handlePretty(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	indent := req.Indent
	if indent == "" {
		indent = "  "
	}
	v, out := parseValue(req)
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Pretty(v, indent)),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

func (s *Server) handleMinify(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Minify(v)),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

func (s *Server) handleSort(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	sorted := tree.SortKeys(v)
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Pretty(sorted, "  ")),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

func (s *Server) handleStripNulls(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	stripped := tree.StripNulls(v)
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Pretty(stripped, "  ")),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

func (s *Server) handleFlatten(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	flat := tree.Flatten(v)
	obj := flexjson.NewObject()
	for k, val := range flat {
		obj.Set(k, val)
	}
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Pretty(tree.SortKeys(flexjson.ObjectValue(obj)), "  ")),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

type statsResponse struct {
	OK         bool            `json:"ok"`
	Stats      tree.Statistics `json:"stats"`
	ErrorCount int             `json:"errorCount"`
	Errors     []string        `json:"errors,omitempty"`
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	writeJSON(w, statsResponse{
		OK:         out.OK,
		Stats:      tree.Stats(v),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}

type diffResponse struct {
	OK      bool          `json:"ok"`
	Changes []tree.Change `json:"changes"`
}

func (s *Server) handleDiff(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	a, outA := parseValue(req)
	b, outB := parseValue(parseRequest{Input: req.Other, Options: req.Options})
	changes := tree.Diff(a, b)
	writeJSON(w, diffResponse{
		OK:      outA.OK && outB.OK,
		Changes: changes,
	})
}

func (s *Server) handleQuery(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRequest(w, r)
	if !ok {
		return
	}
	v, out := parseValue(req)
	result, err := tree.Query(v, req.Path)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	writeJSON(w, parseResponse{
		OK:         out.OK,
		Result:     json.RawMessage(tree.Pretty(result, "  ")),
		ErrorCount: out.ErrorCount,
		Errors:     out.Errors,
	})
}
