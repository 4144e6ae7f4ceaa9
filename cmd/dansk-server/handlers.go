package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	dansk "github.com/itsmemarly/Danish-language-tool"
)

// server bundles the engine components behind the HTTP handlers.
type server struct {
	index      *dansk.Index
	analyzer   *dansk.Analyzer
	translator *dansk.Translator
}

func newServer(index *dansk.Index, translator *dansk.Translator) *server {
	return &server{
		index:      index,
		analyzer:   dansk.NewAnalyzer(index),
		translator: translator,
	}
}

// SentenceRequest is the HTTP request body for /v1/analyze and /v1/translate.
type SentenceRequest struct {
	Sentence string `json:"sentence"`          // sentence to process (required)
	Timeout  int    `json:"timeout,omitempty"` // timeout in seconds (default 30)
}

// AnalyzeHandler handles POST /v1/analyze requests.
func (s *server) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSentenceRequest(w, r)
	if !ok {
		return
	}

	diagnostics := s.analyzer.Check(req.Sentence)

	writeJSON(w, struct {
		Sentence    string   `json:"sentence"`
		Diagnostics []string `json:"diagnostics"`
	}{Sentence: req.Sentence, Diagnostics: diagnostics})
}

// TranslateHandler handles POST /v1/translate requests.
func (s *server) TranslateHandler(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeSentenceRequest(w, r)
	if !ok {
		return
	}

	timeout := 30 * time.Second
	if req.Timeout > 0 {
		timeout = time.Duration(req.Timeout) * time.Second
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeout)
	defer cancel()

	result, err := s.translator.TranslateContext(ctx, req.Sentence)
	if err != nil {
		http.Error(w, fmt.Sprintf("Translation failed: %v", err), http.StatusInternalServerError)
		return
	}

	writeJSON(w, struct {
		Sentence string   `json:"sentence"`
		Text     string   `json:"text"`
		Source   string   `json:"source"`
		Unknown  []string `json:"unknown,omitempty"`
	}{
		Sentence: req.Sentence,
		Text:     result.Text,
		Source:   string(result.Source),
		Unknown:  result.Unknown,
	})
}

// WordsHandler handles GET /v1/words requests. An optional "level" query
// parameter restricts the listing to one level.
func (s *server) WordsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	level := r.URL.Query().Get("level")
	if level != "" {
		writeJSON(w, map[string]map[dansk.Category]map[string]dansk.Entry{
			level: s.index.WordsForLevel(level),
		})
		return
	}

	out := make(map[string]map[dansk.Category]map[string]dansk.Entry)
	for _, lvl := range s.index.Levels() {
		out[lvl] = s.index.WordsForLevel(lvl)
	}
	writeJSON(w, out)
}

// HealthHandler handles GET /health requests.
func (s *server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{
		"status":  "ok",
		"service": dansk.Name,
		"version": dansk.FullVersion(),
	})
}

func decodeSentenceRequest(w http.ResponseWriter, r *http.Request) (SentenceRequest, bool) {
	var req SentenceRequest

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return req, false
	}
	defer r.Body.Close()

	return req, true
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
