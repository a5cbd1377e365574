package server

import (
	"encoding/json"
	"net/http"
	"time"
)

const notReady = "no screen has completed yet"

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	_, _, at, ok := s.store.Latest()
	resp := map[string]interface{}{
		"status": "healthy",
		"ready":  ok,
	}
	if ok {
		resp["last_run"] = at.Format(time.RFC3339)
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	html, _, at, ok := s.store.Latest()
	if !ok {
		http.Error(w, notReady, http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Last-Modified", at.UTC().Format(http.TimeFormat))
	w.Write(html)
}

func (s *Server) handleAnalysis(w http.ResponseWriter, r *http.Request) {
	_, doc, at, ok := s.store.Latest()
	if !ok {
		s.writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": notReady})
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Last-Modified", at.UTC().Format(http.TimeFormat))
	w.Write(doc)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode JSON response")
	}
}
