package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Error codes returned in the "error" field.
const (
	codeBadRequest = "bad_request"
	codeNotFound   = "not_found"
	codeInternal   = "internal_error"
)

type errorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.ErrorContext(r.Context(), "failed to write response",
			"path", r.URL.Path,
			"error", err,
		)
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, status int, code, description string) {
	s.writeJSON(w, r, status, errorResponse{Error: code, ErrorDescription: description})
}

func (s *Server) badRequest(w http.ResponseWriter, r *http.Request, description string, err error) {
	s.logger.WarnContext(r.Context(), "invalid request",
		"path", r.URL.Path,
		"error", err,
	)
	s.writeError(w, r, http.StatusBadRequest, codeBadRequest, description)
}

func (s *Server) internalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger.ErrorContext(r.Context(), msg,
		"path", r.URL.Path,
		slog.Any("error", err),
	)
	s.writeError(w, r, http.StatusInternalServerError, codeInternal, msg)
}
