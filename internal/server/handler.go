package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"placesync/internal/ingest"
)

const (
	importTimeout = 30 * time.Second
	queryTimeout  = 5 * time.Second
)

func (s *Server) handleImportAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), importTimeout)
	defer cancel()

	report, err := s.api.ImportAccounts(ctx)
	if err != nil {
		writeError(w, importStatus(err), "account import failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleImportPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), importTimeout)
	defer cancel()

	report, err := s.api.ImportPosts(ctx)
	if err != nil {
		writeError(w, importStatus(err), "post import failed: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	items, err := s.api.ListAccounts(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleListPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	items, err := s.api.ListPosts(ctx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "query error: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": items})
}

func (s *Server) handleDeleteAccount(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, s.api.DeleteAccount, "account")
}

func (s *Server) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	s.handleDelete(w, r, s.api.DeletePost, "post")
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request, del func(context.Context, int64) (bool, error), kind string) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), queryTimeout)
	defer cancel()

	ok, err := del(ctx, id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "delete error: "+err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "no "+kind+" with that id")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

type digestRequest struct {
	Text   string `json:"text"`
	Digest string `json:"digest"`
}

func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request) {
	var req digestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"digest": s.api.Digest(req.Text)})
}

func (s *Server) handleVerify(w http.ResponseWriter, r *http.Request) {
	var req digestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"valid": s.api.Verify(req.Text, req.Digest)})
}

// importStatus maps batch-fatal import errors onto HTTP statuses: upstream
// problems are a bad gateway, everything else is internal.
func importStatus(err error) int {
	if errors.Is(err, ingest.ErrUnavailable) || errors.Is(err, ingest.ErrBadPayload) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
