package http

import "net/http"

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"status": s.api.Health()})
	})

	s.mux.HandleFunc("POST /import/accounts", s.handleImportAccounts)
	s.mux.HandleFunc("POST /import/posts", s.handleImportPosts)

	s.mux.HandleFunc("GET /accounts", s.handleListAccounts)
	s.mux.HandleFunc("GET /posts", s.handleListPosts)

	s.mux.HandleFunc("DELETE /accounts/{id}", s.handleDeleteAccount)
	s.mux.HandleFunc("DELETE /posts/{id}", s.handleDeletePost)

	s.mux.HandleFunc("POST /digest", s.handleDigest)
	s.mux.HandleFunc("POST /digest/verify", s.handleVerify)
}
