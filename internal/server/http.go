package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"placesync/internal/api"
)

type Server struct {
	api *api.API
	mux *http.ServeMux
}

func New(a *api.API) *Server {
	s := &Server{api: a, mux: http.NewServeMux()}
	s.routes()
	return s
}

// ListenAndServe blocks until the listener fails or ctx is canceled;
// cancellation shuts the server down and returns nil.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = httpSrv.Shutdown(shutdownCtx)
	}()
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
