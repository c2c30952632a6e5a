package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fretdiagram/fretboard"
	"fretdiagram/surface"
	"fretdiagram/termview"
	"fretdiagram/theory"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

const maxDimension = 4096

type cachedRender struct {
	req renderRequest
	png []byte
}

type Server struct {
	router *mux.Router
	logger *slog.Logger

	mu   sync.Mutex
	last *cachedRender
}

func New(logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{router: mux.NewRouter(), logger: logger}
	s.router.Use(s.requestID)
	s.router.HandleFunc("/fretboard.png", s.handleFretboardPNG).Methods(http.MethodGet)
	s.router.HandleFunc("/fretboard.txt", s.handleFretboardText).Methods(http.MethodGet)
	s.router.HandleFunc("/chords/{root}", s.handleChord).Methods(http.MethodGet)
	s.router.HandleFunc("/tunings", s.handleTunings).Methods(http.MethodGet)
	return s
}

func (s *Server) Handler() http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}).Handler(s.router)
}

func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			slog.String("id", id),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Duration("took", time.Since(start)),
		)
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Debug("write json response", slog.Any("err", err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, ErrorResponse{Error: err.Error()})
}

func (s *Server) write(w http.ResponseWriter, body []byte) {
	if _, err := w.Write(body); err != nil {
		s.logger.Debug("write response", slog.Any("err", err))
	}
}

// cached returns the last PNG if req would draw exactly the same picture.
func (s *Server) cached(req renderRequest) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil || s.last.req.width != req.width || s.last.req.height != req.height ||
		s.last.req.background != req.background {
		return nil, false
	}
	if fretboard.NeedsRedraw(s.last.req.cfg, req.cfg) {
		return nil, false
	}
	return s.last.png, true
}

func (s *Server) store(req renderRequest, png []byte) {
	s.mu.Lock()
	s.last = &cachedRender{req: req, png: png}
	s.mu.Unlock()
}

func (s *Server) handleFretboardPNG(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if png, ok := s.cached(req); ok {
		w.Header().Set("X-Fretdiagram-Cache", "hit")
		s.write(w, png)
		return
	}

	img := surface.NewImage(req.width, req.height, surface.DefaultMargin)
	img.SetBackground(req.background)
	if err := fretboard.Render(img, req.cfg); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	var buf bytes.Buffer
	if err := img.EncodePNG(&buf); err != nil {
		s.logger.Error("encode png", slog.Any("err", err))
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	s.store(req, buf.Bytes())
	w.Header().Set("X-Fretdiagram-Cache", "miss")
	s.write(w, buf.Bytes())
}

func (s *Server) handleFretboardText(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	var buf bytes.Buffer
	out, err := termview.String(lipgloss.NewRenderer(&buf), req.cfg)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	s.write(w, []byte(out))
}

func (s *Server) handleChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["root"]
	root, err := theory.ParseNote(name)
	if err != nil {
		s.writeError(w, http.StatusNotFound, err)
		return
	}
	res := theory.ResolveChord(root)
	if !res.Found {
		s.writeError(w, http.StatusNotFound, errors.New("chord not found"))
		return
	}
	s.writeJSON(w, http.StatusOK, ChordResponse{Root: root, Tones: res.Tones[:]})
}

func (s *Server) handleTunings(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, theory.Tunings)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func Run(ctx context.Context, addr string, logger *slog.Logger) error {
	s := New(logger)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("running server", slog.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
