// Copyright (C) 2024 The flexjson Authors. All Rights Reserved.

// Package server exposes the reader and the tree utilities over HTTP, so
// the browser UI in static/ (and any other HTTP client) can drive them
// without linking against Go.
package server

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"net/http"
	"time"
)

//go:embed static/*
var staticFS embed.FS

// Server serves the flexjson HTTP API and the static browser UI.
type Server struct {
	httpServer *http.Server
	log        *slog.Logger
}

// Options configures New.
type Options struct {
	Addr string
	Log  *slog.Logger
}

// New builds a Server listening on opts.Addr. If opts.Log is nil, the
// default slog logger is used.
func New(opts Options) *Server {
	logger := opts.Log
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{log: logger}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err) // static/ is embedded at build time; this cannot fail.
	}

	mux := http.NewServeMux()
	mux.Handle("GET /", http.FileServerFS(static))
	mux.HandleFunc("POST /v1/parse", s.handleParse)
	mux.HandleFunc("POST /v1/pretty", s.handlePretty)
	mux.HandleFunc("POST /v1/minify", s.handleMinify)
	mux.HandleFunc("POST /v1/sort", s.handleSort)
	mux.HandleFunc("POST /v1/flatten", s.handleFlatten)
	mux.HandleFunc("POST /v1/strip-nulls", s.handleStripNulls)
	mux.HandleFunc("POST /v1/stats", s.handleStats)
	mux.HandleFunc("POST /v1/diff", s.handleDiff)
	mux.HandleFunc("POST /v1/query", s.handleQuery)

	s.httpServer = &http.Server{
		Addr:         opts.Addr,
		Handler:      s.withLogging(mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	return s
}

// ListenAndServe blocks serving HTTP until the server errors or shuts
// down. It returns http.ErrServerClosed on a clean Shutdown.
func (s *Server) ListenAndServe() error {
	s.log.Info("flexjson server listening", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// ServeHTTP lets a Server be driven directly, e.g. under
// net/http/httptest, without a listening socket.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// Shutdown gracefully stops the server, as http.Server.Shutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.log.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"duration", time.Since(start),
		)
	})
}
