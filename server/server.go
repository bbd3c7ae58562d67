// Package server serves rendered outputs over HTTP for local previewing.
// Every request pulls fresh sections from the source, so edits to the
// underlying file show up on reload.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/sonnes/transformime/dom"
)

// Section is one rendered output on the page.
type Section struct {
	Label    string       `json:"label"`
	MimeType string       `json:"mimetype"`
	Element  *dom.Element `json:"element"`
}

// SourceFunc produces the sections to serve.
type SourceFunc func(ctx context.Context) ([]Section, error)

// Server serves a single page of rendered outputs.
type Server struct {
	// Title is shown in the page heading.
	Title string
	// Source is called once per request.
	Source SourceFunc
	// Port is the TCP port to listen on.
	Port int
}

// Handler returns the HTTP routes:
//
//	GET /              the rendered page
//	GET /outputs.json  the sections as JSON
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /outputs.json", s.handleJSON)
	return mux
}

// ListenAndServe serves until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", "error", err)
		}
	}()

	log.Info("serving", "addr", "http://localhost"+addr, "title", s.Title)
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) handlePage(w http.ResponseWriter, req *http.Request) {
	sections, err := s.Source(req.Context())
	if err != nil {
		log.Error("render page", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := WritePage(w, s.Title, sections); err != nil {
		log.Error("write page", "error", err)
	}
}

func (s *Server) handleJSON(w http.ResponseWriter, req *http.Request) {
	sections, err := s.Source(req.Context())
	if err != nil {
		log.Error("render outputs", "error", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(sections); err != nil {
		log.Error("write outputs", "error", err)
	}
}
