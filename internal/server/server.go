package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/balidani/coaster-generator/pkg/td6"
	"github.com/balidani/coaster-generator/pkg/track"
	"github.com/balidani/coaster-generator/pkg/validation"
)

// Server is the local development server for inspecting a generated design.
type Server struct {
	designPath string
	port       int
}

// New creates a server for the given design file.
func New(designPath string, port int) *Server {
	return &Server{
		designPath: designPath,
		port:       port,
	}
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/design", s.handleDesign)
	mux.HandleFunc("GET /api/stats", s.handleStats)
	mux.HandleFunc("GET /api/verify", s.handleVerify)
	mux.HandleFunc("GET /", s.handleIndex)

	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("coastergen server starting on http://localhost%s", addr)
	log.Printf("Design: %s", s.designPath)

	return http.ListenAndServe(addr, mux)
}

// load reads the design fresh on every request so the preview follows the
// file as it is regenerated.
func (s *Server) load(w http.ResponseWriter) *td6.Design {
	design, err := td6.Load(s.designPath)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	return design
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>coastergen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>coastergen</h1>
<p>Design data at <code>/api/design</code>, stats at <code>/api/stats</code>, replay check at <code>/api/verify</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleDesign(w http.ResponseWriter, _ *http.Request) {
	design := s.load(w)
	if design == nil {
		return
	}

	type element struct {
		Index    int    `json:"index"`
		ID       uint8  `json:"id"`
		Name     string `json:"name"`
		Rotation uint8  `json:"rotation"`
	}
	elements := make([]element, len(design.Tracks))
	for i, t := range design.Tracks {
		elements[i] = element{
			Index:    i,
			ID:       uint8(t.ID),
			Name:     t.ID.String(),
			Rotation: t.Rotation,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"path":      s.designPath,
		"elements":  elements,
		"entrances": design.Entrances,
	})
}

func (s *Server) handleStats(w http.ResponseWriter, _ *http.Request) {
	design := s.load(w)
	if design == nil {
		return
	}

	histogram := make(map[string]int)
	for _, t := range design.Tracks {
		histogram[t.ID.String()]++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"elements":  len(design.Tracks),
		"entrances": len(design.Entrances),
		"histogram": histogram,
	})
}

func (s *Server) handleVerify(w http.ResponseWriter, _ *http.Request) {
	design := s.load(w)
	if design == nil {
		return
	}

	report := validation.CheckDesign(
		track.NewCatalog(), track.NewTables(), design.Tracks, validation.DefaultConfig())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}
