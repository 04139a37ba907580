// Package demoserver serves sample phishing and benign pages for trying the
// scanner by hand.
package demoserver

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/raysh454/phishlens/internal/logging"
)

// DemoServer is a simple HTTP server hosting the sample pages.
type DemoServer struct {
	cfg    Config
	pages  []PageDefinition
	logger logging.Logger
}

// NewDemoServer creates a new demo server instance.
func NewDemoServer(cfg Config, logger logging.Logger) *DemoServer {
	if logger == nil {
		logger = logging.NewStdoutLogger("demoserver")
	}
	return &DemoServer{cfg: cfg, pages: GetAllPages(), logger: logger}
}

// Handler returns the router serving every page plus the index.
func (s *DemoServer) Handler() http.Handler {
	r := chi.NewRouter()

	for _, p := range s.pages {
		p := p // capture for closure
		r.Get(p.Path, s.pageHandler(p))
	}

	r.Get("/", s.indexHandler)
	r.Get("/demo/pages.json", s.pagesJSONHandler)
	r.Get("/static/*", s.staticHandler)

	return r
}

// Start starts the demo server.
func (s *DemoServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.logger.Info("demo server starting", logging.Field{Key: "addr", Value: addr})
	return http.ListenAndServe(addr, s.Handler())
}

func (s *DemoServer) pageHandler(p PageDefinition) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(p.HTML))
	}
}

// staticHandler serves a 1x1 placeholder for any image reference.
func (s *DemoServer) staticHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "image/gif")
	_, _ = w.Write(placeholderGIF)
}

func (s *DemoServer) pagesJSONHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(s.pages)
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>PhishLens demo pages</title></head>
<body>
  <h1>PhishLens demo pages</h1>
  <p>Each page is meant to be checked as if it were served from its claimed URL.</p>
  <table border="1" cellpadding="4">
    <tr><th>Page</th><th>Claimed URL</th><th>Description</th></tr>
    {{range .}}
    <tr>
      <td><a href="{{.Path}}">{{.Name}}</a></td>
      <td><code>{{.ClaimedURL}}</code></td>
      <td>{{.Description}}</td>
    </tr>
    {{end}}
  </table>
</body>
</html>`))

func (s *DemoServer) indexHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, s.pages); err != nil {
		s.logger.Error("rendering index", logging.Err(err))
	}
}

// smallest valid transparent GIF
var placeholderGIF = []byte{
	0x47, 0x49, 0x46, 0x38, 0x39, 0x61, 0x01, 0x00, 0x01, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0xff, 0xff, 0x21, 0xf9, 0x04, 0x01, 0x00, 0x00, 0x00, 0x00, 0x2c, 0x00, 0x00, 0x00, 0x00,
	0x01, 0x00, 0x01, 0x00, 0x00, 0x02, 0x02, 0x44, 0x01, 0x00, 0x3b,
}
