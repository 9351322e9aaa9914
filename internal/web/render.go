package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

const (
	PageCatalog  = "catalog"
	PageProduct  = "product"
	PageNotFound = "not_found"
)

var pages = []string{PageCatalog, PageProduct, PageNotFound}

// Renderer executes one page template inside the shared layout.
type Renderer struct {
	templates map[string]*template.Template
	logger    *zap.Logger
}

func NewRenderer(logger *zap.Logger) (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for _, name := range pages {
		t, err := template.New("layout.tmpl").ParseFS(templateFS,
			"templates/layout.tmpl",
			"templates/"+name+".tmpl",
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		templates[name] = t
	}

	return &Renderer{
		templates: templates,
		logger:    logger,
	}, nil
}

// Render writes the page with the given status. Output is buffered so a
// failing template produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) {
	t, ok := r.templates[name]
	if !ok {
		r.logger.Error("unknown template", zap.String("template", name))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		r.logger.Error("failed to render template", zap.String("template", name), zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		r.logger.Warn("failed to write response", zap.Error(err))
	}
}
