package handlers

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sbilibin2017/sigma-tutor/internal/logger"
	"github.com/sbilibin2017/sigma-tutor/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData is the data passed to every page template.
type PageData struct {
	Title      string
	User       *models.User
	Flashes    []models.Flash
	Next       string
	Identifier string
}

// Renderer renders the embedded page templates.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	pages := make(map[string]*template.Template)
	for _, name := range []string{"index.html", "login.html"} {
		tmpl, err := template.ParseFS(templateFS, "templates/layout.html", "templates/"+name)
		if err != nil {
			return nil, err
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render executes the named page into w with the given status.
func (rn *Renderer) Render(w http.ResponseWriter, status int, name string, data PageData) {
	tmpl, ok := rn.pages[name]
	if !ok {
		logger.Log.Errorw("unknown template", "name", name)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		logger.Log.Errorw("failed to render template", "name", name, "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
