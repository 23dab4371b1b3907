// Package view renders the server-side HTML pages.
package view

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names, one per template file
const (
	PageIndex            = "index.html"
	PageAbout            = "about.html"
	PageContact          = "contact.html"
	PageRegister         = "register.html"
	PageLogin            = "login.html"
	PagePatientProfile   = "dashboard.html"
	PagePatientDashboard = "patient.html"
	PageDoctorDashboard  = "doctor.html"
)

// LoginPage is the data of the login form
type LoginPage struct {
	Message string
}

type Renderer struct {
	templates *template.Template
	log       *logrus.Logger
}

func NewRenderer(log *logrus.Logger) (*Renderer, error) {
	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		templates: templates,
		log:       log,
	}, nil
}

// Render executes page into a buffer first so a template failure still yields a clean 500
func (r *Renderer) Render(w http.ResponseWriter, status int, page string, data interface{}) {
	var buf bytes.Buffer
	if err := r.templates.ExecuteTemplate(&buf, page, data); err != nil {
		r.log.Errorf("Failed to render %s: %+v", page, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
