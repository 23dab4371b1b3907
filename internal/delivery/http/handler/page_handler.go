package handler

import (
	"net/http"

	"medtrack/internal/delivery/http/view"
)

// PageHandler serves the static public pages
type PageHandler struct {
	renderer *view.Renderer
}

func NewPageHandler(renderer *view.Renderer) *PageHandler {
	return &PageHandler{renderer: renderer}
}

func (h *PageHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageIndex, nil)
}

func (h *PageHandler) About(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageAbout, nil)
}

func (h *PageHandler) Contact(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageContact, nil)
}

func (h *PageHandler) Register(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageRegister, nil)
}

func (h *PageHandler) Login(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, view.PageLogin, view.LoginPage{})
}
