// Package page реализует HTTP-обработчик простых страниц сайта: заголовок
// на языке запроса и панель навигации текущей сессии.
package page

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/http/views"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// NavBuilder строит панель навигации для запроса.
type NavBuilder interface {
	NavView(r *http.Request) navbar.View
}

// Renderer выполняет шаблон страницы.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler отдаёт одну страницу сайта.
type Handler struct {
	log       *slog.Logger
	nav       NavBuilder
	renderer  Renderer
	titleKey  string
	loginForm bool
}

// Option настраивает Handler.
type Option func(*Handler)

// WithLoginForm добавляет на страницу форму приёма токена.
func WithLoginForm() Option {
	return func(h *Handler) {
		h.loginForm = true
	}
}

// New создаёт обработчик страницы с заголовком из каталога переводов по ключу titleKey.
func New(log *slog.Logger, nav NavBuilder, renderer Renderer, titleKey string, opts ...Option) *Handler {
	h := &Handler{
		log:      log,
		nav:      nav,
		renderer: renderer,
		titleKey: titleKey,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.pages.page"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("path", r.URL.Path),
	)

	title := h.titleKey
	if tr, ok := middlewarectx.TranslatorFrom(r.Context()); ok {
		title = tr.T(h.titleKey)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := h.renderer.Render(w, views.PageGeneric, views.PageData{
		Nav:       h.nav.NavView(r),
		Title:     title,
		LoginForm: h.loginForm,
	})
	if err != nil {
		log.Error("failed to render page", sl.Err(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
