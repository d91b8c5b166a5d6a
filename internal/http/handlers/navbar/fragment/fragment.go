// Package fragment отдаёт HTML панели навигации без остальной страницы.
// Страница запрашивает его после уведомления об изменении хранилища.
package fragment

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// NavBuilder строит панель навигации для запроса.
type NavBuilder interface {
	NavView(r *http.Request) navbar.View
}

// Renderer выполняет шаблон панели.
type Renderer interface {
	RenderNavbar(w io.Writer, nav navbar.View) error
}

// Handler отдаёт фрагмент панели.
type Handler struct {
	log      *slog.Logger
	nav      NavBuilder
	renderer Renderer
}

// New создает новый Handler.
func New(log *slog.Logger, nav NavBuilder, renderer Renderer) *Handler {
	return &Handler{
		log:      log,
		nav:      nav,
		renderer: renderer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.navbar.fragment"
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := h.renderer.RenderNavbar(w, h.nav.NavView(r)); err != nil {
		h.log.Error("failed to render navbar",
			sl.Op(op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
	}
}
