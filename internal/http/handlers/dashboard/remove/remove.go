// Package remove удаляет тарифный план.
package remove

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/http/response"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// Dashboards реестр панелей управления по сессиям.
type Dashboards interface {
	Get(ctx context.Context, sid string) *dashboard.Dashboard
}

// Handler удаляет план.
type Handler struct {
	log        *slog.Logger
	dashboards Dashboards
	back       string
}

// New создает новый Handler.
func New(log *slog.Logger, dashboards Dashboards, back string) *Handler {
	return &Handler{
		log:        log,
		dashboards: dashboards,
		back:       back,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.remove"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	id := chi.URLParam(r, "id")
	if id == "" {
		log.Warn("empty id")
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid id"))
		return
	}

	d := h.dashboards.Get(r.Context(), middlewarectx.SessionIDFrom(r.Context()))
	// ошибка уже превращена в сообщение панели и записана в лог
	if err := d.Delete(r.Context(), id); err == nil {
		log.Info("plan deleted", slog.String("id", id))
	}
	http.Redirect(w, r, h.back, http.StatusSeeOther)
}
