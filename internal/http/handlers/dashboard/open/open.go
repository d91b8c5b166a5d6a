// Package open открывает форму плана: пустую для добавления
// или заполненную для редактирования плана из списка.
package open

import (
	"context"
	"errors"
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

// Handler открывает форму.
type Handler struct {
	log        *slog.Logger
	dashboards Dashboards
	back       string
}

// New создает новый Handler. После открытия формы клиент уходит на back.
func New(log *slog.Logger, dashboards Dashboards, back string) *Handler {
	return &Handler{
		log:        log,
		dashboards: dashboards,
		back:       back,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.open"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	d := h.dashboards.Get(r.Context(), middlewarectx.SessionIDFrom(r.Context()))

	id := chi.URLParam(r, "id")
	if id == "" {
		d.OpenCreate()
		log.Debug("create form opened")
		http.Redirect(w, r, h.back, http.StatusSeeOther)
		return
	}

	if err := d.OpenEdit(id); err != nil {
		if errors.Is(err, dashboard.ErrPlanNotFound) {
			log.Warn("plan not found", slog.String("id", id))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("plan not found"))
			return
		}
		log.Error("failed to open edit form", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("failed to open form"))
		return
	}

	log.Debug("edit form opened", slog.String("id", id))
	http.Redirect(w, r, h.back, http.StatusSeeOther)
}
