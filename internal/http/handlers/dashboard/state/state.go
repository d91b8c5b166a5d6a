// Package state отдаёт снимок состояния панели управления в JSON.
package state

import (
	"context"
	"log/slog"
	"net/http"

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

// Handler отдаёт состояние панели.
type Handler struct {
	log        *slog.Logger
	dashboards Dashboards
}

// New создает новый Handler.
func New(log *slog.Logger, dashboards Dashboards) *Handler {
	return &Handler{
		log:        log,
		dashboards: dashboards,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.state"
	st := h.dashboards.Get(r.Context(), middlewarectx.SessionIDFrom(r.Context())).Snapshot()

	h.log.Debug("dashboard state",
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
		slog.String("view_mode", st.ModeName),
		slog.Int("plans", len(st.Plans)),
	)
	render.JSON(w, r, response.OKWithData(st))
}
