// Package cancel закрывает форму плана без сохранения.
package cancel

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// Dashboards реестр панелей управления по сессиям.
type Dashboards interface {
	Get(ctx context.Context, sid string) *dashboard.Dashboard
}

// Handler закрывает форму.
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
	const op = "handlers.dashboard.cancel"
	h.dashboards.Get(r.Context(), middlewarectx.SessionIDFrom(r.Context())).Cancel()

	h.log.Debug("form cancelled",
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)
	http.Redirect(w, r, h.back, http.StatusSeeOther)
}
