// Package logout реализует выход: очистку клиентского хранилища через
// панель навигации, закрытие панели управления сессии и переход на главную.
package logout

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// NavProvider выдаёт панель навигации запроса.
type NavProvider interface {
	Navbar(r *http.Request) *navbar.Navbar
}

// Dashboards реестр панелей управления по сессиям.
type Dashboards interface {
	Drop(sid string)
}

// Handler выполняет выход пользователя.
type Handler struct {
	log        *slog.Logger
	nav        NavProvider
	dashboards Dashboards
}

// New создает новый Handler.
func New(log *slog.Logger, nav NavProvider, dashboards Dashboards) *Handler {
	return &Handler{
		log:        log,
		nav:        nav,
		dashboards: dashboards,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.logout"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	target := h.nav.Navbar(r).HandleLogout(r.Context())
	if h.dashboards != nil {
		h.dashboards.Drop(middlewarectx.SessionIDFrom(r.Context()))
	}

	log.Info("logged out")
	http.Redirect(w, r, target, http.StatusSeeOther)
}
