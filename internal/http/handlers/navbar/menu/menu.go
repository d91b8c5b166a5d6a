// Package menu открывает и закрывает мобильное меню навигации.
package menu

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/navbar/language"
	"github.com/magabrotheeeer/crime-gazette/internal/http/layout"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// NavProvider выдаёт панель навигации запроса.
type NavProvider interface {
	Navbar(r *http.Request) *navbar.Navbar
}

// Handler переключает мобильное меню.
type Handler struct {
	log *slog.Logger
	nav NavProvider
}

// New создает новый Handler.
func New(log *slog.Logger, nav NavProvider) *Handler {
	return &Handler{
		log: log,
		nav: nav,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.navbar.menu"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	open := h.nav.Navbar(r).ToggleMobileMenu()
	value, maxAge := "closed", -1
	if open {
		value, maxAge = "open", 0
	}
	http.SetCookie(w, &http.Cookie{
		Name:     layout.MenuCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})

	log.Debug("mobile menu toggled", slog.Bool("open", open))
	http.Redirect(w, r, language.BackTarget(r), http.StatusSeeOther)
}
