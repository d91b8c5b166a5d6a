// Package language переключает язык интерфейса en/ar. Новый язык
// сохраняется в cookie, запрос возвращается на страницу, с которой пришёл.
package language

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
)

// NavProvider выдаёт панель навигации запроса.
type NavProvider interface {
	Navbar(r *http.Request) *navbar.Navbar
}

// Handler переключает язык.
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
	const op = "handlers.navbar.language"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	unsubscribe := middlewarectx.LocaleFrom(r.Context()).Subscribe(func(lang locale.Language) {
		locale.SetCookie(w, lang)
	})
	lang := h.nav.Navbar(r).ChangeLanguage()
	unsubscribe()

	log.Info("language changed", slog.String("lang", lang.String()))
	http.Redirect(w, r, BackTarget(r), http.StatusSeeOther)
}

// BackTarget возвращает путь страницы из Referer того же хоста или "/".
func BackTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/"
	}
	target := ref.Path
	if ref.RawQuery != "" {
		target += "?" + ref.RawQuery
	}
	return target
}
