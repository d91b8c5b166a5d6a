// Package gazette собирает HTTP-приложение фронтенда: маршруты сайта,
// панель управления тарифными планами и служебные эндпоинты.
package gazette

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"golang.org/x/text/message/catalog"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/crime-gazette/internal/clientstore"
	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/auth/logout"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/cancel"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/open"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/remove"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/show"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/state"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/submit"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/health"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/navbar/events"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/navbar/fragment"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/navbar/language"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/navbar/menu"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/pages/page"
	"github.com/magabrotheeeer/crime-gazette/internal/http/layout"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/http/views"
)

// AdminRoute корень панели управления тарифными планами.
const AdminRoute = "/admin/subscriptions"

// Deps зависимости маршрутов.
type Deps struct {
	Store      clientstore.Store
	Catalog    catalog.Catalog
	Renderer   *views.Renderer
	Dashboards *dashboard.Registry
	// Tokens проверяет токен администратора, nil отключает проверку.
	Tokens    middlewarectx.TokenParser
	AdminRole string
	Limiter   *rate.Limiter
	Metrics   http.Handler
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, deps Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Logger,
		middleware.Recoverer,
		middlewarectx.SessionMiddleware(logger),
		middlewarectx.LocaleMiddleware(deps.Catalog),
	)

	lay := layout.New(logger, deps.Store, deps.Catalog)

	// Страницы сайта
	pages := []struct {
		route    string
		titleKey string
		opts     []page.Option
	}{
		{route: navbar.RouteHome, titleKey: "page.home"},
		{route: navbar.RouteArticles, titleKey: "page.news"},
		{route: navbar.RouteAbout, titleKey: "page.about"},
		{route: navbar.RouteContact, titleKey: "page.contact"},
		{route: navbar.RouteBlog, titleKey: "page.blog"},
		{route: navbar.RoutePremium, titleKey: "page.premium"},
		{route: navbar.RouteSignup, titleKey: "page.signup"},
		{route: navbar.RouteSubscribe, titleKey: "page.subscribe"},
		{route: navbar.RouteLogin, titleKey: "page.login", opts: []page.Option{page.WithLoginForm()}},
		{route: navbar.RouteProfile, titleKey: "page.profile"},
	}
	for _, p := range pages {
		r.Get(p.route, page.New(logger, lay, deps.Renderer, p.titleKey, p.opts...).ServeHTTP)
	}

	// Сессия и панель навигации
	r.Post(navbar.RouteLogin, login.New(logger, deps.Store).ServeHTTP)
	r.Post(navbar.RouteLogout, logout.New(logger, lay, deps.Dashboards).ServeHTTP)
	r.Post(navbar.RouteLanguage, language.New(logger, lay).ServeHTTP)
	r.Post(navbar.RouteMenu, menu.New(logger, lay).ServeHTTP)
	r.Get("/navbar", fragment.New(logger, lay, deps.Renderer).ServeHTTP)
	r.Get(navbar.RouteStorageEvent, events.New(logger, lay).ServeHTTP)

	// Панель управления планами
	r.Route(AdminRoute, func(r chi.Router) {
		if deps.Tokens != nil {
			r.Use(middlewarectx.AdminMiddleware(logger, deps.Store, deps.Tokens, deps.AdminRole))
		} else {
			logger.Warn("admin token check disabled: jwt secret is empty")
		}

		r.Get("/", show.New(logger, deps.Dashboards, lay, deps.Renderer).ServeHTTP)
		r.Get("/state", state.New(logger, deps.Dashboards).ServeHTTP)

		r.Group(func(r chi.Router) {
			if deps.Limiter != nil {
				r.Use(middlewarectx.RateLimitMiddleware(logger, deps.Limiter))
			}
			r.Post("/new", open.New(logger, deps.Dashboards, AdminRoute).ServeHTTP)
			r.Post("/{id}/edit", open.New(logger, deps.Dashboards, AdminRoute).ServeHTTP)
			r.Post("/cancel", cancel.New(logger, deps.Dashboards, AdminRoute).ServeHTTP)
			r.Post("/submit", submit.New(logger, deps.Dashboards, lay, deps.Renderer, AdminRoute).ServeHTTP)
			r.Post("/{id}/delete", remove.New(logger, deps.Dashboards, AdminRoute).ServeHTTP)
		})
	})

	if deps.Metrics != nil {
		r.Handle("/metrics", deps.Metrics)
	}
	r.Get("/health", health.New(logger).ServeHTTP)
}
