// Package show отдаёт страницу управления тарифными планами.
package show

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/http/views"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// Заголовки формы.
const (
	TitleEdit   = "Edit Subscription Plan"
	TitleCreate = "Add New Subscription Plan"
	LabelUpdate = "Update"
	LabelAdd    = "Add"
)

// Dashboards реестр панелей управления по сессиям.
type Dashboards interface {
	Get(ctx context.Context, sid string) *dashboard.Dashboard
}

// NavBuilder строит панель навигации для запроса.
type NavBuilder interface {
	NavView(r *http.Request) navbar.View
}

// Renderer выполняет шаблон страницы.
type Renderer interface {
	Render(w io.Writer, name string, data any) error
}

// Handler отдаёт страницу панели.
type Handler struct {
	log        *slog.Logger
	dashboards Dashboards
	nav        NavBuilder
	renderer   Renderer
}

// New создает новый Handler.
func New(log *slog.Logger, dashboards Dashboards, nav NavBuilder, renderer Renderer) *Handler {
	return &Handler{
		log:        log,
		dashboards: dashboards,
		nav:        nav,
		renderer:   renderer,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.show"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	d := h.dashboards.Get(r.Context(), middlewarectx.SessionIDFrom(r.Context()))
	if err := Page(w, h.renderer, Data(h.nav.NavView(r), d.Snapshot(), ""), http.StatusOK); err != nil {
		log.Error("failed to render dashboard", sl.Err(err))
	}
}

// Data собирает данные шаблона из снимка состояния панели.
func Data(nav navbar.View, st dashboard.State, formErr string) views.DashboardData {
	data := views.DashboardData{
		Nav:         nav,
		State:       st,
		Editing:     st.EditingID != "",
		FormTitle:   TitleCreate,
		SubmitLabel: LabelAdd,
		FormError:   formErr,
	}
	if data.Editing {
		data.FormTitle = TitleEdit
		data.SubmitLabel = LabelUpdate
	}
	if st.Draft != nil {
		data.Draft = *st.Draft
	}
	return data
}

// Page отрисовывает страницу панели с кодом status.
func Page(w http.ResponseWriter, renderer Renderer, data views.DashboardData, status int) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	return renderer.Render(w, views.PageDashboard, data)
}
