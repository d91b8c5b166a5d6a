// Package submit отправляет форму плана. Обычная HTML-форма после успешной
// отправки уходит на страницу панели, JSON-клиент получает снимок состояния.
package submit

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/http/handlers/dashboard/show"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/http/response"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// Dashboards реестр панелей управления по сессиям.
type Dashboards interface {
	Get(ctx context.Context, sid string) *dashboard.Dashboard
}

// Handler отправляет форму.
type Handler struct {
	log        *slog.Logger
	dashboards Dashboards
	nav        show.NavBuilder
	renderer   show.Renderer
	back       string
}

// New создает новый Handler.
func New(log *slog.Logger, dashboards Dashboards, nav show.NavBuilder, renderer show.Renderer, back string) *Handler {
	return &Handler{
		log:        log,
		dashboards: dashboards,
		nav:        nav,
		renderer:   renderer,
		back:       back,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.dashboard.submit"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	asJSON := render.GetRequestContentType(r) == render.ContentTypeJSON

	draft, err := decodeDraft(r, asJSON)
	if err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	d := h.dashboards.Get(r.Context(), middlewarectx.SessionIDFrom(r.Context()))
	form := d.Form()
	if !form.Open() {
		log.Warn("submit without open form")
		if asJSON {
			render.Status(r, http.StatusConflict)
			render.JSON(w, r, response.Error("form is not open"))
			return
		}
		http.Redirect(w, r, h.back, http.StatusSeeOther)
		return
	}

	form.SetDraft(draft)
	if err := form.Validate(); err != nil {
		var validateErr validator.ValidationErrors
		if !errors.As(err, &validateErr) {
			log.Error("failed to validate draft", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to validate form"))
			return
		}
		log.Warn("invalid draft", sl.Err(err))
		if asJSON {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}
		data := show.Data(h.nav.NavView(r), d.Snapshot(), response.ValidationMessage(validateErr))
		if err := show.Page(w, h.renderer, data, http.StatusUnprocessableEntity); err != nil {
			log.Error("failed to render dashboard", sl.Err(err))
		}
		return
	}

	// ошибка сервиса уже стала сообщением панели, форма остаётся открытой
	submitErr := d.Submit(r.Context(), draft)
	if submitErr == nil {
		log.Info("plan submitted")
	}

	if asJSON {
		if submitErr != nil {
			render.Status(r, http.StatusBadGateway)
		}
		render.JSON(w, r, response.OKWithData(d.Snapshot()))
		return
	}
	http.Redirect(w, r, h.back, http.StatusSeeOther)
}

func decodeDraft(r *http.Request, asJSON bool) (models.FormDraft, error) {
	var draft models.FormDraft
	if asJSON {
		err := render.DecodeJSON(r.Body, &draft)
		return draft, err
	}
	if err := r.ParseForm(); err != nil {
		return draft, err
	}
	// значения не обрезаются: пробельная строка проходит проверку required,
	// как и атрибут required в браузере
	draft = models.FormDraft{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		Price:       r.PostFormValue("price"),
		Duration:    r.PostFormValue("duration"),
		Features:    r.PostFormValue("features"),
	}
	return draft, nil
}
