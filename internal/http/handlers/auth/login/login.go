// Package login принимает результат входа от внешнего сервиса авторизации:
// токен и идентификатор пользователя сохраняются в клиентское хранилище
// сессии, после чего все вкладки получают уведомление об изменении.
package login

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/http/response"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// Store клиентское хранилище сессии.
type Store interface {
	Set(ctx context.Context, sid, key, value string) error
}

// Handler сохраняет сессию пользователя.
type Handler struct {
	log   *slog.Logger
	store Store
}

// New создает новый Handler.
func New(log *slog.Logger, store Store) *Handler {
	return &Handler{
		log:   log,
		store: store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.login"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	session := models.AuthSession{
		Token:  strings.TrimSpace(r.PostFormValue("token")),
		UserID: strings.TrimSpace(r.PostFormValue("user_id")),
	}
	if !session.LoggedIn() {
		log.Warn("empty token")
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, response.Error("field token is a required field"))
		return
	}

	sid := middlewarectx.SessionIDFrom(r.Context())
	if err := h.store.Set(r.Context(), sid, models.StorageKeyToken, session.Token); err != nil {
		log.Error("failed to store token", sl.Err(err))
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not start session"))
		return
	}
	if session.UserID != "" {
		if err := h.store.Set(r.Context(), sid, models.StorageKeyUserID, session.UserID); err != nil {
			log.Error("failed to store user id", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("could not start session"))
			return
		}
	}

	log.Info("session started", slog.String("user_id", session.UserID))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
