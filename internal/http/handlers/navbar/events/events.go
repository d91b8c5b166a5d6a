// Package events поток server-sent events об изменениях клиентского
// хранилища сессии. Вкладка получает событие "storage" и перечитывает
// панель навигации, так вход и выход в одной вкладке видны в остальных.
//
// Параметр logged_in сообщает состояние, с которым страница была отрисована.
// Если к открытию потока оно изменилось, первое событие уходит сразу.
package events

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

// NavProvider выдаёт смонтированную панель навигации запроса.
type NavProvider interface {
	MountedNavbar(r *http.Request) *navbar.Navbar
}

// Handler поток событий хранилища.
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
	const op = "handlers.navbar.events"
	log := h.log.With(
		sl.Op(op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	flusher, ok := w.(http.Flusher)
	if !ok {
		log.Error("streaming unsupported")
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}

	// поток живёт дольше WriteTimeout сервера
	_ = http.NewResponseController(w).SetWriteDeadline(time.Time{})

	n := h.nav.MountedNavbar(r)
	defer n.Unmount()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	send := func(loggedIn bool) bool {
		if _, err := fmt.Fprintf(w, "event: storage\ndata: {\"logged_in\":%t}\n\n", loggedIn); err != nil {
			log.Warn("failed to write storage event", sl.Err(err))
			return false
		}
		flusher.Flush()
		return true
	}

	updates := n.Updates()
	// первое значение даёт Mount. Страница передаёт отрисованное состояние
	// в logged_in, событие нужно только если оно успело устареть.
	select {
	case loggedIn := <-updates:
		rendered, err := strconv.ParseBool(r.URL.Query().Get("logged_in"))
		if err != nil || rendered != loggedIn {
			if !send(loggedIn) {
				return
			}
		}
	default:
	}

	for {
		select {
		case <-r.Context().Done():
			log.Debug("storage event stream closed")
			return
		case loggedIn := <-updates:
			if !send(loggedIn) {
				return
			}
		}
	}
}
