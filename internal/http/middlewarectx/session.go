// Package middlewarectx содержит HTTP middleware фронтенда и ключи,
// которые они кладут в контекст запроса: идентификатор браузерной сессии,
// контекст языка с переводчиком и claims администратора.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionID ключ идентификатора браузерной сессии
	SessionID Key = "session_id"
	// Locale ключ контекста языка
	Locale Key = "locale"
	// Translator ключ переводчика
	Translator Key = "translator"
	// Admin ключ claims администратора
	Admin Key = "admin"
)

// SessionCookieName cookie с идентификатором браузерной сессии.
const SessionCookieName = "gazette_sid"

// SessionMiddleware выдаёт браузеру идентификатор сессии, если его ещё нет,
// и кладёт его в контекст. Все вкладки одного браузера делят этот идентификатор.
func SessionMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sid := ""
			if c, err := r.Cookie(SessionCookieName); err == nil {
				if _, err := uuid.Parse(c.Value); err == nil {
					sid = c.Value
				}
			}
			if sid == "" {
				sid = uuid.NewString()
				log.Debug("new browser session", slog.String("sid", sid))
				http.SetCookie(w, &http.Cookie{
					Name:     SessionCookieName,
					Value:    sid,
					Path:     "/",
					MaxAge:   int((365 * 24 * time.Hour).Seconds()),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}
			ctx := context.WithValue(r.Context(), SessionID, sid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SessionIDFrom возвращает идентификатор сессии из контекста.
func SessionIDFrom(ctx context.Context) string {
	sid, _ := ctx.Value(SessionID).(string)
	return sid
}
