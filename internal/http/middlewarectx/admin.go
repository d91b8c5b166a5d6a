package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/crime-gazette/internal/clientstore"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/jwt"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// TokenParser проверяет токен из клиентского хранилища.
type TokenParser interface {
	ParseToken(tokenStr string) (*jwt.CustomClaims, error)
}

// AdminMiddleware пропускает к панели управления только сессии, в хранилище
// которых лежит валидный токен с ролью role. Остальных отправляет на /login.
func AdminMiddleware(log *slog.Logger, store clientstore.Store, parser TokenParser, role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.AdminMiddleware"
			log := log.With(
				sl.Op(op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			sid := SessionIDFrom(r.Context())
			token, ok, err := store.Get(r.Context(), sid, models.StorageKeyToken)
			if err != nil {
				log.Error("failed to read token", sl.Err(err))
			}
			if err != nil || !ok || token == "" {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}

			claims, err := parser.ParseToken(token)
			if err != nil {
				log.Warn("invalid or expired token", sl.Err(err))
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			if claims.Role != role {
				log.Warn("access denied", slog.String("user_id", claims.UserID), slog.String("role", claims.Role))
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), Admin, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
