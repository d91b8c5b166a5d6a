package middlewarectx

import (
	"context"
	"net/http"

	"golang.org/x/text/message/catalog"

	"github.com/magabrotheeeer/crime-gazette/internal/locale"
)

// LocaleMiddleware создаёт для запроса контекст языка из cookie или
// Accept-Language и подписанный на него переводчик.
func LocaleMiddleware(cat catalog.Catalog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			langCtx := locale.NewContext(locale.FromRequest(r))
			tr := locale.NewTranslator(cat, langCtx)
			defer tr.Close()

			ctx := context.WithValue(r.Context(), Locale, langCtx)
			ctx = context.WithValue(ctx, Translator, tr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// LocaleFrom возвращает контекст языка запроса.
func LocaleFrom(ctx context.Context) *locale.Context {
	if c, ok := ctx.Value(Locale).(*locale.Context); ok {
		return c
	}
	return locale.NewContext(locale.Default)
}

// TranslatorFrom возвращает переводчик запроса.
func TranslatorFrom(ctx context.Context) (*locale.Translator, bool) {
	tr, ok := ctx.Value(Translator).(*locale.Translator)
	return tr, ok
}
