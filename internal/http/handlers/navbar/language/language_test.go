package language

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crime-gazette/internal/clientstore"
	"github.com/magabrotheeeer/crime-gazette/internal/http/layout"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
)

func TestLanguageHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := locale.LoadCatalog()
	require.NoError(t, err)

	lay := layout.New(logger, clientstore.NewMemory(), cat)
	handler := middlewarectx.LocaleMiddleware(cat)(New(logger, lay))

	tests := []struct {
		name         string
		cookie       string
		referer      string
		wantLang     string
		wantLocation string
	}{
		{
			name:         "английский на арабский",
			referer:      "http://example.com/AboutUs",
			wantLang:     "ar",
			wantLocation: "/AboutUs",
		},
		{
			name:         "арабский на английский",
			cookie:       "ar",
			referer:      "http://example.com/Blog?page=2",
			wantLang:     "en",
			wantLocation: "/Blog?page=2",
		},
		{
			name:         "чужой referer",
			referer:      "http://evil.test/phish",
			wantLang:     "ar",
			wantLocation: "/",
		},
		{
			name:         "без referer",
			wantLang:     "ar",
			wantLocation: "/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "http://example.com/language", nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: locale.CookieName, Value: tt.cookie})
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, tt.wantLocation, w.Header().Get("Location"))

			var got string
			for _, c := range w.Result().Cookies() {
				if c.Name == locale.CookieName {
					got = c.Value
				}
			}
			assert.Equal(t, tt.wantLang, got)
		})
	}
}
