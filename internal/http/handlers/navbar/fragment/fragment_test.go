package fragment

import (
	"context"
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
	"github.com/magabrotheeeer/crime-gazette/internal/http/views"
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

func TestFragmentHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cat, err := locale.LoadCatalog()
	require.NoError(t, err)
	renderer, err := views.New()
	require.NoError(t, err)

	store := clientstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), "logged-in", models.StorageKeyToken, "tkn"))

	handler := middlewarectx.LocaleMiddleware(cat)(New(logger, layout.New(logger, store, cat), renderer))

	tests := []struct {
		name    string
		sid     string
		want    []string
		notWant []string
	}{
		{
			name:    "пользователь вошёл",
			sid:     "logged-in",
			want:    []string{`href="/userprofile"`, `action="/logout"`},
			notWant: []string{`href="/signup"`, `href="/login"`},
		},
		{
			name:    "гость",
			sid:     "anonymous",
			want:    []string{`href="/signup"`, `href="/subscribe"`, `href="/login"`},
			notWant: []string{`action="/logout"`, `href="/userprofile"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/navbar", nil)
			req = req.WithContext(context.WithValue(req.Context(), middlewarectx.SessionID, tt.sid))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			body := w.Body.String()
			assert.NotContains(t, body, "<html")
			for _, s := range tt.want {
				assert.Contains(t, body, s)
			}
			for _, s := range tt.notWant {
				assert.NotContains(t, body, s)
			}
		})
	}
}
