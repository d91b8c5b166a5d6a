package login

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// MockStore реализует интерфейс login.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Set(ctx context.Context, sid, key, value string) error {
	return m.Called(ctx, sid, key, value).Error(0)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestLoginHandler_ServeHTTP(t *testing.T) {
	const sid = "sid-1"

	tests := []struct {
		name           string
		form           url.Values
		setupMock      func(m *MockStore)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "успешный вход",
			form: url.Values{"token": {" tkn "}, "user_id": {"42"}},
			setupMock: func(m *MockStore) {
				m.On("Set", mock.Anything, sid, models.StorageKeyToken, "tkn").Return(nil).Once()
				m.On("Set", mock.Anything, sid, models.StorageKeyUserID, "42").Return(nil).Once()
			},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name: "вход без user_id",
			form: url.Values{"token": {"tkn"}},
			setupMock: func(m *MockStore) {
				m.On("Set", mock.Anything, sid, models.StorageKeyToken, "tkn").Return(nil).Once()
			},
			expectedStatus: http.StatusSeeOther,
		},
		{
			name:           "пустой токен",
			form:           url.Values{"token": {"  "}, "user_id": {"42"}},
			setupMock:      func(_ *MockStore) {},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   `{"status":"Error","error":"field token is a required field"}`,
		},
		{
			name: "ошибка хранилища",
			form: url.Values{"token": {"tkn"}},
			setupMock: func(m *MockStore) {
				m.On("Set", mock.Anything, sid, models.StorageKeyToken, "tkn").Return(errors.New("redis down")).Once()
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"could not start session"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(MockStore)
			tt.setupMock(store)
			handler := New(newNoopLogger(), store)

			req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			ctx := context.WithValue(req.Context(), middleware.RequestIDKey, "req-1")
			ctx = context.WithValue(ctx, middlewarectx.SessionID, sid)
			req = req.WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusSeeOther {
				assert.Equal(t, "/", w.Header().Get("Location"))
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
			store.AssertExpectations(t)
		})
	}
}
