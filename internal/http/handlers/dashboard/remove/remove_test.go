package remove

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// MockAPI реализует интерфейс dashboard.PlanAPI
type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) List(ctx context.Context) ([]models.SubscriptionPlan, error) {
	args := m.Called(ctx)
	plans, _ := args.Get(0).([]models.SubscriptionPlan)
	return plans, args.Error(1)
}

func (m *MockAPI) Create(ctx context.Context, payload models.PlanPayload) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, payload)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *MockAPI) Update(ctx context.Context, id string, payload models.PlanPayload) (*models.SubscriptionPlan, error) {
	args := m.Called(ctx, id, payload)
	plan, _ := args.Get(0).(*models.SubscriptionPlan)
	return plan, args.Error(1)
}

func (m *MockAPI) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestRemoveHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name           string
		id             string
		setupMock      func(m *MockAPI)
		expectedStatus int
		expectedBody   string
		expectedMsg    string
		expectedLists  int
	}{
		{
			name: "успешное удаление",
			id:   "p1",
			setupMock: func(m *MockAPI) {
				m.On("Delete", mock.Anything, "p1").Return(nil).Once()
			},
			expectedStatus: http.StatusSeeOther,
			expectedMsg:    dashboard.MsgDeleted,
			expectedLists:  2,
		},
		{
			name: "удаление неизвестного id без проверки",
			id:   "ghost",
			setupMock: func(m *MockAPI) {
				m.On("Delete", mock.Anything, "ghost").Return(errors.New("404")).Once()
			},
			expectedStatus: http.StatusSeeOther,
			expectedMsg:    dashboard.MsgDeleteError,
			expectedLists:  1,
		},
		{
			name:           "пустой id",
			setupMock:      func(_ *MockAPI) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid id"}`,
			expectedLists:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			api.On("List", mock.Anything).Return([]models.SubscriptionPlan{{ID: "p1"}}, nil)
			tt.setupMock(api)

			registry := dashboard.NewRegistry(func() *dashboard.Dashboard {
				return dashboard.New(logger, api, time.Minute)
			})
			defer registry.Close()

			ctx := context.WithValue(context.Background(), middlewarectx.SessionID, "sid-1")
			d := registry.Get(ctx, "sid-1")

			rctx := chi.NewRouteContext()
			rctx.URLParams.Add("id", tt.id)
			req := httptest.NewRequest(http.MethodPost, "/admin/subscriptions/"+tt.id+"/delete", nil)
			req = req.WithContext(context.WithValue(ctx, chi.RouteCtxKey, rctx))
			w := httptest.NewRecorder()

			New(logger, registry, "/admin/subscriptions").ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
			assert.Equal(t, tt.expectedMsg, d.Message())
			api.AssertNumberOfCalls(t, "List", tt.expectedLists)
			api.AssertExpectations(t)
		})
	}
}
