package open

import (
	"context"
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

func TestOpenHandler(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	plans := []models.SubscriptionPlan{{
		ID: "p1", Title: "Basic", Description: "d", Price: "5$", Duration: "1 month", Features: []string{"a", "b"},
	}}

	tests := []struct {
		name           string
		id             string
		expectedStatus int
		expectedBody   string
		expectedMode   string
		expectedDraft  *models.FormDraft
	}{
		{
			name:           "форма добавления",
			expectedStatus: http.StatusSeeOther,
			expectedMode:   "formOpen",
			expectedDraft:  &models.FormDraft{},
		},
		{
			name:           "форма редактирования",
			id:             "p1",
			expectedStatus: http.StatusSeeOther,
			expectedMode:   "formOpen",
			expectedDraft: &models.FormDraft{
				Title: "Basic", Description: "d", Price: "5$", Duration: "1 month", Features: "a, b",
			},
		},
		{
			name:           "неизвестный план",
			id:             "missing",
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"plan not found"}`,
			expectedMode:   "list",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := new(MockAPI)
			api.On("List", mock.Anything).Return(plans, nil)

			registry := dashboard.NewRegistry(func() *dashboard.Dashboard {
				return dashboard.New(logger, api, time.Minute)
			})
			defer registry.Close()

			handler := New(logger, registry, "/admin/subscriptions")

			rctx := chi.NewRouteContext()
			if tt.id != "" {
				rctx.URLParams.Add("id", tt.id)
			}
			ctx := context.WithValue(context.Background(), middlewarectx.SessionID, "sid-1")
			ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)
			req := httptest.NewRequest(http.MethodPost, "/admin/subscriptions/new", nil).WithContext(ctx)
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)

			st := registry.Get(ctx, "sid-1").Snapshot()
			assert.Equal(t, tt.expectedMode, st.ModeName)
			assert.Equal(t, tt.expectedDraft, st.Draft)
			api.AssertNumberOfCalls(t, "List", 1)
		})
	}
}
