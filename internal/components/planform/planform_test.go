package planform

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

func samplePlan() *models.SubscriptionPlan {
	return &models.SubscriptionPlan{
		ID:          "p1",
		Title:       "Basic",
		Description: "Daily digest",
		Price:       "5$",
		Duration:    "1 month",
		Features:    []string{"ads free", "newsletter"},
	}
}

func TestSplitFeatures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"хвостовая запятая сохраняется", "a, b ,c,", []string{"a", "b", "c", ""}},
		{"один элемент", "  solo ", []string{"solo"}},
		{"пустая строка", "", []string{""}},
		{"пустые сегменты посередине", "a,,b", []string{"a", "", "b"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SplitFeatures(tt.in))
		})
	}
}

func TestJoinFeatures(t *testing.T) {
	assert.Equal(t, "ads free, newsletter", JoinFeatures([]string{"ads free", "newsletter"}))
	assert.Equal(t, "", JoinFeatures(nil))
}

func TestBind_CreateModeIsEmpty(t *testing.T) {
	f := New(nil)
	f.Bind(nil)

	assert.True(t, f.Open())
	assert.False(t, f.Editing())
	assert.Equal(t, models.FormDraft{}, f.Draft())
}

func TestBind_EditModeSeedsDraft(t *testing.T) {
	f := New(nil)
	f.Bind(samplePlan())

	assert.True(t, f.Editing())
	assert.Equal(t, models.FormDraft{
		Title:       "Basic",
		Description: "Daily digest",
		Price:       "5$",
		Duration:    "1 month",
		Features:    "ads free, newsletter",
	}, f.Draft())
}

func TestBind_SamePlanKeepsDraft(t *testing.T) {
	plan := samplePlan()
	f := New(nil)
	f.Bind(plan)
	f.SetDraft(models.FormDraft{Title: "typed"})

	f.Bind(plan)
	assert.Equal(t, "typed", f.Draft().Title)
}

func TestBind_OtherPlanResetsDraft(t *testing.T) {
	f := New(nil)
	f.Bind(samplePlan())
	f.SetDraft(models.FormDraft{Title: "typed"})

	f.Bind(nil)
	assert.Equal(t, models.FormDraft{}, f.Draft())
	assert.False(t, f.Editing())
}

func TestClose_DiscardsDraft(t *testing.T) {
	plan := samplePlan()
	f := New(nil)
	f.Bind(plan)
	f.SetDraft(models.FormDraft{Title: "typed"})

	f.Close()
	assert.False(t, f.Open())
	assert.Equal(t, models.FormDraft{}, f.Draft())

	f.Bind(plan)
	assert.Equal(t, "Basic", f.Draft().Title)
}

func TestSubmit_AssemblesPayload(t *testing.T) {
	var got models.PlanPayload
	f := New(func(_ context.Context, p models.PlanPayload) error {
		got = p
		return nil
	})
	f.Bind(nil)
	f.SetDraft(models.FormDraft{
		Title:       "Pro",
		Description: "Everything",
		Price:       "10$",
		Duration:    "1 year",
		Features:    "a, b ,c,",
	})

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, models.PlanPayload{
		Title:       "Pro",
		Description: "Everything",
		Price:       "10$",
		Duration:    "1 year",
		Features:    []string{"a", "b", "c", ""},
	}, got)
}

func TestSubmit_PropagatesCallbackError(t *testing.T) {
	boom := errors.New("boom")
	f := New(func(context.Context, models.PlanPayload) error { return boom })
	f.Bind(nil)

	assert.ErrorIs(t, f.Submit(context.Background()), boom)
}

func TestValidate_RequiresAllFields(t *testing.T) {
	f := New(nil)
	f.Bind(nil)
	f.SetDraft(models.FormDraft{Title: "Pro", Price: "10$"})

	err := f.Validate()
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	assert.ElementsMatch(t, []string{"Description", "Duration", "Features"}, fields)

	f.Bind(samplePlan())
	assert.NoError(t, f.Validate())
}
