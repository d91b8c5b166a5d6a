// Package planform форма создания и редактирования тарифного плана.
//
// Форма держит черновик (models.FormDraft) и переиспользуется между циклами
// добавления и редактирования: при смене привязанного плана черновик
// сбрасывается. Отправка собирает models.PlanPayload и передаёт его
// обработчику, сетевой вызов и закрытие формы остаются на вызывающей стороне.
package planform

import (
	"context"
	"strings"
	"sync"

	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// SubmitFunc получает собранный план при отправке формы.
type SubmitFunc func(ctx context.Context, payload models.PlanPayload) error

// Form черновик формы плана в режиме создания или редактирования.
//
// Bind открывает форму. Повторный Bind того же плана сохраняет введённые
// значения, смена плана заполняет черновик заново. Validate проверяет
// обязательные поля, Submit передаёт полезную нагрузку в onSubmit.
// Закрывает форму вызывающий.
type Form struct {
	mu       sync.Mutex
	open     bool
	plan     *models.SubscriptionPlan
	draft    models.FormDraft
	onSubmit SubmitFunc
	validate *validator.Validate
}

// New создаёт форму в режиме создания.
func New(onSubmit SubmitFunc) *Form {
	return &Form{
		onSubmit: onSubmit,
		validate: validator.New(),
	}
}

// Bind открывает форму для плана (nil для режима создания).
// У открытой формы черновик сбрасывается только при смене плана.
func (f *Form) Bind(plan *models.SubscriptionPlan) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.open && f.plan == plan {
		return
	}
	f.open = true
	f.plan = plan
	f.draft = DraftFrom(plan)
}

// Close закрывает форму и отбрасывает черновик.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.open = false
	f.plan = nil
	f.draft = models.FormDraft{}
}

// Open сообщает, открыта ли форма.
func (f *Form) Open() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.open
}

// Editing сообщает, редактирует ли форма существующий план.
func (f *Form) Editing() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.plan != nil
}

// Draft возвращает копию черновика.
func (f *Form) Draft() models.FormDraft {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft
}

// SetDraft заменяет черновик введёнными пользователем значениями.
func (f *Form) SetDraft(d models.FormDraft) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft = d
}

// Validate проверяет, что все поля черновика заполнены.
// Проверка соответствует атрибуту required у полей HTML-формы.
func (f *Form) Validate() error {
	d := f.Draft()
	return f.validate.Struct(d)
}

// Submit собирает план из черновика и вызывает обработчик отправки.
func (f *Form) Submit(ctx context.Context) error {
	payload := PayloadFrom(f.Draft())
	if f.onSubmit == nil {
		return nil
	}
	return f.onSubmit(ctx, payload)
}

// DraftFrom заполняет черновик из плана, nil даёт пустой черновик.
func DraftFrom(plan *models.SubscriptionPlan) models.FormDraft {
	if plan == nil {
		return models.FormDraft{}
	}
	return models.FormDraft{
		Title:       plan.Title,
		Description: plan.Description,
		Price:       plan.Price,
		Duration:    plan.Duration,
		Features:    JoinFeatures(plan.Features),
	}
}

// PayloadFrom собирает тело запроса из черновика.
func PayloadFrom(d models.FormDraft) models.PlanPayload {
	return models.PlanPayload{
		Title:       d.Title,
		Description: d.Description,
		Price:       d.Price,
		Duration:    d.Duration,
		Features:    SplitFeatures(d.Features),
	}
}

// JoinFeatures склеивает возможности для редактирования в одной строке.
func JoinFeatures(features []string) string {
	return strings.Join(features, ", ")
}

// SplitFeatures делит строку по запятым и обрезает пробелы.
// Пустые сегменты сохраняются: "a, b ,c," даёт ["a" "b" "c" ""].
func SplitFeatures(s string) []string {
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
