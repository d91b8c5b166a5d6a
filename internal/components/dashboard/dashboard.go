// Package dashboard панель управления тарифными планами.
//
// Dashboard это конечный автомат над режимом отображения (список или открытая
// форма) и редактируемым планом. После любого успешного изменения список
// перечитывается целиком через RefreshList, локальных слияний нет.
// Ошибки запросов не откатываются и не повторяются: они превращаются
// в сообщение для пользователя и пишутся в лог.
//
// Запросы не отменяются: если медленный ответ придёт позже нового,
// он перезапишет список.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/crime-gazette/internal/components/planform"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// Сообщения для пользователя.
const (
	MsgFetchError     = "Error fetching subscription cards"
	MsgCreated        = "Subscription plan created successfully!"
	MsgCreateError    = "Error creating subscription plan"
	MsgUpdated        = "Subscription plan updated successfully!"
	MsgUpdateError    = "Error updating subscription plan"
	MsgDeleted        = "Subscription plan deleted successfully!"
	MsgDeleteError    = "Error deleting subscription plan"
	DefaultMessageTTL = 3 * time.Second
)

// ErrPlanNotFound в кэшированном списке нет плана с таким id.
var ErrPlanNotFound = errors.New("plan not found")

// ViewMode режим отображения панели.
type ViewMode int

const (
	// ViewList список карточек.
	ViewList ViewMode = iota
	// ViewForm открыта форма добавления или редактирования.
	ViewForm
)

func (m ViewMode) String() string {
	if m == ViewForm {
		return "formOpen"
	}
	return "list"
}

// PlanAPI удалённый сервис планов.
type PlanAPI interface {
	List(ctx context.Context) ([]models.SubscriptionPlan, error)
	Create(ctx context.Context, payload models.PlanPayload) (*models.SubscriptionPlan, error)
	Update(ctx context.Context, id string, payload models.PlanPayload) (*models.SubscriptionPlan, error)
	Delete(ctx context.Context, id string) error
}

// Dashboard состояние панели одной браузерной сессии.
//
// Панель находится в режиме списка или открытой формы. После любого
// изменения на сервисе планов список перечитывается целиком, локальные
// правки не делаются. Сообщение о результате хранит Flash.
type Dashboard struct {
	log   *slog.Logger
	api   PlanAPI
	flash *Flash
	form  *planform.Form

	mu      sync.Mutex
	plans   []models.SubscriptionPlan
	mode    ViewMode
	editing *models.SubscriptionPlan
}

// New создаёт панель в режиме списка. Сообщения живут messageTTL.
func New(log *slog.Logger, api PlanAPI, messageTTL time.Duration) *Dashboard {
	if messageTTL <= 0 {
		messageTTL = DefaultMessageTTL
	}
	d := &Dashboard{
		log:   log,
		api:   api,
		flash: NewFlash(messageTTL),
		plans: []models.SubscriptionPlan{},
	}
	d.form = planform.New(d.handleFormSubmit)
	return d
}

// Mount загружает список при первом показе панели.
func (d *Dashboard) Mount(ctx context.Context) {
	_ = d.RefreshList(ctx)
}

// Close отменяет таймер сообщения.
func (d *Dashboard) Close() {
	d.flash.Stop()
}

// RefreshList перечитывает список целиком. При ошибке прежний список
// остаётся, выставляется сообщение.
func (d *Dashboard) RefreshList(ctx context.Context) error {
	const op = "components.dashboard.RefreshList"
	plans, err := d.api.List(ctx)
	if err != nil {
		d.log.Error("error fetching subscription cards", sl.Op(op), sl.Err(err))
		d.flash.Set(MsgFetchError)
		return err
	}

	d.mu.Lock()
	d.plans = plans
	d.mu.Unlock()
	return nil
}

// OpenCreate открывает пустую форму.
func (d *Dashboard) OpenCreate() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mode = ViewForm
	d.editing = nil
	d.form.Bind(nil)
}

// OpenEdit открывает форму для плана из кэшированного списка.
func (d *Dashboard) OpenEdit(id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i := range d.plans {
		if d.plans[i].ID == id {
			d.mode = ViewForm
			d.editing = &d.plans[i]
			d.form.Bind(d.editing)
			return nil
		}
	}
	return ErrPlanNotFound
}

// Cancel закрывает форму и отбрасывает черновик.
func (d *Dashboard) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closeFormLocked()
}

// Submit передаёт введённые значения форме и отправляет её.
// Вызывающий проверяет обязательные поля через Form().Validate до вызова.
func (d *Dashboard) Submit(ctx context.Context, draft models.FormDraft) error {
	d.form.SetDraft(draft)
	return d.form.Submit(ctx)
}

func (d *Dashboard) handleFormSubmit(ctx context.Context, payload models.PlanPayload) error {
	const op = "components.dashboard.handleFormSubmit"
	log := d.log.With(sl.Op(op))

	d.mu.Lock()
	editing := d.editing
	d.mu.Unlock()

	if editing != nil {
		if _, err := d.api.Update(ctx, editing.ID, payload); err != nil {
			log.Error("error updating subscription card", slog.String("id", editing.ID), sl.Err(err))
			d.flash.Set(MsgUpdateError)
			return err
		}
		d.flash.Set(MsgUpdated)
	} else {
		if _, err := d.api.Create(ctx, payload); err != nil {
			log.Error("error creating subscription card", sl.Err(err))
			d.flash.Set(MsgCreateError)
			return err
		}
		d.flash.Set(MsgCreated)
	}

	d.mu.Lock()
	d.closeFormLocked()
	d.mu.Unlock()

	_ = d.RefreshList(ctx)
	return nil
}

// Delete удаляет план на сервисе. Наличие id в списке не проверяется.
// Список перечитывается только после успешного удаления.
func (d *Dashboard) Delete(ctx context.Context, id string) error {
	const op = "components.dashboard.Delete"
	if err := d.api.Delete(ctx, id); err != nil {
		d.log.Error("error deleting subscription card", sl.Op(op), slog.String("id", id), sl.Err(err))
		d.flash.Set(MsgDeleteError)
		return err
	}
	d.flash.Set(MsgDeleted)
	_ = d.RefreshList(ctx)
	return nil
}

func (d *Dashboard) closeFormLocked() {
	d.mode = ViewList
	d.editing = nil
	d.form.Close()
}

// Form возвращает форму панели.
func (d *Dashboard) Form() *planform.Form {
	return d.form
}

// Message текущее сообщение для пользователя.
func (d *Dashboard) Message() string {
	return d.flash.Text()
}

// State снимок состояния панели для шаблона и JSON-ответа /state.
//
// Снимок не связан с панелью: Plans и Draft скопированы, изменения панели
// после Snapshot в нём не видны. MessageTTLMillis содержит время до очистки
// сообщения в миллисекундах, по нему страница скрывает сообщение сама.
// Draft заполнен только в режиме формы.
type State struct {
	Mode             ViewMode                  `json:"-"`
	ModeName         string                    `json:"view_mode"`
	EditingID        string                    `json:"editing_id,omitempty"`
	Plans            []models.SubscriptionPlan `json:"plans"`
	Message          string                    `json:"message,omitempty"`
	MessageTTLMillis int64                     `json:"message_ttl_ms,omitempty"`
	Draft            *models.FormDraft         `json:"draft,omitempty"`
}

// Snapshot возвращает копию текущего состояния.
func (d *Dashboard) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	plans := make([]models.SubscriptionPlan, len(d.plans))
	copy(plans, d.plans)

	msg, left := d.flash.Remaining()
	st := State{
		Mode:             d.mode,
		ModeName:         d.mode.String(),
		Plans:            plans,
		Message:          msg,
		MessageTTLMillis: left.Milliseconds(),
	}
	if d.editing != nil {
		st.EditingID = d.editing.ID
	}
	if d.mode == ViewForm {
		draft := d.form.Draft()
		st.Draft = &draft
	}
	return st
}
