// Package models содержит доменные структуры фронтенда: тарифный план,
// тело запроса к REST-сервису планов и черновик формы редактирования.
package models

// SubscriptionPlan представляет тарифный план в том виде, в каком его отдаёт
// REST-сервис. Идентификатор непрозрачен и приходит в поле "_id".
type SubscriptionPlan struct {
	ID          string   `json:"_id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
}

// PlanPayload тело POST/PUT запроса на создание или изменение плана.
type PlanPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
}

// FormDraft черновик формы. Все поля редактируются как строки,
// список возможностей хранится одной строкой через запятую.
type FormDraft struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Duration    string `json:"duration" validate:"required"`
	Features    string `json:"features" validate:"required"`
}
