// Package clientstore реализует клиентское хранилище браузерной сессии:
// пары ключ-значение (token, user_id), привязанные к идентификатору сессии,
// и уведомления об их изменении для всех вкладок той же сессии.
//
// Есть две реализации: Memory для одного процесса и Redis, которая
// разделяет данные и уведомления между несколькими экземплярами фронтенда.
package clientstore

import (
	"context"
	"errors"
)

// ErrEmptySession возвращается, когда операция вызвана без идентификатора сессии.
var ErrEmptySession = errors.New("empty session id")

// Event уведомление об изменении хранилища. Получатель должен
// перечитать интересующие его ключи, Key носит справочный характер.
type Event struct {
	SessionID string `json:"sid"`
	Key       string `json:"key"`
}

// Store описывает клиентское хранилище: строковые ключи в пределах сессии.
//
// Каждое изменение уведомляет всех подписчиков Watch этой сессии, включая
// автора изменения. Пустой sid отклоняется с ErrEmptySession.
type Store interface {
	// Get возвращает значение ключа и признак его наличия.
	Get(ctx context.Context, sid, key string) (string, bool, error)
	// Set сохраняет значение и рассылает уведомление.
	Set(ctx context.Context, sid, key, value string) error
	// Remove удаляет ключи и рассылает уведомление по каждому.
	Remove(ctx context.Context, sid string, keys ...string) error
	// Watch подписывает на изменения сессии. Канал закрывается после отмены ctx.
	Watch(ctx context.Context, sid string) (<-chan Event, error)
}
