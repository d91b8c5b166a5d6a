package clientstore

import (
	"context"
	"fmt"
	"sync"
)

const watchBuffer = 8

// Memory хранит данные сессий в памяти процесса.
type Memory struct {
	mu       sync.RWMutex
	data     map[string]map[string]string
	watchers map[string]map[uint64]chan Event
	nextID   uint64
}

// NewMemory создаёт пустое хранилище в памяти.
func NewMemory() *Memory {
	return &Memory{
		data:     make(map[string]map[string]string),
		watchers: make(map[string]map[uint64]chan Event),
	}
}

// Get возвращает значение ключа сессии.
func (m *Memory) Get(_ context.Context, sid, key string) (string, bool, error) {
	if sid == "" {
		return "", false, fmt.Errorf("clientstore.Memory.Get: %w", ErrEmptySession)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[sid][key]
	return v, ok, nil
}

// Set сохраняет значение ключа сессии.
func (m *Memory) Set(_ context.Context, sid, key, value string) error {
	if sid == "" {
		return fmt.Errorf("clientstore.Memory.Set: %w", ErrEmptySession)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	values, ok := m.data[sid]
	if !ok {
		values = make(map[string]string)
		m.data[sid] = values
	}
	values[key] = value
	m.notifyLocked(Event{SessionID: sid, Key: key})
	return nil
}

// Remove удаляет ключи сессии. Отсутствующие ключи не считаются ошибкой.
func (m *Memory) Remove(_ context.Context, sid string, keys ...string) error {
	if sid == "" {
		return fmt.Errorf("clientstore.Memory.Remove: %w", ErrEmptySession)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data[sid], key)
		m.notifyLocked(Event{SessionID: sid, Key: key})
	}
	if len(m.data[sid]) == 0 {
		delete(m.data, sid)
	}
	return nil
}

// Watch регистрирует подписчика до отмены ctx.
func (m *Memory) Watch(ctx context.Context, sid string) (<-chan Event, error) {
	if sid == "" {
		return nil, fmt.Errorf("clientstore.Memory.Watch: %w", ErrEmptySession)
	}
	ch := make(chan Event, watchBuffer)

	m.mu.Lock()
	m.nextID++
	id := m.nextID
	if m.watchers[sid] == nil {
		m.watchers[sid] = make(map[uint64]chan Event)
	}
	m.watchers[sid][id] = ch
	m.mu.Unlock()

	go func() {
		<-ctx.Done()
		m.mu.Lock()
		delete(m.watchers[sid], id)
		if len(m.watchers[sid]) == 0 {
			delete(m.watchers, sid)
		}
		close(ch)
		m.mu.Unlock()
	}()

	return ch, nil
}

// notifyLocked не блокируется на медленных подписчиках: если буфер полон,
// подписчик и так перечитает хранилище по уже ожидающему событию.
func (m *Memory) notifyLocked(ev Event) {
	for _, ch := range m.watchers[ev.SessionID] {
		select {
		case ch <- ev:
		default:
		}
	}
}
