package dashboard

import (
	"sync"
	"time"
)

// Flash временное сообщение, которое очищается через ttl после установки.
// Новое сообщение отменяет таймер предыдущего, даже если текст тот же.
//
// Очистка происходит в памяти сервера. Уже отрисованная страница узнаёт
// оставшееся время жизни через Remaining и скрывает сообщение сама.
type Flash struct {
	mu      sync.Mutex
	ttl     time.Duration
	text    string
	gen     uint64
	timer   *time.Timer
	expires time.Time
}

// NewFlash создаёт пустое сообщение с временем жизни ttl.
func NewFlash(ttl time.Duration) *Flash {
	return &Flash{ttl: ttl}
}

// Set заменяет сообщение и перезапускает таймер очистки.
func (f *Flash) Set(text string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
	f.text = text
	if text == "" {
		return
	}
	gen := f.gen
	f.expires = time.Now().Add(f.ttl)
	f.timer = time.AfterFunc(f.ttl, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		// таймер мог сработать одновременно с Set, сверяем поколение
		if f.gen == gen {
			f.text = ""
			f.timer = nil
			f.expires = time.Time{}
		}
	})
}

// Text возвращает текущее сообщение.
func (f *Flash) Text() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.text
}

// Remaining возвращает сообщение и время до его очистки.
// Нулевая длительность означает, что таймера нет.
func (f *Flash) Remaining() (string, time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.timer == nil {
		return f.text, 0
	}
	left := time.Until(f.expires)
	if left < time.Millisecond {
		left = time.Millisecond
	}
	return f.text, left
}

// Stop отменяет ожидающую очистку, сообщение остаётся как есть.
func (f *Flash) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stopLocked()
}

func (f *Flash) stopLocked() {
	f.gen++
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.expires = time.Time{}
}
