package dashboard

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
)

type entry struct {
	d        *Dashboard
	lastSeen time.Time
	// закрывается после завершения Mount
	ready chan struct{}
}

// Registry хранит панели по идентификатору браузерной сессии.
//
// Панель создаётся при первом обращении сессии и монтируется ровно один раз.
// Параллельные запросы той же сессии ждут окончания монтирования, поэтому
// никто не видит панель без загруженного списка. Простаивающие панели
// закрывает Sweep.
type Registry struct {
	mu      sync.Mutex
	items   map[string]*entry
	factory func() *Dashboard
	now     func() time.Time
}

// NewRegistry создаёт реестр, новые панели строятся через factory.
func NewRegistry(factory func() *Dashboard) *Registry {
	return &Registry{
		items:   make(map[string]*entry),
		factory: factory,
		now:     time.Now,
	}
}

// Get возвращает панель сессии. Новая панель монтируется (загружает список)
// до возврата, остальные вызовы для той же сессии ждут монтирования или
// отмены ctx.
func (r *Registry) Get(ctx context.Context, sid string) *Dashboard {
	r.mu.Lock()
	e, ok := r.items[sid]
	if !ok {
		e = &entry{d: r.factory(), ready: make(chan struct{})}
		r.items[sid] = e
	}
	e.lastSeen = r.now()
	r.mu.Unlock()

	if !ok {
		e.d.Mount(ctx)
		close(e.ready)
		return e.d
	}

	select {
	case <-e.ready:
	case <-ctx.Done():
	}
	return e.d
}

// Len число открытых панелей.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.items)
}

// Drop закрывает и забывает панель сессии.
func (r *Registry) Drop(sid string) {
	r.mu.Lock()
	e, ok := r.items[sid]
	delete(r.items, sid)
	r.mu.Unlock()

	if ok {
		e.d.Close()
	}
}

// Sweep закрывает панели, к которым не обращались дольше idle.
// Возвращает число закрытых панелей.
func (r *Registry) Sweep(idle time.Duration) int {
	deadline := r.now().Add(-idle)

	r.mu.Lock()
	var stale []*Dashboard
	for sid, e := range r.items {
		if e.lastSeen.Before(deadline) {
			stale = append(stale, e.d)
			delete(r.items, sid)
		}
	}
	r.mu.Unlock()

	for _, d := range stale {
		d.Close()
	}
	return len(stale)
}

// RunSweeper раз в interval закрывает панели, простаивающие дольше idle.
// Блокируется до отмены ctx.
func (r *Registry) RunSweeper(ctx context.Context, log *slog.Logger, interval, idle time.Duration) {
	const op = "components.dashboard.RunSweeper"
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(idle); n > 0 {
				log.Info("idle dashboards closed", sl.Op(op), slog.Int("count", n), slog.Int("open", r.Len()))
			}
		}
	}
}

// Close закрывает все панели.
func (r *Registry) Close() {
	r.mu.Lock()
	items := r.items
	r.items = make(map[string]*entry)
	r.mu.Unlock()

	for _, e := range items {
		e.d.Close()
	}
}
