// Package navbar навигационная панель сайта.
//
// Панель читает токен из клиентского хранилища при монтировании и
// перечитывает его по каждому уведомлению об изменении хранилища, так что
// вход или выход в соседней вкладке сразу меняет набор ссылок.
// Подписка на уведомления живёт от Mount до Unmount.
package navbar

import (
	"context"
	"log/slog"
	"sync"

	"github.com/magabrotheeeer/crime-gazette/internal/clientstore"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/sl"
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

// Маршруты сайта.
const (
	RouteHome         = "/"
	RouteSignup       = "/signup"
	RouteSubscribe    = "/subscribe"
	RouteLogin        = "/login"
	RouteProfile      = "/userprofile"
	RouteArticles     = "/ArticlesPage"
	RouteAbout        = "/AboutUs"
	RouteContact      = "/contact"
	RouteBlog         = "/Blog"
	RoutePremium      = "/SubscriptionCardDisplay"
	RouteLogout       = "/logout"
	RouteLanguage     = "/language"
	RouteMenu         = "/menu"
	RouteStorageEvent = "/events/storage"
)

// Navbar навигационная панель одной браузерной сессии.
//
// Признак входа читается из клиентского хранилища при Mount и после каждого
// уведомления Watch, поэтому вход или выход в другой вкладке той же сессии
// меняет набор ссылок. Каждое перечитанное значение публикуется в Updates.
// Язык берётся из общего locale.Context, переключение видят все панели сессии.
type Navbar struct {
	log   *slog.Logger
	store clientstore.Store
	sid   string
	lang  *locale.Context

	mu         sync.Mutex
	loggedIn   bool
	mobileOpen bool
	cancel     context.CancelFunc
	done       chan struct{}
	updates    chan bool
}

// New создаёт панель для сессии sid. Контекст языка передаётся явно.
func New(log *slog.Logger, store clientstore.Store, sid string, lang *locale.Context) *Navbar {
	return &Navbar{
		log:     log,
		store:   store,
		sid:     sid,
		lang:    lang,
		updates: make(chan bool, 1),
	}
}

// Mount читает состояние входа и подписывается на изменения хранилища.
// Ошибка подписки не мешает отображению, панель просто не будет
// реагировать на другие вкладки.
func (n *Navbar) Mount(ctx context.Context) {
	const op = "components.navbar.Mount"
	n.Refresh(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	events, err := n.store.Watch(watchCtx, n.sid)
	if err != nil {
		cancel()
		n.log.Error("failed to watch client storage", sl.Op(op), sl.Err(err))
		return
	}

	done := make(chan struct{})
	n.mu.Lock()
	n.cancel = cancel
	n.done = done
	n.mu.Unlock()

	go func() {
		defer close(done)
		for range events {
			if watchCtx.Err() != nil {
				continue
			}
			n.Refresh(watchCtx)
		}
	}()
}

// Unmount снимает подписку на хранилище и дожидается её завершения.
func (n *Navbar) Unmount() {
	n.mu.Lock()
	cancel, done := n.cancel, n.done
	n.cancel, n.done = nil, nil
	n.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

// Updates канал с новым значением признака входа после каждой перепроверки.
// Хранится только последнее непрочитанное значение.
func (n *Navbar) Updates() <-chan bool {
	return n.updates
}

// Refresh перечитывает признак входа из хранилища.
func (n *Navbar) Refresh(ctx context.Context) {
	const op = "components.navbar.Refresh"
	token, ok, err := n.store.Get(ctx, n.sid, models.StorageKeyToken)
	if err != nil {
		n.log.Error("failed to read token", sl.Op(op), sl.Err(err))
	}
	loggedIn := err == nil && ok && token != ""

	n.mu.Lock()
	n.loggedIn = loggedIn
	n.mu.Unlock()

	for {
		select {
		case n.updates <- loggedIn:
			return
		default:
		}
		select {
		case <-n.updates:
		default:
		}
	}
}

// IsLoggedIn признак входа на момент последней проверки.
func (n *Navbar) IsLoggedIn() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.loggedIn
}

// ToggleMobileMenu открывает или закрывает мобильное меню.
func (n *Navbar) ToggleMobileMenu() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mobileOpen = !n.mobileOpen
	return n.mobileOpen
}

// SetMobileMenu задаёт состояние мобильного меню.
func (n *Navbar) SetMobileMenu(open bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.mobileOpen = open
}

// ChangeLanguage переключает язык en/ar в общем контексте.
// Подписанные на контекст переводчики меняют язык сами.
func (n *Navbar) ChangeLanguage() locale.Language {
	return n.lang.Toggle()
}

// HandleLogout удаляет token и user_id из хранилища, сбрасывает признак
// входа и возвращает маршрут для перехода.
func (n *Navbar) HandleLogout(ctx context.Context) string {
	const op = "components.navbar.HandleLogout"
	if err := n.store.Remove(ctx, n.sid, models.StorageKeyToken, models.StorageKeyUserID); err != nil {
		n.log.Error("failed to clear client storage", sl.Op(op), sl.Err(err))
	}
	n.mu.Lock()
	n.loggedIn = false
	n.mu.Unlock()
	return RouteHome
}
