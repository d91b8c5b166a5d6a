// Package layout собирает общие для всех страниц части: панель навигации
// текущей браузерной сессии на языке запроса.
package layout

import (
	"log/slog"
	"net/http"

	"golang.org/x/text/message/catalog"

	"github.com/magabrotheeeer/crime-gazette/internal/clientstore"
	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/http/middlewarectx"
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
)

// MenuCookieName cookie с состоянием мобильного меню.
const MenuCookieName = "gazette_menu"

// Layout строит панель навигации для запроса.
type Layout struct {
	log   *slog.Logger
	store clientstore.Store
	cat   catalog.Catalog
}

// New создаёт Layout поверх клиентского хранилища и каталога переводов.
func New(log *slog.Logger, store clientstore.Store, cat catalog.Catalog) *Layout {
	return &Layout{log: log, store: store, cat: cat}
}

// Navbar возвращает панель сессии запроса с прочитанным признаком входа.
// Подписка на хранилище не открывается, для неё нужен Mount.
func (l *Layout) Navbar(r *http.Request) *navbar.Navbar {
	n := l.newNavbar(r)
	n.Refresh(r.Context())
	return n
}

// MountedNavbar возвращает смонтированную панель. Вызывающий обязан вызвать Unmount.
func (l *Layout) MountedNavbar(r *http.Request) *navbar.Navbar {
	n := l.newNavbar(r)
	n.Mount(r.Context())
	return n
}

// NavView возвращает готовые к отображению данные панели.
func (l *Layout) NavView(r *http.Request) navbar.View {
	return l.Navbar(r).View(l.translator(r))
}

func (l *Layout) newNavbar(r *http.Request) *navbar.Navbar {
	sid := middlewarectx.SessionIDFrom(r.Context())
	n := navbar.New(l.log, l.store, sid, middlewarectx.LocaleFrom(r.Context()))
	if c, err := r.Cookie(MenuCookieName); err == nil && c.Value == "open" {
		n.SetMobileMenu(true)
	}
	return n
}

func (l *Layout) translator(r *http.Request) *locale.Translator {
	if tr, ok := middlewarectx.TranslatorFrom(r.Context()); ok {
		return tr
	}
	return locale.NewTranslator(l.cat, middlewarectx.LocaleFrom(r.Context()))
}
