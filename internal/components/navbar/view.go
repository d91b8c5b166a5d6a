package navbar

import (
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
)

// Link пункт меню. Post означает кнопку формы вместо обычной ссылки.
type Link struct {
	Href  string
	Label string
	Post  bool
}

// View данные для шаблона панели.
type View struct {
	LoggedIn      bool
	MobileOpen    bool
	Lang          string
	Dir           string
	BrandFirst    string
	BrandSecond   string
	MenuLabel     string
	LanguageLabel string
	AuthLinks     []Link
	MenuLinks     []Link
}

// View собирает панель на активном языке tr.
func (n *Navbar) View(tr *locale.Translator) View {
	n.mu.Lock()
	loggedIn, mobileOpen := n.loggedIn, n.mobileOpen
	n.mu.Unlock()

	lang := tr.Language()
	v := View{
		LoggedIn:      loggedIn,
		MobileOpen:    mobileOpen,
		Lang:          lang.String(),
		Dir:           lang.Dir(),
		BrandFirst:    tr.T("brand.first"),
		BrandSecond:   tr.T("brand.second"),
		MenuLabel:     tr.T("nav.menu"),
		LanguageLabel: tr.T("nav.switch_language"),
		MenuLinks: []Link{
			{Href: RouteHome, Label: tr.T("nav.home")},
			{Href: RouteArticles, Label: tr.T("nav.news")},
			{Href: RouteAbout, Label: tr.T("nav.about")},
			{Href: RouteContact, Label: tr.T("nav.contact")},
			{Href: RouteBlog, Label: tr.T("nav.blogs")},
			{Href: RoutePremium, Label: tr.T("nav.premium")},
		},
	}
	if loggedIn {
		v.AuthLinks = []Link{
			{Href: RouteProfile, Label: tr.T("nav.profile")},
			{Href: RouteLogout, Label: tr.T("nav.logout"), Post: true},
		}
	} else {
		v.AuthLinks = []Link{
			{Href: RouteSignup, Label: tr.T("nav.register")},
			{Href: RouteSubscribe, Label: tr.T("nav.subscribe")},
			{Href: RouteLogin, Label: tr.T("nav.signin")},
		}
	}
	return v
}
