// Package views HTML-шаблоны страниц фронтенда.
package views

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/components/navbar"
	"github.com/magabrotheeeer/crime-gazette/internal/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Имена страниц.
const (
	PageGeneric   = "page"
	PageDashboard = "dashboard"
)

// PageData данные обычной страницы сайта.
type PageData struct {
	Nav   navbar.View
	Title string
	// LoginForm показывает форму приёма токена от сервиса авторизации.
	LoginForm bool
}

// DashboardData данные страницы управления планами.
type DashboardData struct {
	Nav         navbar.View
	State       dashboard.State
	Editing     bool
	FormTitle   string
	SubmitLabel string
	FormError   string
	Draft       models.FormDraft
}

// Renderer хранит разобранные шаблоны страниц.
type Renderer struct {
	pages map[string]*template.Template
}

// New разбирает встроенные шаблоны.
func New() (*Renderer, error) {
	const op = "views.New"
	pages := make(map[string]*template.Template, 2)
	for _, name := range []string{PageGeneric, PageDashboard} {
		tmpl, err := template.New(name).ParseFS(templatesFS,
			"templates/layout.html",
			"templates/navbar.html",
			"templates/"+name+".html",
		)
		if err != nil {
			return nil, fmt.Errorf("%s: parse %s: %w", op, name, err)
		}
		pages[name] = tmpl
	}
	return &Renderer{pages: pages}, nil
}

// Render выполняет шаблон страницы name. Вывод буферизуется, чтобы ошибка
// шаблона не оставила клиенту половину страницы.
func (r *Renderer) Render(w io.Writer, name string, data any) error {
	const op = "views.Render"
	tmpl, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%s: unknown page %q", op, name)
	}
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// RenderNavbar выполняет только шаблон панели навигации.
func (r *Renderer) RenderNavbar(w io.Writer, nav navbar.View) error {
	const op = "views.RenderNavbar"
	if err := r.pages[PageGeneric].ExecuteTemplate(w, "navbar", nav); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
