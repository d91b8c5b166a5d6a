package locale

import (
	"net/http"
	"time"

	"golang.org/x/text/language"
)

// CookieName cookie с выбранным языком браузерной сессии.
const CookieName = "gazette_lang"

// FromRequest определяет язык запроса: cookie, затем Accept-Language.
func FromRequest(r *http.Request) Language {
	if c, err := r.Cookie(CookieName); err == nil {
		if lang, ok := Parse(c.Value); ok {
			return lang
		}
	}
	tags, _, err := language.ParseAcceptLanguage(r.Header.Get("Accept-Language"))
	if err != nil {
		return Default
	}
	for _, tag := range tags {
		if lang, ok := Parse(tag.String()); ok {
			return lang
		}
	}
	return Default
}

// SetCookie сохраняет язык в cookie ответа.
func SetCookie(w http.ResponseWriter, lang Language) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    lang.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}
