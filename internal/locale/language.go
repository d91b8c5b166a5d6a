// Package locale хранит выбранный язык интерфейса и переводит строки
// навигации. Context передаётся потребителям явно, Translator подписывается
// на него и переключает печать сообщений при смене языка.
package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Language поддерживаемый язык интерфейса.
type Language string

const (
	English Language = "en"
	Arabic  Language = "ar"
)

// Default язык по умолчанию.
const Default = English

// Parse разбирает строку в поддерживаемый язык. Региональные варианты
// ("ar-EG", "en-US") сводятся к базовому языку.
func Parse(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default, false
	}
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return English, true
	case "ar":
		return Arabic, true
	}
	return Default, false
}

// Toggle возвращает второй язык из пары en/ar.
func (l Language) Toggle() Language {
	if l == English {
		return Arabic
	}
	return English
}

// Tag возвращает тег языка для x/text.
func (l Language) Tag() language.Tag {
	if l == Arabic {
		return language.Arabic
	}
	return language.English
}

// Dir направление письма для атрибута dir.
func (l Language) Dir() string {
	if l == Arabic {
		return "rtl"
	}
	return "ltr"
}

func (l Language) String() string {
	return string(l)
}
