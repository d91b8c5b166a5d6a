package locale

import (
	"sync"

	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator печатает сообщения на активном языке Context.
// Принтер пересоздаётся при смене языка, Close отменяет подписку.
type Translator struct {
	cat         catalog.Catalog
	mu          sync.RWMutex
	printer     *message.Printer
	lang        Language
	unsubscribe func()
}

// NewTranslator создаёт переводчик и подписывает его на смену языка в ctx.
func NewTranslator(cat catalog.Catalog, ctx *Context) *Translator {
	t := &Translator{cat: cat}
	t.use(ctx.Get())
	t.unsubscribe = ctx.Subscribe(t.use)
	return t
}

func (t *Translator) use(lang Language) {
	p := message.NewPrinter(lang.Tag(), message.Catalog(t.cat))
	t.mu.Lock()
	t.printer = p
	t.lang = lang
	t.mu.Unlock()
}

// T возвращает перевод ключа. Неизвестный ключ возвращается как есть.
func (t *Translator) T(key string, args ...any) string {
	t.mu.RLock()
	p := t.printer
	t.mu.RUnlock()
	return p.Sprintf(key, args...)
}

// Language язык, на котором сейчас печатает переводчик.
func (t *Translator) Language() Language {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lang
}

// Close снимает подписку на контекст.
func (t *Translator) Close() {
	if t.unsubscribe != nil {
		t.unsubscribe()
	}
}
