package locale

import "sync"

// Context разделяемое значение активного языка с уведомлением подписчиков.
// Подписчики вызываются вне блокировки и только при реальной смене языка.
type Context struct {
	mu       sync.RWMutex
	lang     Language
	subs     map[int]func(Language)
	nextSubs int
}

// NewContext создаёт контекст с начальным языком.
func NewContext(lang Language) *Context {
	if lang != English && lang != Arabic {
		lang = Default
	}
	return &Context{
		lang: lang,
		subs: make(map[int]func(Language)),
	}
}

// Get возвращает активный язык.
func (c *Context) Get() Language {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lang
}

// Set меняет язык и уведомляет подписчиков, если значение изменилось.
func (c *Context) Set(lang Language) {
	c.mu.Lock()
	if c.lang == lang {
		c.mu.Unlock()
		return
	}
	c.lang = lang
	subs := make([]func(Language), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(lang)
	}
}

// Toggle переключает язык на второй из пары и возвращает новое значение.
func (c *Context) Toggle() Language {
	next := c.Get().Toggle()
	c.Set(next)
	return next
}

// Subscribe регистрирует обработчик смены языка.
// Возвращённая функция снимает подписку.
func (c *Context) Subscribe(fn func(Language)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSubs
	c.nextSubs++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		delete(c.subs, id)
	}
}
