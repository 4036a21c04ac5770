package notify

import (
	"sync"
	"time"
)

// Kind тип уведомления
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification транзиентное уведомление для отображения пользователю
type Notification struct {
	Kind    Kind
	Message string
}

// Center держит текущее транзиентное уведомление и гасит его по таймеру.
// Показ нового уведомления отменяет ожидающий таймер предыдущего, а
// отложенное гашение проверяет поколение: устаревший таймер никогда не
// стирает более новое уведомление.
type Center struct {
	mu         sync.Mutex
	current    *Notification
	generation uint64
	timer      *time.Timer
	ttl        time.Duration
}

// NewCenter создает центр уведомлений с заданным временем автогашения
func NewCenter(ttl time.Duration) *Center {
	return &Center{ttl: ttl}
}

// Show показывает уведомление и планирует его автогашение
func (c *Center) Show(kind Kind, message string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
	}

	c.generation++
	gen := c.generation
	c.current = &Notification{Kind: kind, Message: message}
	c.timer = time.AfterFunc(c.ttl, func() {
		c.dismissGeneration(gen)
	})
}

// Current возвращает текущее уведомление, если оно еще отображается
func (c *Center) Current() (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.current == nil {
		return Notification{}, false
	}
	return *c.current, true
}

// Dismiss гасит текущее уведомление немедленно
func (c *Center) Dismiss() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.current = nil
}

// dismissGeneration гасит уведомление, только если оно не было заменено
// более новым после планирования таймера
func (c *Center) dismissGeneration(gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != gen {
		return
	}
	c.current = nil
	c.timer = nil
}
