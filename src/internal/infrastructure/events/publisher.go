// Package events 實作領域事件發布器：記錄日誌並分派給訂閱者，可選擇轉發到 Redis Pub/Sub。
package events

import (
	"errors"
	"sync"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// AllEvents 訂閱所有事件類型
const AllEvents = "*"

// Handler 事件處理函數
type Handler func(event shared.DomainEvent) error

// Publisher 進程內事件發布器
//
// 設計原則：
// 1. 每個事件都寫一筆 info 日誌（事件類型、聚合根 ID）
// 2. 依事件類型分派給訂閱者，AllEvents 訂閱者收到所有事件
// 3. 單一訂閱者失敗不影響其他訂閱者，錯誤彙總後返回
type Publisher struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

// NewPublisher 創建事件發布器
func NewPublisher() *Publisher {
	return &Publisher{handlers: make(map[string][]Handler)}
}

// Subscribe 註冊事件處理函數
func (p *Publisher) Subscribe(eventType string, handler Handler) {
	if handler == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers[eventType] = append(p.handlers[eventType], handler)
}

// Publish 實現 shared.EventPublisher
func (p *Publisher) Publish(event shared.DomainEvent) error {
	if event == nil {
		return nil
	}

	log.WithFields(log.Fields{
		"event_id":     event.EventID(),
		"event_type":   event.EventType(),
		"aggregate_id": event.AggregateID(),
	}).Info("domain event published")

	p.mu.RLock()
	handlers := make([]Handler, 0, len(p.handlers[event.EventType()])+len(p.handlers[AllEvents]))
	handlers = append(handlers, p.handlers[event.EventType()]...)
	handlers = append(handlers, p.handlers[AllEvents]...)
	p.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// PublishBatch 實現 shared.EventPublisher；依序發布，所有事件都會嘗試
func (p *Publisher) PublishBatch(events []shared.DomainEvent) error {
	var errs []error
	for _, e := range events {
		if err := p.Publish(e); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ shared.EventPublisher = (*Publisher)(nil)
