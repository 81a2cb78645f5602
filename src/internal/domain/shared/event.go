package shared

import "time"

// DomainEvent 領域事件基礎介面
type DomainEvent interface {
	EventID() string       // 事件唯一標識
	EventType() string     // 事件類型
	OccurredAt() time.Time // 發生時間
	AggregateID() string   // 聚合根 ID
}

// EventPublisher 事件發布器介面
//
// 聚合根只累積事件（PullEvents），Use Case 在事務提交後才發布，
// 避免回滾的變更被外部觀察到。
type EventPublisher interface {
	Publish(event DomainEvent) error
	PublishBatch(events []DomainEvent) error
}

// BaseEvent 領域事件共用欄位
//
// 各事件嵌入此結構，只需額外實作 EventType()。
type BaseEvent struct {
	eventID     string
	aggregateID string
	occurredAt  time.Time
}

// NewBaseEvent 建立事件共用欄位
func NewBaseEvent(eventID, aggregateID string, occurredAt time.Time) BaseEvent {
	return BaseEvent{
		eventID:     eventID,
		aggregateID: aggregateID,
		occurredAt:  occurredAt,
	}
}

// EventID 實現 DomainEvent 介面
func (e BaseEvent) EventID() string {
	return e.eventID
}

// OccurredAt 實現 DomainEvent 介面
func (e BaseEvent) OccurredAt() time.Time {
	return e.occurredAt
}

// AggregateID 實現 DomainEvent 介面
func (e BaseEvent) AggregateID() string {
	return e.aggregateID
}
