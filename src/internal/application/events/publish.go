// Package events 提供 Use Case 在事務提交後發布領域事件的共用輔助函數。
package events

import (
	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	log "github.com/sirupsen/logrus"
)

// Puller 可提取待發布事件的聚合根
type Puller interface {
	PullEvents() []shared.DomainEvent
}

// Collect 依序提取多個聚合根的事件
func Collect(aggregates ...Puller) []shared.DomainEvent {
	var out []shared.DomainEvent
	for _, a := range aggregates {
		if a == nil {
			continue
		}
		out = append(out, a.PullEvents()...)
	}
	return out
}

// PublishAfterCommit 發布已提交變更的事件
//
// 事務已提交，發布失敗不能回滾業務結果；只記錄錯誤。
// publisher 為 nil 時不做任何事。
func PublishAfterCommit(publisher shared.EventPublisher, events []shared.DomainEvent) {
	if publisher == nil || len(events) == 0 {
		return
	}
	if err := publisher.PublishBatch(events); err != nil {
		log.WithError(err).WithField("count", len(events)).Error("failed to publish domain events")
	}
}
