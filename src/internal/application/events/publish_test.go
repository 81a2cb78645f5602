package events

import (
	"errors"
	"testing"
	"time"

	"github.com/jackyeh168/bar_loyalty/src/internal/domain/shared"
	"github.com/stretchr/testify/assert"
)

type stubEvent struct{ shared.BaseEvent }

func (stubEvent) EventType() string { return "stub" }

type stubAggregate struct{ events []shared.DomainEvent }

func (s *stubAggregate) PullEvents() []shared.DomainEvent {
	out := s.events
	s.events = nil
	return out
}

type recordingPublisher struct {
	batches [][]shared.DomainEvent
	err     error
}

func (p *recordingPublisher) Publish(e shared.DomainEvent) error {
	return p.PublishBatch([]shared.DomainEvent{e})
}

func (p *recordingPublisher) PublishBatch(events []shared.DomainEvent) error {
	p.batches = append(p.batches, events)
	return p.err
}

func TestCollect_SkipsNilAndDrains(t *testing.T) {
	a := &stubAggregate{events: []shared.DomainEvent{stubEvent{shared.NewBaseEvent("1", "a", time.Now())}}}
	b := &stubAggregate{events: []shared.DomainEvent{stubEvent{shared.NewBaseEvent("2", "b", time.Now())}}}

	got := Collect(a, nil, b)

	assert.Len(t, got, 2)
	assert.Empty(t, Collect(a, b), "第二次提取為空")
}

func TestPublishAfterCommit(t *testing.T) {
	events := []shared.DomainEvent{stubEvent{shared.NewBaseEvent("1", "a", time.Now())}}

	// nil publisher 不 panic
	PublishAfterCommit(nil, events)

	// 無事件不呼叫
	p := &recordingPublisher{}
	PublishAfterCommit(p, nil)
	assert.Empty(t, p.batches)

	// 發布失敗只記錄
	p.err = errors.New("broker down")
	PublishAfterCommit(p, events)
	assert.Len(t, p.batches, 1)
}
