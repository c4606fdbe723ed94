package services

import (
	"log"
	"time"
)

// Event types published after a successful write.
const (
	EventCreated = "created"
	EventUpdated = "updated"
	EventDeleted = "deleted"
)

// ResourceEvent describes a write to a client or product.
type ResourceEvent struct {
	Type       string    `json:"type"`
	Resource   string    `json:"resource"`
	ID         uint      `json:"id"`
	Affected   int64     `json:"affected"`
	OccurredAt time.Time `json:"occurred_at"`
}

// RoutingKey is "<resource>.<type>", e.g. "client.created".
func (e ResourceEvent) RoutingKey() string {
	return e.Resource + "." + e.Type
}

// EventPublisher delivers resource events to a broker.
type EventPublisher interface {
	PublishJSON(routingKey string, payload interface{}) error
}

// publish sends the event if a publisher is configured. Failures are logged
// and never fail the write that produced the event.
func publish(p EventPublisher, resource, eventType string, id uint, affected int64) {
	if p == nil {
		return
	}
	event := ResourceEvent{
		Type:       eventType,
		Resource:   resource,
		ID:         id,
		Affected:   affected,
		OccurredAt: time.Now().UTC(),
	}
	if err := p.PublishJSON(event.RoutingKey(), event); err != nil {
		log.Printf("Warning: failed to publish %s event for %s %d: %v", event.RoutingKey(), resource, id, err)
	}
}
