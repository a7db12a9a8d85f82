package audit

import "context"

//go:generate mockgen -package=mocks -destination=mocks/mock_audit.go github.com/KirkDiggler/joingate/internal/services/audit Recorder,Sink

// Recorder accepts audit events. Recording never fails the caller: events
// are delivered in the background and dropped when the queue is full.
type Recorder interface {
	Record(ctx context.Context, event *Event)
}

// Sink delivers a single audit event to its destination
type Sink interface {
	Deliver(ctx context.Context, event *Event) error
}
