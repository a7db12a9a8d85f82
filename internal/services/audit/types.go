package audit

import (
	"context"
	"time"

	"github.com/KirkDiggler/joingate/internal/common/clock"
	"github.com/sirupsen/logrus"
)

// EventType names an audited action
type EventType string

const (
	EventWebLogin            EventType = "web-login"
	EventLogout              EventType = "logout"
	EventBlacklist           EventType = "blacklist"
	EventUnblacklist         EventType = "unblacklist"
	EventSessionInvalidation EventType = "session-invalidation"
)

// Event is one audit record
type Event struct {
	Type EventType

	// TargetUserID and TargetUsername identify who the action applied to
	TargetUserID   string
	TargetUsername string

	// ActorID and ActorUsername are set for moderator actions
	ActorID       string
	ActorUsername string

	Reason string

	// Details carries event specific values such as tier or session count
	Details map[string]string

	Timestamp time.Time
}

// Config holds configuration for the audit dispatcher
type Config struct {
	// QueueSize bounds both the pre-ready backlog and the delivery queue
	QueueSize int

	// DeliveryTimeout bounds each sink call
	DeliveryTimeout time.Duration

	Clock  clock.Clock
	Logger logrus.FieldLogger
}

// Discard is a sink that drops every event, used when no log channel is set
type Discard struct{}

// Deliver does nothing
func (Discard) Deliver(context.Context, *Event) error {
	return nil
}
