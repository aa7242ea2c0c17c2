package events

import (
	"context"
	"time"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CHAT_RESPONDED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Publisher delivers events to the bus. Implementations are best-effort;
// callers must not let a publish failure affect the user-facing reply.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// BaseEvent is the common implementation used by the event constructors.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewChatResponded marks a successfully completed chat turn.
func NewChatResponded(sessionID, emotionalState string) Event {
	return BaseEvent{
		Type: "CHAT_RESPONDED",
		Data: map[string]interface{}{
			"session_id":      sessionID,
			"emotional_state": emotionalState,
		},
		OccurredAt: time.Now(),
	}
}

// NewChatDegraded marks a turn answered with the apology fallback.
func NewChatDegraded(sessionID, reason string) Event {
	return BaseEvent{
		Type: "CHAT_DEGRADED",
		Data: map[string]interface{}{
			"session_id": sessionID,
			"reason":     reason,
		},
		OccurredAt: time.Now(),
	}
}

// NewAnalysisIngested marks a session summary refresh.
func NewAnalysisIngested(sessionID string) Event {
	return BaseEvent{
		Type: "ANALYSIS_INGESTED",
		Data: map[string]interface{}{
			"session_id": sessionID,
		},
		OccurredAt: time.Now(),
	}
}
