package events

// Event type constants
const (
	// Lifecycle
	EventTypeMatchCreated  EventType = "match_created"
	EventTypeMatchAccepted EventType = "match_accepted"

	// Rounds
	EventTypeRoundResolved EventType = "round_resolved"

	// Removal. Exactly one of these fires for every match that leaves the registry.
	EventTypeMatchCompleted  EventType = "match_completed"
	EventTypeMatchCancelled  EventType = "match_cancelled"
	EventTypeMatchForceEnded EventType = "match_force_ended"
	EventTypeMatchExpired    EventType = "match_expired"
)

// RemovalTypes lists the events that mean the match is gone
var RemovalTypes = []EventType{
	EventTypeMatchCompleted,
	EventTypeMatchCancelled,
	EventTypeMatchForceEnded,
	EventTypeMatchExpired,
}
