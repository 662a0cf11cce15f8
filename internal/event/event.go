package event

import "property-portal/internal/model"

type Type string

const (
	TypeSessionStarted  Type = "session.started"
	TypeSessionRestored Type = "session.restored"
	TypeSessionEnded    Type = "session.ended"
	TypeFavoritesSynced Type = "favorites.synced"
)

type Event struct {
	Type Type              `json:"type"`
	User model.DecodedUser `json:"user,omitempty"`
}

// Bus delivers session lifecycle events to subscribers. The session
// controller is the only publisher; readers subscribe instead of
// mutating shared state.
type Bus interface {
	Publish(e Event)
	Subscribe() (<-chan Event, func())
}
