package events

import "context"

// Event types
const (
	EventInvitationCreated     = "invitation_created"
	EventInvitationResponded   = "invitation_responded"
	EventDraftStatusChanged    = "draft_status_changed"
	EventCampaignStatusChanged = "campaign_status_changed"
	EventNotification          = "notification"
)

// Streams
const (
	StreamWorkflow      = "events:workflow"
	StreamNotifications = "events:notifications"
)

type Event struct {
	Type    string         `json:"type"`
	Payload map[string]any `json:"payload"`
}

type Publisher interface {
	Publish(ctx context.Context, stream string, event Event) error
}

type Subscriber interface {
	Subscribe(ctx context.Context, stream string, handler func(Event)) error
}
