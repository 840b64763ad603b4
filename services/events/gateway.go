package events

import "github.com/piresc/crowdpulse/internal/pkg/models"

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/crowdpulse/services/events EventsGW

// EventsGW defines the outbound events of the event tracking store
type EventsGW interface {
	SubscribeEvents(sub models.EventSubscription) error
	UnsubscribeEvents(sub models.EventSubscription) error
	SendInteraction(kind models.EventUpdateType, in models.EventInteraction) error
}
