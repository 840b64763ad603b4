package constants

// Pub/sub event names shared by the bus, the NATS transport and the
// websocket relay
const (
	// Crowd
	EventCrowdUpdate         = "crowd-update"
	EventLocationCrowdUpdate = "location-crowd-update"
	EventRequestCrowdData    = "request-crowd-data"

	// Chat
	EventJoinChat            = "join-chat"
	EventSendMessage         = "send-message"
	EventMessageReceived     = "message-received"
	EventTypingStart         = "typing-start"
	EventTypingStop          = "typing-stop"
	EventUserTyping          = "user-typing"
	EventOnlineUsersUpdate   = "online-users-update"
	EventMarkMessagesRead    = "mark-messages-read"
	EventMessageStatusUpdate = "message-status-update"

	// Events
	EventSubscribeEvents     = "subscribe-events"
	EventUnsubscribeEvents   = "unsubscribe-events"
	EventEventUpdate         = "event-update"
	EventEventAnnouncement   = "event-announcement"
	EventEventCheckin        = "event-checkin"
	EventEventCapacityUpdate = "event-capacity-update"
	EventEventComment        = "event-comment"
	EventEventShare          = "event-share"
	EventEventRate           = "event-rate"

	// Location sharing
	EventShareLocation           = "share-location"
	EventStopLocationSharing     = "stop-location-sharing"
	EventSendLocationRequest     = "send-location-request"
	EventRespondLocationRequest  = "respond-location-request"
	EventLocationShared          = "location-shared"
	EventLocationRequestReceived = "location-request-received"
	EventLocationRequestResponse = "location-request-response"
	EventLocationSharingStopped  = "location-sharing-stopped"

	// Notifications
	EventPushSubscription           = "push-subscription"
	EventPushUnsubscribe            = "push-unsubscribe"
	EventNotification               = "notification"
	EventNotificationBatch          = "notification-batch"
	EventNotificationSettingsUpdate = "notification-settings-update"
)
