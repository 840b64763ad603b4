package websocket

import (
	"encoding/json"
	"errors"

	"github.com/piresc/crowdpulse/internal/pkg/constants"
)

var (
	errNotAnObject   = errors.New("payload must be a JSON object")
	errImpersonation = errors.New("payload names another user")
)

// actorFields names the payload field carrying the acting user of each
// client event
var actorFields = map[string]string{
	constants.EventJoinChat:                   "user_id",
	constants.EventSendMessage:                "sender_id",
	constants.EventTypingStart:                "user_id",
	constants.EventTypingStop:                 "user_id",
	constants.EventMarkMessagesRead:           "user_id",
	constants.EventSubscribeEvents:            "user_id",
	constants.EventUnsubscribeEvents:          "user_id",
	constants.EventEventCheckin:               "user_id",
	constants.EventEventComment:               "user_id",
	constants.EventEventShare:                 "user_id",
	constants.EventEventRate:                  "user_id",
	constants.EventShareLocation:              "user_id",
	constants.EventStopLocationSharing:        "user_id",
	constants.EventSendLocationRequest:        "from_user_id",
	constants.EventRespondLocationRequest:     "from_user_id",
	constants.EventPushSubscription:           "user_id",
	constants.EventPushUnsubscribe:            "user_id",
	constants.EventNotificationSettingsUpdate: "user_id",
}

// recipientFields names the payload field of bus events addressed to a
// single user. Those events are never broadcast.
var recipientFields = map[string]string{
	constants.EventMessageReceived:         "recipient_id",
	constants.EventLocationRequestReceived: "to_user_id",
	constants.EventLocationRequestResponse: "to_user_id",
}

// stampActor fills the acting user field of a client payload with userID.
// A payload naming somebody else is refused.
func stampActor(event, userID string, data json.RawMessage) (json.RawMessage, error) {
	field, ok := actorFields[event]
	if !ok {
		return data, nil
	}

	fields := map[string]json.RawMessage{}
	if len(data) > 0 && string(data) != "null" {
		if err := json.Unmarshal(data, &fields); err != nil || fields == nil {
			return nil, errNotAnObject
		}
	}

	if raw, present := fields[field]; present {
		var claimed string
		if err := json.Unmarshal(raw, &claimed); err != nil {
			return nil, errNotAnObject
		}
		if claimed != "" && claimed != userID {
			return nil, errImpersonation
		}
	}

	id, err := json.Marshal(userID)
	if err != nil {
		return nil, err
	}
	fields[field] = id
	return json.Marshal(fields)
}

// recipientOf returns the addressee of a bus event. addressed is false for
// events meant for every client.
func recipientOf(event string, payload []byte) (userID string, addressed bool) {
	field, ok := recipientFields[event]
	if !ok {
		return "", false
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(payload, &fields); err != nil {
		return "", true
	}
	_ = json.Unmarshal(fields[field], &userID)
	return userID, true
}
