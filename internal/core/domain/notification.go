package domain

import "errors"

// Channel identifies the delivery mechanism of a notification.
type Channel string

const (
	ChannelEmail Channel = "email"
	ChannelSMS   Channel = "sms"
)

var ErrInvalidChannel = errors.New("invalid notification channel")
var ErrDispatchFailed = errors.New("notification dispatch failed")

// NotificationRequest is the ephemeral payload handed to the dispatch
// gateway: a destination, a channel, and fully rendered content. The
// gateway never builds content itself.
type NotificationRequest struct {
	To      string  `json:"to"`
	Channel Channel `json:"channel"`
	Subject string  `json:"subject"`
	Body    string  `json:"body"`
}

// DispatchResult reports the outcome of a single dispatch attempt.
// The SMS channel yields Accepted=true with an explanatory detail so
// reminder workflows never block on the unimplemented channel.
type DispatchResult struct {
	Channel  Channel `json:"channel"`
	Accepted bool    `json:"accepted"`
	Detail   string  `json:"detail,omitempty"`
}
