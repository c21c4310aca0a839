package notification

//go:generate go run go.uber.org/mock/mockgen -source=./notification.go -destination=./mocks/notification_mock.go -package=mocks

import (
	"context"
)

type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// Message is a rendered notification ready for dispatch. Subject is ignored by
// plain-text channels.
type Message struct {
	Channel     Channel
	Destination string
	Subject     string
	Body        string
}

// Sink delivers a rendered message over a single channel. Delivery is
// best-effort: callers treat a failure as a partial success, never as a reason
// to roll back the state change that triggered it.
type Sink interface {
	Send(ctx context.Context, msg Message) error
}
