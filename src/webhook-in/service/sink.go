package webhook_in_service

import (
	"context"
	"fmt"

	"github.com/pterm/pterm"
	"golang.org/x/sync/errgroup"
)

// MessageEvent is what an EventSink receives for both event types.
type MessageEvent struct {
	LawyerID          string `json:"lawyer_id"`
	ClientPhoneNumber string `json:"client_phone_number"`
	Message           string `json:"message"`
	Timestamp         string `json:"timestamp"`
}

// EventSink is where webhook events end up: message storage, lawyer
// notification, client lookup. Calls happen before the bot is acknowledged.
type EventSink interface {
	OnIncomingMessage(ctx context.Context, event MessageEvent) error
	OnMessageSent(ctx context.Context, event MessageEvent) error
}

// LogSink only logs events.
type LogSink struct{}

func (LogSink) OnIncomingMessage(_ context.Context, event MessageEvent) error {
	pterm.DefaultLogger.Info(
		fmt.Sprintf("Incoming message from %s to lawyer %s: %s", event.ClientPhoneNumber, event.LawyerID, event.Message),
	)
	return nil
}

func (LogSink) OnMessageSent(_ context.Context, event MessageEvent) error {
	pterm.DefaultLogger.Info(
		fmt.Sprintf("Message sent to %s from lawyer %s", event.ClientPhoneNumber, event.LawyerID),
	)
	return nil
}

// MultiSink forwards each event once to every sink and waits for all of them.
// The first error is returned.
type MultiSink []EventSink

func (m MultiSink) OnIncomingMessage(ctx context.Context, event MessageEvent) error {
	return m.each(ctx, func(ctx context.Context, sink EventSink) error {
		return sink.OnIncomingMessage(ctx, event)
	})
}

func (m MultiSink) OnMessageSent(ctx context.Context, event MessageEvent) error {
	return m.each(ctx, func(ctx context.Context, sink EventSink) error {
		return sink.OnMessageSent(ctx, event)
	})
}

func (m MultiSink) each(ctx context.Context, call func(context.Context, EventSink) error) error {
	var eg errgroup.Group
	for _, sink := range m {
		eg.Go(func() error {
			return call(ctx, sink)
		})
	}
	return eg.Wait()
}
