package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/spec-kit/helpdesk/internal/events"
)

func TestDispatcherDeliversSynchronously(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	var received []events.Event
	dispatcher.Subscribe(events.EventTicketCreated, func(_ context.Context, event events.Event) error {
		received = append(received, event)
		return nil
	})

	err := dispatcher.Publish(context.Background(), events.Event{
		Type:    events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{TicketID: 4, Title: "t"},
	})
	require.NoError(t, err)
	require.Len(t, received, 1)
	require.NotEmpty(t, received[0].ID)
	require.False(t, received[0].Timestamp.IsZero())
}

func TestDispatcherIgnoresHandlerErrors(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	calls := 0
	dispatcher.Subscribe(events.EventSettingsUpdated, func(context.Context, events.Event) error {
		calls++
		return errors.New("boom")
	})
	dispatcher.Subscribe(events.EventSettingsUpdated, func(context.Context, events.Event) error {
		calls++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventSettingsUpdated}))
	require.Equal(t, 2, calls)
}

func TestDispatcherScopesByType(t *testing.T) {
	dispatcher := events.NewInMemoryDispatcher()

	called := false
	dispatcher.Subscribe(events.EventInventoryItemAdded, func(context.Context, events.Event) error {
		called = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), events.Event{Type: events.EventTicketUpdated}))
	require.False(t, called)
}
