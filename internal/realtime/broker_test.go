package realtime

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sharpcut-app/sharpcut-api/internal/models"
)

func newTestBroker(t *testing.T) *Broker {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewBrokerWithClient(client, zerolog.Nop())
}

func TestBroker_PublishSubscribe(t *testing.T) {
	broker := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := broker.Subscribe(ctx, 1)
	require.NoError(t, err)

	ap := &models.Appointment{ID: 3, Date: "2026-09-01", StartTime: "09:00:00", Status: "confirmed"}
	broker.Publish(ctx, 1, Event{Type: EventInsert, New: ap})

	select {
	case ev := <-events:
		assert.Equal(t, EventInsert, ev.Type)
		require.NotNil(t, ev.New)
		assert.Equal(t, uint(3), ev.New.ID)
		assert.Equal(t, "09:00:00", ev.New.StartTime)
	case <-time.After(2 * time.Second):
		t.Fatal("no event delivered")
	}
}

func TestBroker_ChannelsAreIsolatedPerShop(t *testing.T) {
	broker := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shopOne, err := broker.Subscribe(ctx, 1)
	require.NoError(t, err)

	broker.Publish(ctx, 2, Event{Type: EventInsert, New: &models.Appointment{ID: 9}})

	select {
	case ev := <-shopOne:
		t.Fatalf("shop 1 received shop 2's event: %+v", ev)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestBroker_SubscribeClosesOnCancel(t *testing.T) {
	broker := newTestBroker(t)

	ctx, cancel := context.WithCancel(context.Background())

	events, err := broker.Subscribe(ctx, 1)
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open, "channel must close after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
