package realtime

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"

	"github.com/sharpcut-app/sharpcut-api/internal/metrics"
)

// Publisher is what the write path needs: fire the event and move on.
// Feed delivery must never fail a booking.
type Publisher interface {
	Publish(ctx context.Context, shopID uint, ev Event)
}

// Broker carries appointment events over Redis pub/sub, one channel
// per shop. Each subscriber (browser tab, device) holds its own
// subscription; there is no cross-client coordination.
type Broker struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewBroker(redisURL string, log zerolog.Logger) (*Broker, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}

	return &Broker{client: client, log: log}, nil
}

// NewBrokerWithClient is used by tests.
func NewBrokerWithClient(client *redis.Client, log zerolog.Logger) *Broker {
	return &Broker{client: client, log: log}
}

func (b *Broker) Publish(ctx context.Context, shopID uint, ev Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.log.Error().Err(err).Msg("marshal feed event")
		return
	}

	if err := b.client.Publish(ctx, Channel(shopID), payload).Err(); err != nil {
		// feed is best-effort, the row is already committed
		b.log.Warn().Err(err).Uint("shop_id", shopID).Msg("publish feed event")
		return
	}

	metrics.RealtimeEvents.WithLabelValues(string(ev.Type)).Inc()
}

// Subscribe opens the shop's channel and decodes events until ctx is
// cancelled. The returned channel is closed on teardown; nothing is
// delivered after that.
func (b *Broker) Subscribe(ctx context.Context, shopID uint) (<-chan Event, error) {
	ps := b.client.Subscribe(ctx, Channel(shopID))

	// confirm the subscription before handing the channel out
	if _, err := ps.Receive(ctx); err != nil {
		ps.Close()
		return nil, err
	}

	out := make(chan Event, 16)

	go func() {
		defer close(out)
		defer ps.Close()

		msgs := ps.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}

				var ev Event
				if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
					b.log.Warn().Err(err).Msg("decode feed event")
					continue
				}

				select {
				case out <- ev:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}

func (b *Broker) Close() error {
	return b.client.Close()
}
