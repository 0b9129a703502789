package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/sharpcut-app/sharpcut-api/internal/middleware"
	"github.com/sharpcut-app/sharpcut-api/internal/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// auth happens on the bearer token, origins are the SPA's concern
	CheckOrigin: func(r *http.Request) bool { return true },
}

// FeedHandler streams the shop's appointment change-feed to the
// dashboard. Every tab or device holds its own subscription; events
// are folded into the bounded notification list per connection.
type FeedHandler struct {
	broker *realtime.Broker
	log    zerolog.Logger
}

func NewFeedHandler(broker *realtime.Broker, log zerolog.Logger) *FeedHandler {
	return &FeedHandler{broker: broker, log: log}
}

type feedMessage struct {
	Event         realtime.Event          `json:"event"`
	Notification  *realtime.Notification  `json:"notification,omitempty"`
	Notifications []realtime.Notification `json:"notifications"`
}

func (h *FeedHandler) Stream(c *gin.Context) {
	shopID := c.MustGet(middleware.ContextShopID).(uint)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade already wrote the response
		return
	}
	defer conn.Close()

	// the subscription outlives the (timeout-exempt) request and dies
	// with the connection
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := h.broker.Subscribe(ctx, shopID)
	if err != nil {
		h.log.Error().Err(err).Uint("shop_id", shopID).Msg("feed subscribe failed")
		conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "subscribe failed"),
			time.Now().Add(time.Second),
		)
		return
	}

	// drain client frames only to learn about disconnects
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	feed := realtime.NewNotificationFeed(10)

	// single consumer goroutine: events are serialized here, the feed
	// needs no locking. The channel closes on cancel, so nothing is
	// written after teardown.
	for ev := range events {
		n, notified := feed.Apply(ev, time.Now())

		msg := feedMessage{Event: ev, Notifications: feed.Items()}
		if notified {
			msg.Notification = &n
		}

		if err := conn.WriteJSON(msg); err != nil {
			cancel()
			break
		}
	}
}
