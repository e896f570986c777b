package handler

import (
	"context"
	"sync"

	"hargeisa_vibes/helper"
	"hargeisa_vibes/utils"

	"github.com/gofiber/contrib/websocket"
	"go.uber.org/zap"
)

var (
	liveClients = make(map[*websocket.Conn]bool)
	liveMu      sync.Mutex
)

// StartBookingFeed subscribes to the booking events channel once and fans
// every message out to all connected admin dashboards.
func StartBookingFeed() {
	go func() {
		pubsub := helper.RedisClient.Subscribe(context.Background(), helper.BookingEventsChannel)
		defer pubsub.Close()

		for msg := range pubsub.Channel() {
			payload := []byte(msg.Payload)

			liveMu.Lock()
			for conn := range liveClients {
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					conn.Close()
					delete(liveClients, conn)
				}
			}
			liveMu.Unlock()
		}
		utils.GetLogger().Warn("booking feed subscription closed", zap.String("channel", helper.BookingEventsChannel))
	}()
}

// BookingLiveFeed registers an admin websocket connection and holds it open
// until the client hangs up.
func BookingLiveFeed(c *websocket.Conn) {
	liveMu.Lock()
	liveClients[c] = true
	liveMu.Unlock()

	defer func() {
		liveMu.Lock()
		delete(liveClients, c)
		liveMu.Unlock()
		c.Close()
	}()

	// Drain reads so close frames are processed.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}
