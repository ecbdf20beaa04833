package handler

import (
	"cinema_api/database"
	"cinema_api/helper"
	"context"
	"log"
	"strconv"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func WebsocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// SeatWebsocket sends the seat map of a screening once, then relays every
// update published on the screening's Redis channel until the client leaves.
func SeatWebsocket(c *websocket.Conn) {
	defer c.Close()

	id64, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		c.WriteJSON(fiber.Map{"error": "invalid screening id"})
		return
	}
	screeningId := uint(id64)

	seats, err := helper.SeatMap(database.DB, screeningId)
	if err != nil || seats == nil {
		c.WriteJSON(fiber.Map{"error": "screening not found"})
		return
	}
	if err := c.WriteJSON(seats); err != nil {
		return
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	pubsub := database.Redis.Subscribe(ctx, helper.SeatChannel(screeningId))
	defer pubsub.Close()

	// the client never sends anything; reading only detects disconnects
	go func() {
		defer cancel()
		for {
			if _, _, err := c.ReadMessage(); err != nil {
				return
			}
		}
	}()

	channel := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-channel:
			if !ok {
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Printf("ws screening %d: %v", screeningId, err)
				return
			}
		}
	}
}
