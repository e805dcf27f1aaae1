package service

import (
	"context"
	"encoding/json"
	"log"

	"tableside/internal/domain"

	"github.com/segmentio/kafka-go"
)

// BasketConsumer ingests basket_created events and feeds the popularity sets.
type BasketConsumer struct {
	Reader  *kafka.Reader
	Tracker PopularityTracker
}

func NewBasketConsumer(reader *kafka.Reader, tracker PopularityTracker) *BasketConsumer {
	return &BasketConsumer{Reader: reader, Tracker: tracker}
}

func (c *BasketConsumer) Start(ctx context.Context) {
	log.Println("Starting basket popularity consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.BasketEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		if event.Type == "basket_created" {
			c.ProcessEvent(ctx, event)
		}
	}
}

func (c *BasketConsumer) ProcessEvent(ctx context.Context, event domain.BasketEvent) {
	day := event.Timestamp.Format("2006-01-02")
	for _, dishID := range event.DishIDs {
		if err := c.Tracker.RecordOrder(ctx, event.RestaurantID, dishID, day); err != nil {
			log.Printf("Error recording popularity for dish %d: %v", dishID, err)
		}
	}
}
