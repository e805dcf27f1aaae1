package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"tableside/internal/domain"

	"github.com/segmentio/kafka-go"
)

type BasketEventPublisher struct {
	Writer *kafka.Writer
}

func NewBasketEventPublisher(writer *kafka.Writer) *BasketEventPublisher {
	return &BasketEventPublisher{Writer: writer}
}

func (p *BasketEventPublisher) PublishBasketCreated(ctx context.Context, event domain.BasketEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.RestaurantID)),
		Value: payload,
	})
}
