package storage

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"

	"foodcourt/internal/domain"
)

type OrderEventPublisher struct {
	Writer *kafka.Writer
}

func NewOrderEventPublisher(writer *kafka.Writer) *OrderEventPublisher {
	return &OrderEventPublisher{Writer: writer}
}

func (p *OrderEventPublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	payload, _ := json.Marshal(event)
	return p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(event.OrderID)),
		Value: payload,
	})
}
