// Package events publishes domain events to Kafka. Publishing is
// best-effort by contract: callers commit their transaction first and log
// publish failures without surfacing them.
package events

//go:generate go run go.uber.org/mock/mockgen -source=./events.go -destination=./mocks/events_mock.go -package=mocks

import (
	"context"
	"fmt"

	"adspot/config"
	"adspot/infras/kafka"
	"adspot/infras/otel"
	"adspot/shared/constant"
)

// BookingConfirmedEvent is the payload of the booking-confirmed topic.
type BookingConfirmedEvent struct {
	BookingID    string  `json:"booking_id"`
	SpaceID      string  `json:"space_id"`
	AdvertiserID string  `json:"advertiser_id"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	TotalPrice   float64 `json:"total_price"`
	ConfirmedAt  string  `json:"confirmed_at"`
}

type Publisher interface {
	BookingConfirmed(ctx context.Context, event BookingConfirmedEvent) error
}

type publisherImpl struct {
	client kafka.Client
	cfg    *config.Config
	otel   otel.Otel
}

func NewPublisher(client kafka.Client, cfg *config.Config, otel otel.Otel) Publisher {
	return &publisherImpl{
		client: client,
		cfg:    cfg,
		otel:   otel,
	}
}

func (p *publisherImpl) BookingConfirmed(ctx context.Context, event BookingConfirmedEvent) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".BookingConfirmed")
	defer scope.End()
	defer scope.TraceIfError(err)

	message := kafka.Message{
		Key:   event.BookingID,
		Value: event,
	}

	if err = p.client.SendMessages(ctx, p.cfg.Kafka.Topic.BookingConfirmed, message); err != nil {
		return fmt.Errorf("failed to publish booking confirmed event: %w", err)
	}

	return nil
}
