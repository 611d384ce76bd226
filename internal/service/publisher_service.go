// FILE: internal/service/publisher_service.go
package service

import (
	"context"
	"encoding/json"
	"time"

	"project-nexus-be/internal/pkg/logger"
	"project-nexus-be/pkg/events"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// InteractionsTopic carries every shopper interaction event to the audit
// consumer.
const InteractionsTopic = "shopper.interactions"

type IPublisherService interface {
	PublishInteraction(ctx context.Context, event events.Event) error
}

// interactionMessage is the wire form of an event on the in-process bus.
type interactionMessage struct {
	EventType  string                 `json:"event_type"`
	Payload    map[string]interface{} `json:"payload"`
	OccurredAt time.Time              `json:"occurred_at"`
}

type publisherService struct {
	pubSub *gochannel.GoChannel
	log    logger.ILogger
}

func NewPublisherService(pubSub *gochannel.GoChannel, log logger.ILogger) IPublisherService {
	return &publisherService{
		pubSub: pubSub,
		log:    log,
	}
}

func (p *publisherService) PublishInteraction(_ context.Context, event events.Event) error {
	payload, err := json.Marshal(interactionMessage{
		EventType:  event.EventType(),
		Payload:    event.Payload(),
		OccurredAt: event.Timestamp(),
	})
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payload)
	if err := p.pubSub.Publish(InteractionsTopic, msg); err != nil {
		p.log.Error("publisher", "failed to publish interaction", map[string]interface{}{
			"event_type": event.EventType(),
			"error":      err.Error(),
		})
		return err
	}
	return nil
}
