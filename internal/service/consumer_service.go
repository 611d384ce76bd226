// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"project-nexus-be/internal/entity"
	"project-nexus-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains the interactions topic into the user_interactions
// table so the dashboard's activity feed survives restarts.
type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	uowFactory unitofwork.RepositoryFactory
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		uowFactory: uowFactory,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload interactionMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal interaction: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	userIDStr, _ := payload.Payload["user_id"].(string)
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		log.Printf("[ERROR] Interaction %s has no valid user_id", payload.EventType)
		msg.Ack() // Unattributable, nothing to retry
		return
	}

	var productName *string
	if name, ok := payload.Payload["product_name"].(string); ok && name != "" {
		productName = &name
	}

	interaction := &entity.Interaction{
		Id:          uuid.New(),
		UserId:      userID,
		EventType:   payload.EventType,
		ProductName: productName,
		ContextData: payload.Payload,
		CreatedAt:   payload.OccurredAt,
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)
	if err := uow.InteractionRepository().Create(ctx, interaction); err != nil {
		log.Printf("[ERROR] Failed to persist interaction %s: %v", payload.EventType, err)
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
