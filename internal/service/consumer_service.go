package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-shopping-be/internal/dto"
	"ai-shopping-be/internal/entity"
	"ai-shopping-be/internal/repository/contract"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService subscribes to search.completed events and persists them as
// search history rows, keeping the write off the request path.
type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	histories contract.SearchHistoryRepository
	log       *zap.Logger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	histories contract.SearchHistoryRepository,
	log *zap.Logger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		histories: histories,
		log:       log,
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
	var payload dto.SearchCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.log.Error("failed to unmarshal search.completed message", zap.Error(err))
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	history := entity.SearchHistory{
		Id:          uuid.New(),
		UserId:      payload.UserId,
		Query:       payload.Query,
		SearchMode:  payload.SearchMode,
		ResultCount: payload.ResultCount,
		CreatedAt:   time.Now(),
	}

	if err := cs.histories.Create(ctx, &history); err != nil {
		cs.log.Error("failed to persist search history", zap.Error(err))
		msg.Nack() // Nack for retriable errors
		return
	}

	msg.Ack()
}
