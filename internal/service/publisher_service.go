package service

import (
	"context"
	"encoding/json"

	"cinimagic-be/internal/dto"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IPublisherService interface {
	PublishWarmHomeCache(ctx context.Context, username string) error
}

type publisherService struct {
	pubSub    *gochannel.GoChannel
	topicName string
}

func NewPublisherService(pubSub *gochannel.GoChannel, topicName string) IPublisherService {
	return &publisherService{
		pubSub:    pubSub,
		topicName: topicName,
	}
}

// PublishWarmHomeCache hands off home-screen prefetching to the background
// consumer so the login response does not wait on external APIs.
func (p *publisherService) PublishWarmHomeCache(ctx context.Context, username string) error {
	payload := dto.WarmHomeCacheMessage{Username: username}

	payloadJson, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := message.NewMessage(watermill.NewUUID(), payloadJson)
	return p.pubSub.Publish(p.topicName, msg)
}
