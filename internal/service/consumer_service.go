package service

import (
	"context"
	"encoding/json"
	"log"

	"cinimagic-be/internal/dto"
	"cinimagic-be/pkg/tmdb"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

const nowPlayingWarmCount = 5

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub     *gochannel.GoChannel
	topicName  string
	tmdbClient *tmdb.Client
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	tmdbClient *tmdb.Client,
) IConsumerService {
	return &consumerService{
		pubSub:     pubSub,
		topicName:  topicName,
		tmdbClient: tmdbClient,
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

// processMessage pre-warms the now-playing list and its posters so the
// first home-screen request after login is served from cache.
func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.WarmHomeCacheMessage
	err := json.Unmarshal(msg.Payload, &payload)
	if err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Warming home cache for user: %s", payload.Username)

	titles := cs.tmdbClient.NowPlaying(ctx, nowPlayingWarmCount)
	for _, title := range titles {
		cs.tmdbClient.PosterFor(ctx, title)
	}

	log.Printf("[SUCCESS] Home cache warmed: %d titles for user: %s", len(titles), payload.Username)
	msg.Ack()
}
