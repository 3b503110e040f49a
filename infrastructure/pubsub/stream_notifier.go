package pubsub

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/pubsub"
	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/logger"
)

// StreamNotifier submits stream start/stop events to a Pub/Sub topic for the
// notification workers. The topic is created on first use if missing.
type StreamNotifier struct {
	PubSubClient *pubsub.Client
	TopicName    string
}

func NewStreamNotifier(pubSubClient *pubsub.Client, topicName string) repository.IStreamNotifier {
	return &StreamNotifier{
		PubSubClient: pubSubClient,
		TopicName:    topicName,
	}
}

func (n *StreamNotifier) Notify(ctx context.Context, event model.StreamEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	topic := n.PubSubClient.Topic(n.TopicName)
	exists, err := topic.Exists(ctx)
	if err != nil {
		return err
	}
	if !exists {
		logger.GetLogger().WithField("topic", n.TopicName).Info("Topic doesn't exist - creating it")
		if _, err = n.PubSubClient.CreateTopic(ctx, n.TopicName); err != nil {
			return err
		}
	}

	msg := &pubsub.Message{
		Data: payload,
		Attributes: map[string]string{
			"streamAddress": event.StreamAddress,
		},
	}

	serverId, err := topic.Publish(ctx, msg).Get(ctx)
	if err != nil {
		return err
	}

	logger.GetLogger().
		WithField("server ID", serverId).
		WithField("streamAddress", event.StreamAddress).
		Info("Stream event published")
	return nil
}
