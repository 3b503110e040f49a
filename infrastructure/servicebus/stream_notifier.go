package servicebus

import (
	"context"
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/messaging/azservicebus"
	"enthro-backend/domain/model"
	"enthro-backend/domain/repository"
	"enthro-backend/infrastructure/logger"
)

func NewServiceBus(ctx context.Context, namespace string) (*azservicebus.Client, error) {
	credential, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, err
	}
	return azservicebus.NewClient(namespace, credential, nil)
}

// StreamNotifier submits stream start/stop events to a Service Bus queue,
// the Azure-hosted alternative to the Pub/Sub backend.
type StreamNotifier struct {
	AzservicebusClient *azservicebus.Client
	QueueName          string
}

func NewStreamNotifier(azServiceBusClient *azservicebus.Client, queueName string) repository.IStreamNotifier {
	return &StreamNotifier{
		AzservicebusClient: azServiceBusClient,
		QueueName:          queueName,
	}
}

func (n *StreamNotifier) Notify(ctx context.Context, event model.StreamEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	sender, err := n.AzservicebusClient.NewSender(n.QueueName, nil)
	if err != nil {
		logger.GetLogger().
			WithField("error", err).
			Error("Error while making new sender service bus.")
		return err
	}
	defer func(sender *azservicebus.Sender, ctx context.Context) {
		if err := sender.Close(ctx); err != nil {
			logger.GetLogger().
				WithField("error", err).
				Error("Error while closing sender.")
		}
	}(sender, ctx)

	sbMessage := &azservicebus.Message{
		Body:    payload,
		Subject: &event.StreamAddress,
	}
	if err := sender.SendMessage(ctx, sbMessage, nil); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while sending message.")
		return err
	}

	logger.GetLogger().
		WithField("streamAddress", event.StreamAddress).
		Info("Stream event submitted")
	return nil
}
