// Package events delivers order and invoice events to Amazon SNS, or to the
// application log when no topic is configured.
package events

import (
	"context"
	"encoding/json"
	"fmt"

	"storefront/internal/core/ports"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
)

const eventTypeAttribute = "event_type"

// SNSClient is the subset of *sns.Client used by SNSPublisher.
type SNSClient interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type SNSPublisher struct {
	client   SNSClient
	topicARN string
}

func NewSNSPublisher(client SNSClient, topicARN string) *SNSPublisher {
	return &SNSPublisher{client: client, topicARN: topicARN}
}

// NewSNSPublisherFromEnv builds the client from the default AWS credential chain.
func NewSNSPublisherFromEnv(ctx context.Context, region, topicARN string) (*SNSPublisher, error) {
	var opts []func(*config.LoadOptions) error
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	return NewSNSPublisher(sns.NewFromConfig(cfg), topicARN), nil
}

// Publish sends the event as a JSON message. The event name travels both in
// the body and as the event_type message attribute for subscription filters.
func (p *SNSPublisher) Publish(ctx context.Context, event ports.Event) error {
	body, err := encode(event)
	if err != nil {
		return err
	}

	_, err = p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			eventTypeAttribute: {
				DataType:    aws.String("String"),
				StringValue: aws.String(event.EventName()),
			},
		},
	})
	if err != nil {
		return fmt.Errorf("publish %s: %w", event.EventName(), err)
	}
	return nil
}

type envelope struct {
	EventType string      `json:"event_type"`
	Payload   ports.Event `json:"payload"`
}

func encode(event ports.Event) ([]byte, error) {
	body, err := json.Marshal(envelope{EventType: event.EventName(), Payload: event})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event payload: %w", err)
	}
	return body, nil
}
