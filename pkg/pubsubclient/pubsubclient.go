package pubsubclient

import (
	"cloud.google.com/go/pubsub"
	"context"
	"fmt"
	"google.golang.org/api/option"
)

// Message ...
type Message struct {
	Data       []byte
	Attributes map[string]string

	// OrderingKey messages with the same key are delivered in publish order
	OrderingKey string
}

// Publisher publishes to a single topic with message ordering enabled
type Publisher struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// New creates the topic when it does not exist
func New(ctx context.Context, projectID string, topicID string, opts ...option.ClientOption) (*Publisher, error) {
	client, err := pubsub.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Pub/Sub client: %w", err)
	}

	topic := client.Topic(topicID)
	exists, err := topic.Exists(ctx)
	if err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to check topic existence: %w", err)
	}
	if !exists {
		topic, err = client.CreateTopic(ctx, topicID)
		if err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to create topic: %w", err)
		}
	}
	topic.EnableMessageOrdering = true

	return &Publisher{
		client: client,
		topic:  topic,
	}, nil
}

// Publish sends all messages then waits for the results in order.
// Returns the number of leading messages confirmed before the first failure.
func (p *Publisher) Publish(ctx context.Context, msgs []Message) (int, error) {
	results := make([]*pubsub.PublishResult, 0, len(msgs))
	for _, msg := range msgs {
		results = append(results, p.topic.Publish(ctx, &pubsub.Message{
			Data:        msg.Data,
			Attributes:  msg.Attributes,
			OrderingKey: msg.OrderingKey,
		}))
	}

	for i, r := range results {
		if _, err := r.Get(ctx); err != nil {
			p.resumeFrom(msgs[i:])
			return i, fmt.Errorf("failed to publish message: %w", err)
		}
	}
	return len(msgs), nil
}

func (p *Publisher) resumeFrom(msgs []Message) {
	for _, msg := range msgs {
		if msg.OrderingKey != "" {
			p.topic.ResumePublish(msg.OrderingKey)
		}
	}
}

// Close flushes pending messages
func (p *Publisher) Close() error {
	p.topic.Stop()
	return p.client.Close()
}
