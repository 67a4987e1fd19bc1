// Package events contains the notification sink for protocol events.
package events // import "github.com/scrynet/moderation-protocol/pkg/events"

import (
	"context"
	"encoding/json"

	"cloud.google.com/go/pubsub"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// Emitter is the side channel the engine pushes protocol events into.
// Emission is fire-and-forget from the engine's point of view.
type Emitter interface {
	// Emit publishes a protocol event
	Emit(event *model.ProtocolEvent) error
}

// NullEmitter is an Emitter that does nothing
type NullEmitter struct{}

// Emit does nothing
func (n *NullEmitter) Emit(event *model.ProtocolEvent) error {
	return nil
}

// EventMessage is the wire payload published for a protocol event
type EventMessage struct {
	EventType string         `json:"eventType"`
	Metadata  model.Metadata `json:"metadata"`
	Timestamp int64          `json:"timestamp"`
}

// NewGooglePubSubEmitter creates a new emitter publishing to the given
// Google Pub/Sub topic
func NewGooglePubSubEmitter(projectID string, topicName string) (*GooglePubSubEmitter, error) {
	ctx := context.Background()
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, err
	}
	return &GooglePubSubEmitter{
		client: client,
		topic:  client.Topic(topicName),
	}, nil
}

// GooglePubSubEmitter publishes protocol events to a Google Pub/Sub topic
type GooglePubSubEmitter struct {
	client *pubsub.Client
	topic  *pubsub.Topic
}

// Emit publishes a protocol event to the topic
func (g *GooglePubSubEmitter) Emit(event *model.ProtocolEvent) error {
	payload, err := json.Marshal(&EventMessage{
		EventType: event.EventType(),
		Metadata:  event.Metadata(),
		Timestamp: event.CreationDateTs(),
	})
	if err != nil {
		return err
	}
	ctx := context.Background()
	result := g.topic.Publish(ctx, &pubsub.Message{Data: payload})
	_, err = result.Get(ctx)
	return err
}

// Close releases the underlying pubsub client
func (g *GooglePubSubEmitter) Close() error {
	g.topic.Stop()
	return g.client.Close()
}
