package postgres // import "github.com/scrynet/moderation-protocol/pkg/persistence/postgres"

import (
	"fmt"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// ProtocolEventSchema returns the query to create the protocol_event table
func ProtocolEventSchema() string {
	return ProtocolEventSchemaString("protocol_event")
}

// ProtocolEventSchemaString returns the query to create this table
func ProtocolEventSchemaString(tableName string) string {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            id SERIAL PRIMARY KEY,
            event_type TEXT,
            metadata JSONB,
            creation_timestamp BIGINT
        );
    `, tableName)
	return schema
}

// ProtocolEvent is the postgres definition of model.ProtocolEvent
type ProtocolEvent struct {
	EventType string `db:"event_type"`

	Metadata JsonbPayload `db:"metadata"`

	CreationDateTs int64 `db:"creation_timestamp"`
}

// NewProtocolEvent constructs a protocol event row for DB from a
// model.ProtocolEvent
func NewProtocolEvent(event *model.ProtocolEvent) *ProtocolEvent {
	metadata := make(JsonbPayload, len(event.Metadata()))
	for key, value := range event.Metadata() {
		metadata[key] = value
	}
	return &ProtocolEvent{
		EventType:      event.EventType(),
		Metadata:       metadata,
		CreationDateTs: event.CreationDateTs(),
	}
}

// DbToProtocolEventData creates a model.ProtocolEvent from a postgres
// ProtocolEvent row
func (e *ProtocolEvent) DbToProtocolEventData() *model.ProtocolEvent {
	metadata := make(model.Metadata, len(e.Metadata))
	for key, value := range e.Metadata {
		metadata[key] = value
	}
	return model.NewProtocolEvent(e.EventType, metadata, e.CreationDateTs)
}
