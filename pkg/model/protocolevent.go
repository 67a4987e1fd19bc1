// Package model contains the general data models and interfaces for the moderation protocol.
package model // import "github.com/scrynet/moderation-protocol/pkg/model"

// Metadata represents any metadata associated with a protocol event
type Metadata map[string]interface{}

// Event type names emitted by the engine
const (
	// EventTypeProtocolInitialized is emitted once when the protocol record is created
	EventTypeProtocolInitialized = "ProtocolInitialized"

	// EventTypeContentSubmitted is emitted when a content item is submitted
	EventTypeContentSubmitted = "ContentSubmitted"

	// EventTypeVoteCast is emitted when a vote is cast
	EventTypeVoteCast = "VoteCast"

	// EventTypeDecisionFinalized is emitted when a content item is finalized
	EventTypeDecisionFinalized = "DecisionFinalized"

	// EventTypeRewardsClaimed is emitted when a voter claims their reward
	EventTypeRewardsClaimed = "RewardsClaimed"

	// EventTypeProtocolPaused is emitted when the protocol is paused
	EventTypeProtocolPaused = "ProtocolPaused"

	// EventTypeProtocolUnpaused is emitted when the protocol is unpaused
	EventTypeProtocolUnpaused = "ProtocolUnpaused"

	// EventTypeEmergencyAdminAdded is emitted when an emergency admin is added
	EventTypeEmergencyAdminAdded = "EmergencyAdminAdded"

	// EventTypeEmergencyAdminRemoved is emitted when an emergency admin is removed
	EventTypeEmergencyAdminRemoved = "EmergencyAdminRemoved"

	// EventTypeRewardDistributed is emitted per voter during batch distribution
	EventTypeRewardDistributed = "RewardDistributed"

	// EventTypeRewardsDistributed is emitted with the batch distribution total
	EventTypeRewardsDistributed = "RewardsDistributed"
)

// NewProtocolEvent is a convenience function to init a new ProtocolEvent struct
func NewProtocolEvent(eventType string, metadata Metadata, creationDateTs int64) *ProtocolEvent {
	return &ProtocolEvent{
		eventType:      eventType,
		metadata:       metadata,
		creationDateTs: creationDateTs,
	}
}

// ProtocolEvent represents a single event emitted by the engine. Meant to be
// a central log of these events for audit.
type ProtocolEvent struct {
	eventType string

	metadata Metadata

	creationDateTs int64
}

// EventType returns the type of this event
func (e *ProtocolEvent) EventType() string {
	return e.eventType
}

// Metadata returns the Metadata associated with the event
func (e *ProtocolEvent) Metadata() Metadata {
	return e.metadata
}

// CreationDateTs returns the timestamp the event was emitted
func (e *ProtocolEvent) CreationDateTs() int64 {
	return e.creationDateTs
}
