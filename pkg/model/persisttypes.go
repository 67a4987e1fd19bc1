// Package model contains the general data models and interfaces for the moderation protocol.
package model // import "github.com/scrynet/moderation-protocol/pkg/model"

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
)

// ErrPersisterNoResults is the error returned when a lookup matches no records
var ErrPersisterNoResults = errors.New("no results from persister")

// ProtocolStatePersister is the interface to store the singleton protocol
// state record
type ProtocolStatePersister interface {
	// ProtocolState retrieves the singleton protocol state record
	ProtocolState() (*ProtocolState, error)
	// CreateProtocolState creates the protocol state record
	CreateProtocolState(state *ProtocolState) error
	// UpdateProtocolState updates fields on the protocol state record
	UpdateProtocolState(state *ProtocolState) error
}

// ContentPersister is the interface to store content records
type ContentPersister interface {
	// ContentByID retrieves a content item by its identifier
	ContentByID(contentID string) (*Content, error)
	// ContentsByStatus retrieves content items with the given status
	ContentsByStatus(status ContentStatus) ([]*Content, error)
	// CreateContent creates a new content item
	CreateContent(content *Content) error
	// UpdateContent updates fields on an existing content item
	UpdateContent(content *Content) error
}

// VotePersister is the interface to store vote records
type VotePersister interface {
	// VoteByID retrieves a vote by its identifier
	VoteByID(voteID string) (*Vote, error)
	// VotesByContentID retrieves the votes cast against a content item
	VotesByContentID(contentID string) ([]*Vote, error)
	// VotesByVoter retrieves the votes cast by a voter
	VotesByVoter(voter common.Address) ([]*Vote, error)
	// ActiveVotes retrieves the votes whose rewards have not been claimed
	ActiveVotes() ([]*Vote, error)
	// CreateVote creates a new vote
	CreateVote(vote *Vote) error
	// UpdateVote updates fields on an existing vote
	UpdateVote(vote *Vote) error
}

// ProtocolEventPersister is the interface to store the emitted event log
type ProtocolEventPersister interface {
	// CreateProtocolEvent appends an event to the event log
	CreateProtocolEvent(event *ProtocolEvent) error
	// ProtocolEventsByType retrieves events of the given type
	ProtocolEventsByType(eventType string) ([]*ProtocolEvent, error)
}
