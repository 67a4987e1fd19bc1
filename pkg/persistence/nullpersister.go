// Package persistence contains components to interact with the DB
package persistence // import "github.com/scrynet/moderation-protocol/pkg/persistence"

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// NullPersister is a persister that does nothing but return default values
type NullPersister struct{}

// ProtocolState returns no protocol state record
func (n *NullPersister) ProtocolState() (*model.ProtocolState, error) {
	return nil, model.ErrPersisterNoResults
}

// CreateProtocolState does nothing
func (n *NullPersister) CreateProtocolState(state *model.ProtocolState) error {
	return nil
}

// UpdateProtocolState does nothing
func (n *NullPersister) UpdateProtocolState(state *model.ProtocolState) error {
	return nil
}

// ContentByID returns no content
func (n *NullPersister) ContentByID(contentID string) (*model.Content, error) {
	return nil, model.ErrPersisterNoResults
}

// ContentsByStatus returns an empty list of content
func (n *NullPersister) ContentsByStatus(status model.ContentStatus) ([]*model.Content, error) {
	return []*model.Content{}, nil
}

// CreateContent does nothing
func (n *NullPersister) CreateContent(content *model.Content) error {
	return nil
}

// UpdateContent does nothing
func (n *NullPersister) UpdateContent(content *model.Content) error {
	return nil
}

// VoteByID returns no vote
func (n *NullPersister) VoteByID(voteID string) (*model.Vote, error) {
	return nil, model.ErrPersisterNoResults
}

// VotesByContentID returns an empty list of votes
func (n *NullPersister) VotesByContentID(contentID string) ([]*model.Vote, error) {
	return []*model.Vote{}, nil
}

// VotesByVoter returns an empty list of votes
func (n *NullPersister) VotesByVoter(voter common.Address) ([]*model.Vote, error) {
	return []*model.Vote{}, nil
}

// ActiveVotes returns an empty list of votes
func (n *NullPersister) ActiveVotes() ([]*model.Vote, error) {
	return []*model.Vote{}, nil
}

// CreateVote does nothing
func (n *NullPersister) CreateVote(vote *model.Vote) error {
	return nil
}

// UpdateVote does nothing
func (n *NullPersister) UpdateVote(vote *model.Vote) error {
	return nil
}

// CreateProtocolEvent does nothing
func (n *NullPersister) CreateProtocolEvent(event *model.ProtocolEvent) error {
	return nil
}

// ProtocolEventsByType returns an empty list of events
func (n *NullPersister) ProtocolEventsByType(eventType string) ([]*model.ProtocolEvent, error) {
	return []*model.ProtocolEvent{}, nil
}
