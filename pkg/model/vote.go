// Package model contains the general data models and interfaces for the moderation protocol.
package model // import "github.com/scrynet/moderation-protocol/pkg/model"

import (
	"github.com/ethereum/go-ethereum/common"
)

// VoteType specifies the direction of a vote
type VoteType int

const (
	// VoteTypeApprove is a vote to approve the content item
	VoteTypeApprove VoteType = iota

	// VoteTypeReject is a vote to reject the content item
	VoteTypeReject
)

// VoteStatus specifies the reward state of a vote
type VoteStatus int

const (
	// VoteStatusActive is a vote whose reward has not been claimed
	VoteStatusActive VoteStatus = iota

	// VoteStatusRewarded is a vote whose reward has been paid out. Terminal.
	VoteStatusRewarded
)

// NewVote is a convenience function to initialize a new active Vote struct
func NewVote(voteID string, voter common.Address, contentID string, voteType VoteType,
	stakeAmount uint64, voteTimestamp int64) *Vote {
	return &Vote{
		voteID:        voteID,
		voter:         voter,
		contentID:     contentID,
		voteType:      voteType,
		stakeAmount:   stakeAmount,
		voteTimestamp: voteTimestamp,
		status:        VoteStatusActive,
	}
}

// NewVoteFromValues rebuilds a Vote from persisted values
func NewVoteFromValues(voteID string, voter common.Address, contentID string,
	voteType VoteType, stakeAmount uint64, voteTimestamp int64, status VoteStatus) *Vote {
	return &Vote{
		voteID:        voteID,
		voter:         voter,
		contentID:     contentID,
		voteType:      voteType,
		stakeAmount:   stakeAmount,
		voteTimestamp: voteTimestamp,
		status:        status,
	}
}

// Vote represents a single stake-locked vote against a content item. The
// contentID is a non-owning back reference to the content record.
type Vote struct {
	voteID string

	voter common.Address

	contentID string

	voteType VoteType

	stakeAmount uint64

	voteTimestamp int64

	status VoteStatus
}

// VoteID returns the identifier of this vote
func (v *Vote) VoteID() string {
	return v.voteID
}

// Voter returns the identity of the voter
func (v *Vote) Voter() common.Address {
	return v.voter
}

// ContentID returns the identifier of the content item voted on
func (v *Vote) ContentID() string {
	return v.contentID
}

// VoteType returns the direction of the vote
func (v *Vote) VoteType() VoteType {
	return v.voteType
}

// StakeAmount returns the stake locked by this vote
func (v *Vote) StakeAmount() uint64 {
	return v.stakeAmount
}

// VoteTimestamp returns the timestamp the vote was cast
func (v *Vote) VoteTimestamp() int64 {
	return v.voteTimestamp
}

// Status returns the reward state of this vote
func (v *Vote) Status() VoteStatus {
	return v.status
}

// SetStatus sets the reward state of this vote
func (v *Vote) SetStatus(status VoteStatus) {
	v.status = status
}
