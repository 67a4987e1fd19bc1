// Package model contains the general data models and interfaces for the moderation protocol.
package model // import "github.com/scrynet/moderation-protocol/pkg/model"

import (
	"github.com/ethereum/go-ethereum/common"
)

// ContentStatus specifies the current lifecycle state of a content item
type ContentStatus int

const (
	// ContentStatusPending is a content item still inside its voting window
	ContentStatusPending ContentStatus = iota

	// ContentStatusApproved is a content item finalized as approved
	ContentStatusApproved

	// ContentStatusRejected is a content item finalized as rejected
	ContentStatusRejected
)

// ContentType specifies the kind of content submitted for moderation
type ContentType int

const (
	// ContentTypeText is plain text content
	ContentTypeText ContentType = iota

	// ContentTypeImage is image content
	ContentTypeImage

	// ContentTypeAudio is audio content
	ContentTypeAudio

	// ContentTypeLink is an external link
	ContentTypeLink

	// ContentTypeVideo is video content. Not accepted for submission.
	ContentTypeVideo

	// ContentTypeDeFi is DeFi related content. Not accepted for submission.
	ContentTypeDeFi
)

// NewContent is a convenience function to initialize a new Content struct
// in the pending state with zeroed vote accumulators
func NewContent(contentID string, submitter common.Address, contentHash []byte,
	contentType ContentType, aiScore uint8, submissionTime int64, votingPeriod int64,
	quorumPercentage uint8, version uint8) *Content {
	return &Content{
		contentID:        contentID,
		submitter:        submitter,
		contentHash:      contentHash,
		contentType:      contentType,
		aiScore:          aiScore,
		submissionTime:   submissionTime,
		status:           ContentStatusPending,
		votingPeriod:     votingPeriod,
		quorumPercentage: quorumPercentage,
		version:          version,
	}
}

// NewContentFromValues rebuilds a Content from persisted values
func NewContentFromValues(contentID string, submitter common.Address, contentHash []byte,
	contentType ContentType, aiScore uint8, submissionTime int64, status ContentStatus,
	approveVotes uint64, rejectVotes uint64, totalStake uint64, votingPeriod int64,
	quorumPercentage uint8, voteCount uint32, lastVoteTimestamp int64, version uint8,
	moderationFlags uint8) *Content {
	return &Content{
		contentID:         contentID,
		submitter:         submitter,
		contentHash:       contentHash,
		contentType:       contentType,
		aiScore:           aiScore,
		submissionTime:    submissionTime,
		status:            status,
		approveVotes:      approveVotes,
		rejectVotes:       rejectVotes,
		totalStake:        totalStake,
		votingPeriod:      votingPeriod,
		quorumPercentage:  quorumPercentage,
		voteCount:         voteCount,
		lastVoteTimestamp: lastVoteTimestamp,
		version:           version,
		moderationFlags:   moderationFlags,
	}
}

// Content represents a content item submitted for moderation. The voting
// period and quorum percentage are snapshotted from the protocol state at
// submission time so later configuration changes do not alter in-flight items.
type Content struct {
	contentID string

	submitter common.Address

	contentHash []byte

	contentType ContentType

	aiScore uint8

	submissionTime int64

	status ContentStatus

	approveVotes uint64

	rejectVotes uint64

	totalStake uint64

	votingPeriod int64

	quorumPercentage uint8

	voteCount uint32

	lastVoteTimestamp int64

	version uint8

	moderationFlags uint8
}

// ContentID returns the identifier of this content item
func (c *Content) ContentID() string {
	return c.contentID
}

// Submitter returns the identity of the submitter
func (c *Content) Submitter() common.Address {
	return c.submitter
}

// ContentHash returns the content fingerprint
func (c *Content) ContentHash() []byte {
	return c.contentHash
}

// ContentType returns the kind of content
func (c *Content) ContentType() ContentType {
	return c.contentType
}

// AIScore returns the AI confidence score given at submission
func (c *Content) AIScore() uint8 {
	return c.aiScore
}

// SubmissionTime returns the timestamp of the submission
func (c *Content) SubmissionTime() int64 {
	return c.submissionTime
}

// Status returns the lifecycle state of this content item
func (c *Content) Status() ContentStatus {
	return c.status
}

// SetStatus sets the lifecycle state of this content item
func (c *Content) SetStatus(status ContentStatus) {
	c.status = status
}

// ApproveVotes returns the accumulated approve stake
func (c *Content) ApproveVotes() uint64 {
	return c.approveVotes
}

// SetApproveVotes sets the accumulated approve stake
func (c *Content) SetApproveVotes(votes uint64) {
	c.approveVotes = votes
}

// RejectVotes returns the accumulated reject stake
func (c *Content) RejectVotes() uint64 {
	return c.rejectVotes
}

// SetRejectVotes sets the accumulated reject stake
func (c *Content) SetRejectVotes(votes uint64) {
	c.rejectVotes = votes
}

// TotalStake returns the total stake locked against this content item
func (c *Content) TotalStake() uint64 {
	return c.totalStake
}

// SetTotalStake sets the total stake locked against this content item
func (c *Content) SetTotalStake(stake uint64) {
	c.totalStake = stake
}

// VotingPeriod returns the voting period snapshotted at submission
func (c *Content) VotingPeriod() int64 {
	return c.votingPeriod
}

// QuorumPercentage returns the quorum percentage snapshotted at submission
func (c *Content) QuorumPercentage() uint8 {
	return c.quorumPercentage
}

// VoteCount returns the number of votes cast against this content item
func (c *Content) VoteCount() uint32 {
	return c.voteCount
}

// SetVoteCount sets the number of votes cast against this content item
func (c *Content) SetVoteCount(count uint32) {
	c.voteCount = count
}

// LastVoteTimestamp returns the timestamp of the most recent vote, the
// watermark used for the per-content cooldown
func (c *Content) LastVoteTimestamp() int64 {
	return c.lastVoteTimestamp
}

// SetLastVoteTimestamp sets the timestamp of the most recent vote
func (c *Content) SetLastVoteTimestamp(ts int64) {
	c.lastVoteTimestamp = ts
}

// Version returns the schema version tag of this record
func (c *Content) Version() uint8 {
	return c.version
}

// ModerationFlags returns the moderation flag bits
func (c *Content) ModerationFlags() uint8 {
	return c.moderationFlags
}
