package postgres // import "github.com/scrynet/moderation-protocol/pkg/persistence/postgres"

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// ContentSchema returns the query to create the content table
func ContentSchema() string {
	return ContentSchemaString("content")
}

// ContentSchemaString returns the query to create this table
func ContentSchemaString(tableName string) string {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            content_id TEXT PRIMARY KEY,
            submitter TEXT,
            content_hash TEXT,
            content_type INT,
            ai_score INT,
            submission_time BIGINT,
            status INT,
            approve_votes NUMERIC,
            reject_votes NUMERIC,
            total_stake NUMERIC,
            voting_period BIGINT,
            quorum_percentage INT,
            vote_count BIGINT,
            last_vote_timestamp BIGINT,
            version INT,
            moderation_flags INT
        );
    `, tableName)
	return schema
}

// Content is the postgres definition of model.Content
type Content struct {
	ContentID string `db:"content_id"`

	Submitter string `db:"submitter"`

	ContentHash string `db:"content_hash"`

	ContentType int `db:"content_type"`

	AIScore int `db:"ai_score"`

	SubmissionTime int64 `db:"submission_time"`

	Status int `db:"status"`

	ApproveVotes uint64 `db:"approve_votes"`

	RejectVotes uint64 `db:"reject_votes"`

	TotalStake uint64 `db:"total_stake"`

	VotingPeriod int64 `db:"voting_period"`

	QuorumPercentage int `db:"quorum_percentage"`

	VoteCount int64 `db:"vote_count"`

	LastVoteTimestamp int64 `db:"last_vote_timestamp"`

	Version int `db:"version"`

	ModerationFlags int `db:"moderation_flags"`
}

// NewContent constructs a content row for DB from a model.Content
func NewContent(content *model.Content) *Content {
	return &Content{
		ContentID:         content.ContentID(),
		Submitter:         content.Submitter().Hex(),
		ContentHash:       hexutil.Encode(content.ContentHash()),
		ContentType:       int(content.ContentType()),
		AIScore:           int(content.AIScore()),
		SubmissionTime:    content.SubmissionTime(),
		Status:            int(content.Status()),
		ApproveVotes:      content.ApproveVotes(),
		RejectVotes:       content.RejectVotes(),
		TotalStake:        content.TotalStake(),
		VotingPeriod:      content.VotingPeriod(),
		QuorumPercentage:  int(content.QuorumPercentage()),
		VoteCount:         int64(content.VoteCount()),
		LastVoteTimestamp: content.LastVoteTimestamp(),
		Version:           int(content.Version()),
		ModerationFlags:   int(content.ModerationFlags()),
	}
}

// DbToContentData creates a model.Content from a postgres Content row
func (c *Content) DbToContentData() (*model.Content, error) {
	contentHash, err := hexutil.Decode(c.ContentHash)
	if err != nil {
		return nil, fmt.Errorf("Error decoding content hash: %v", err)
	}
	return model.NewContentFromValues(
		c.ContentID,
		common.HexToAddress(c.Submitter),
		contentHash,
		model.ContentType(c.ContentType),
		uint8(c.AIScore),
		c.SubmissionTime,
		model.ContentStatus(c.Status),
		c.ApproveVotes,
		c.RejectVotes,
		c.TotalStake,
		c.VotingPeriod,
		uint8(c.QuorumPercentage),
		uint32(c.VoteCount),
		c.LastVoteTimestamp,
		uint8(c.Version),
		uint8(c.ModerationFlags),
	), nil
}
