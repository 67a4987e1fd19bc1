package postgres // import "github.com/scrynet/moderation-protocol/pkg/persistence/postgres"

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// VoteSchema returns the query to create the vote table
func VoteSchema() string {
	return VoteSchemaString("vote")
}

// VoteSchemaString returns the query to create this table
func VoteSchemaString(tableName string) string {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            vote_id TEXT PRIMARY KEY,
            voter TEXT,
            content_id TEXT,
            vote_type INT,
            stake_amount NUMERIC,
            vote_timestamp BIGINT,
            status INT
        );
    `, tableName)
	return schema
}

// Vote is the postgres definition of model.Vote
type Vote struct {
	VoteID string `db:"vote_id"`

	Voter string `db:"voter"`

	ContentID string `db:"content_id"`

	VoteType int `db:"vote_type"`

	StakeAmount uint64 `db:"stake_amount"`

	VoteTimestamp int64 `db:"vote_timestamp"`

	Status int `db:"status"`
}

// NewVote constructs a vote row for DB from a model.Vote
func NewVote(vote *model.Vote) *Vote {
	return &Vote{
		VoteID:        vote.VoteID(),
		Voter:         vote.Voter().Hex(),
		ContentID:     vote.ContentID(),
		VoteType:      int(vote.VoteType()),
		StakeAmount:   vote.StakeAmount(),
		VoteTimestamp: vote.VoteTimestamp(),
		Status:        int(vote.Status()),
	}
}

// DbToVoteData creates a model.Vote from a postgres Vote row
func (v *Vote) DbToVoteData() *model.Vote {
	return model.NewVoteFromValues(
		v.VoteID,
		common.HexToAddress(v.Voter),
		v.ContentID,
		model.VoteType(v.VoteType),
		v.StakeAmount,
		v.VoteTimestamp,
		model.VoteStatus(v.Status),
	)
}
