package postgres // import "github.com/scrynet/moderation-protocol/pkg/persistence/postgres"

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// ProtocolStateSchema returns the query to create the protocol_state table
func ProtocolStateSchema() string {
	return ProtocolStateSchemaString("protocol_state")
}

// ProtocolStateSchemaString returns the query to create this table
func ProtocolStateSchemaString(tableName string) string {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            id SERIAL PRIMARY KEY,
            admin TEXT,
            treasury TEXT,
            stake_required NUMERIC,
            voting_period BIGINT,
            quorum_percentage INT,
            reward_per_vote NUMERIC,
            is_paused BOOL,
            daily_submission_count BIGINT,
            daily_vote_count BIGINT,
            last_reset_timestamp BIGINT,
            last_reward_distribution_timestamp BIGINT,
            total_rewards_distributed NUMERIC,
            version INT,
            emergency_admins TEXT
        );
    `, tableName)
	return schema
}

// ProtocolState is the postgres definition of model.ProtocolState
// NOTE: bigint in postgres: -9223372036854775808 to +9223372036854775807
// uint64 in golang: 0 to 18446744073709551615, so token amounts go in NUMERIC
type ProtocolState struct {
	Admin string `db:"admin"`

	Treasury string `db:"treasury"`

	StakeRequired uint64 `db:"stake_required"`

	VotingPeriod int64 `db:"voting_period"`

	QuorumPercentage int `db:"quorum_percentage"`

	RewardPerVote uint64 `db:"reward_per_vote"`

	IsPaused bool `db:"is_paused"`

	DailySubmissionCount int64 `db:"daily_submission_count"`

	DailyVoteCount int64 `db:"daily_vote_count"`

	LastResetTimestamp int64 `db:"last_reset_timestamp"`

	LastRewardDistributionTimestamp int64 `db:"last_reward_distribution_timestamp"`

	TotalRewardsDistributed uint64 `db:"total_rewards_distributed"`

	Version int `db:"version"`

	EmergencyAdmins string `db:"emergency_admins"`
}

// NewProtocolState constructs a protocol state row for DB from a
// model.ProtocolState
func NewProtocolState(state *model.ProtocolState) *ProtocolState {
	return &ProtocolState{
		Admin:                           state.Admin().Hex(),
		Treasury:                        state.Treasury().Hex(),
		StakeRequired:                   state.StakeRequired(),
		VotingPeriod:                    state.VotingPeriod(),
		QuorumPercentage:                int(state.QuorumPercentage()),
		RewardPerVote:                   state.RewardPerVote(),
		IsPaused:                        state.IsPaused(),
		DailySubmissionCount:            int64(state.DailySubmissionCount()),
		DailyVoteCount:                  int64(state.DailyVoteCount()),
		LastResetTimestamp:              state.LastResetTimestamp(),
		LastRewardDistributionTimestamp: state.LastRewardDistributionTimestamp(),
		TotalRewardsDistributed:         state.TotalRewardsDistributed(),
		Version:                         int(state.Version()),
		EmergencyAdmins:                 ListCommonAddressesToString(state.EmergencyAdmins()),
	}
}

// DbToProtocolStateData creates a model.ProtocolState from a postgres
// ProtocolState row
func (p *ProtocolState) DbToProtocolStateData() *model.ProtocolState {
	return model.NewProtocolStateFromValues(
		common.HexToAddress(p.Admin),
		common.HexToAddress(p.Treasury),
		p.StakeRequired,
		p.VotingPeriod,
		uint8(p.QuorumPercentage),
		p.RewardPerVote,
		p.IsPaused,
		uint32(p.DailySubmissionCount),
		uint32(p.DailyVoteCount),
		p.LastResetTimestamp,
		p.LastRewardDistributionTimestamp,
		p.TotalRewardsDistributed,
		uint8(p.Version),
		StringToCommonAddressesList(p.EmergencyAdmins),
	)
}
