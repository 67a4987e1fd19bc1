// Package model contains the general data models and interfaces for the moderation protocol.
package model // import "github.com/scrynet/moderation-protocol/pkg/model"

import (
	"github.com/ethereum/go-ethereum/common"
)

// NewProtocolState is a convenience function to initialize a new ProtocolState struct
func NewProtocolState(admin common.Address, treasury common.Address, stakeRequired uint64,
	votingPeriod int64, quorumPercentage uint8, rewardPerVote uint64, createdTs int64,
	version uint8) *ProtocolState {
	return &ProtocolState{
		admin:                           admin,
		treasury:                        treasury,
		stakeRequired:                   stakeRequired,
		votingPeriod:                    votingPeriod,
		quorumPercentage:                quorumPercentage,
		rewardPerVote:                   rewardPerVote,
		isPaused:                        false,
		dailySubmissionCount:            0,
		dailyVoteCount:                  0,
		lastResetTimestamp:              createdTs,
		lastRewardDistributionTimestamp: createdTs,
		totalRewardsDistributed:         0,
		version:                         version,
		emergencyAdmins:                 []common.Address{admin},
	}
}

// NewProtocolStateFromValues rebuilds a ProtocolState from persisted values
func NewProtocolStateFromValues(admin common.Address, treasury common.Address,
	stakeRequired uint64, votingPeriod int64, quorumPercentage uint8, rewardPerVote uint64,
	isPaused bool, dailySubmissionCount uint32, dailyVoteCount uint32, lastResetTimestamp int64,
	lastRewardDistributionTimestamp int64, totalRewardsDistributed uint64, version uint8,
	emergencyAdmins []common.Address) *ProtocolState {
	return &ProtocolState{
		admin:                           admin,
		treasury:                        treasury,
		stakeRequired:                   stakeRequired,
		votingPeriod:                    votingPeriod,
		quorumPercentage:                quorumPercentage,
		rewardPerVote:                   rewardPerVote,
		isPaused:                        isPaused,
		dailySubmissionCount:            dailySubmissionCount,
		dailyVoteCount:                  dailyVoteCount,
		lastResetTimestamp:              lastResetTimestamp,
		lastRewardDistributionTimestamp: lastRewardDistributionTimestamp,
		totalRewardsDistributed:         totalRewardsDistributed,
		version:                         version,
		emergencyAdmins:                 emergencyAdmins,
	}
}

// ProtocolState is the singleton record holding the economic parameters, the
// pause flag, the rolling daily counters, and the emergency admin set
type ProtocolState struct {
	admin common.Address

	treasury common.Address

	stakeRequired uint64

	votingPeriod int64

	quorumPercentage uint8

	rewardPerVote uint64

	isPaused bool

	dailySubmissionCount uint32

	dailyVoteCount uint32

	lastResetTimestamp int64

	lastRewardDistributionTimestamp int64

	totalRewardsDistributed uint64

	version uint8

	emergencyAdmins []common.Address
}

// Admin returns the identity of the deploying authority
func (p *ProtocolState) Admin() common.Address {
	return p.admin
}

// Treasury returns the identity of the reward funding account
func (p *ProtocolState) Treasury() common.Address {
	return p.treasury
}

// StakeRequired returns the minimum stake per vote
func (p *ProtocolState) StakeRequired() uint64 {
	return p.stakeRequired
}

// VotingPeriod returns the number of seconds a new content item stays open
func (p *ProtocolState) VotingPeriod() int64 {
	return p.votingPeriod
}

// QuorumPercentage returns the quorum percentage
func (p *ProtocolState) QuorumPercentage() uint8 {
	return p.quorumPercentage
}

// RewardPerVote returns the reward pool sizing parameter
func (p *ProtocolState) RewardPerVote() uint64 {
	return p.rewardPerVote
}

// IsPaused returns true if the protocol is paused
func (p *ProtocolState) IsPaused() bool {
	return p.isPaused
}

// SetPaused sets the pause flag
func (p *ProtocolState) SetPaused(paused bool) {
	p.isPaused = paused
}

// DailySubmissionCount returns the rolling 24h submission counter
func (p *ProtocolState) DailySubmissionCount() uint32 {
	return p.dailySubmissionCount
}

// SetDailySubmissionCount sets the rolling 24h submission counter
func (p *ProtocolState) SetDailySubmissionCount(count uint32) {
	p.dailySubmissionCount = count
}

// DailyVoteCount returns the rolling 24h vote counter
func (p *ProtocolState) DailyVoteCount() uint32 {
	return p.dailyVoteCount
}

// SetDailyVoteCount sets the rolling 24h vote counter
func (p *ProtocolState) SetDailyVoteCount(count uint32) {
	p.dailyVoteCount = count
}

// LastResetTimestamp returns the watermark of the last daily counter reset
func (p *ProtocolState) LastResetTimestamp() int64 {
	return p.lastResetTimestamp
}

// SetLastResetTimestamp sets the watermark of the last daily counter reset
func (p *ProtocolState) SetLastResetTimestamp(ts int64) {
	p.lastResetTimestamp = ts
}

// LastRewardDistributionTimestamp returns the watermark of the last reward distribution
func (p *ProtocolState) LastRewardDistributionTimestamp() int64 {
	return p.lastRewardDistributionTimestamp
}

// SetLastRewardDistributionTimestamp sets the watermark of the last reward distribution
func (p *ProtocolState) SetLastRewardDistributionTimestamp(ts int64) {
	p.lastRewardDistributionTimestamp = ts
}

// TotalRewardsDistributed returns the cumulative rewards distributed
func (p *ProtocolState) TotalRewardsDistributed() uint64 {
	return p.totalRewardsDistributed
}

// SetTotalRewardsDistributed sets the cumulative rewards distributed
func (p *ProtocolState) SetTotalRewardsDistributed(total uint64) {
	p.totalRewardsDistributed = total
}

// Version returns the protocol schema version tag
func (p *ProtocolState) Version() uint8 {
	return p.version
}

// EmergencyAdmins returns a copy of the ordered emergency admin set
func (p *ProtocolState) EmergencyAdmins() []common.Address {
	admins := make([]common.Address, len(p.emergencyAdmins))
	copy(admins, p.emergencyAdmins)
	return admins
}

// EmergencyAdminCount returns the size of the emergency admin set
func (p *ProtocolState) EmergencyAdminCount() int {
	return len(p.emergencyAdmins)
}

// IsEmergencyAdmin returns true if the given identity is a member of the
// emergency admin set
func (p *ProtocolState) IsEmergencyAdmin(address common.Address) bool {
	for _, admin := range p.emergencyAdmins {
		if admin == address {
			return true
		}
	}
	return false
}

// AppendEmergencyAdmin appends an identity to the emergency admin set.
// Capacity and membership checks are the caller's responsibility.
func (p *ProtocolState) AppendEmergencyAdmin(address common.Address) {
	p.emergencyAdmins = append(p.emergencyAdmins, address)
}

// RemoveEmergencyAdmin removes all occurrences of the given identity from
// the emergency admin set
func (p *ProtocolState) RemoveEmergencyAdmin(address common.Address) {
	admins := p.emergencyAdmins[:0]
	for _, admin := range p.emergencyAdmins {
		if admin != address {
			admins = append(admins, admin)
		}
	}
	p.emergencyAdmins = admins
}
