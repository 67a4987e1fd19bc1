package engine

// Protocol constants. Values are denominated in tokens with 6 decimals and
// seconds since epoch.
const (
	// ProgramVersion is the schema version tag written to new records
	ProgramVersion uint8 = 3

	// MaxEmergencyAdmins caps the emergency admin set so its serialized
	// size stays fixed
	MaxEmergencyAdmins = 10

	// MaxContentHashLength is the max content fingerprint length in bytes
	MaxContentHashLength = 64

	// MinVotingPeriod is the minimum voting window, 1 day
	MinVotingPeriod int64 = 86400

	// MaxVotingPeriod is the maximum voting window, 30 days
	MaxVotingPeriod int64 = 2592000

	// MinQuorumPercentage is the lowest configurable quorum percentage
	MinQuorumPercentage uint8 = 10

	// MaxQuorumPercentage is the highest configurable quorum percentage
	MaxQuorumPercentage uint8 = 90

	// StakeLockupPeriod is how long a vote's stake stays locked before its
	// reward can be claimed, 1 day
	StakeLockupPeriod int64 = 86400

	// EarlyVoterBonusPct is the declared early voter bonus percentage.
	// Informational only: the applied uplift is the hard-coded 120/100
	// multiplier in the distribution path.
	EarlyVoterBonusPct uint8 = 30

	// MaxDailySubmissions caps content submissions per rolling day
	MaxDailySubmissions uint32 = 10000

	// MaxDailyVotes caps votes per rolling day
	MaxDailyVotes uint32 = 100000

	// MaxStakePerUser is the max stake per vote, 10,000 tokens
	MaxStakePerUser uint64 = 10000000000

	// MinAIConfidence is the minimum AI score accepted at submission
	MinAIConfidence uint8 = 50

	// VoteCooldownPeriod is the per-content gap between votes in seconds
	VoteCooldownPeriod int64 = 10

	// RewardDistributionPeriod is the gap between batch distributions, 1 day
	RewardDistributionPeriod int64 = 86400

	// DailyLimitResetPeriod is the rolling window for the daily counters
	DailyLimitResetPeriod int64 = 86400

	// RewardEligibilityPeriod is how long after casting a vote remains
	// eligible for batch distribution, 30 days. Tunable design parameter.
	RewardEligibilityPeriod int64 = 2592000

	// MinStakeForRewards is the smallest stake considered in batch
	// distribution, 1 token. Tunable design parameter.
	MinStakeForRewards uint64 = 1000000

	// EarlyVoterWindow is how soon after submission a vote must land to
	// qualify for the early voter bonus. Tunable design parameter.
	EarlyVoterWindow int64 = 3600
)
