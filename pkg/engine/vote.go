package engine

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/google/uuid"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// CastVote locks stake into the escrow vault and records a vote against an
// open content item. The cooldown is content-scoped: any vote on the same
// content within VoteCooldownPeriod of the previous one is rejected, no
// matter the voter. All accumulator arithmetic is checked before the stake
// transfer is issued, so a failed call moves no value.
func (e *Engine) CastVote(contentID string, voter common.Address, voteType model.VoteType,
	stakeAmount uint64) (*model.Vote, error) {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return nil, err
	}
	content, err := e.contentPersister.ContentByID(contentID)
	if err != nil {
		return nil, err
	}
	now := e.clock.Now()

	err = e.checkActiveStatus(state)
	if err != nil {
		return nil, err
	}
	if stakeAmount < state.StakeRequired() || stakeAmount > MaxStakePerUser {
		return nil, ErrInvalidStakeAmount
	}
	if now > content.SubmissionTime()+content.VotingPeriod() {
		return nil, ErrVotingPeriodEnded
	}
	if now < content.LastVoteTimestamp()+VoteCooldownPeriod {
		return nil, ErrVotingTooFrequent
	}
	e.checkAndResetDailyLimits(state, now)
	if state.DailyVoteCount() >= MaxDailyVotes {
		return nil, ErrDailyVoteLimit
	}

	newApprove := content.ApproveVotes()
	newReject := content.RejectVotes()
	var overflow bool
	if voteType == model.VoteTypeApprove {
		newApprove, overflow = math.SafeAdd(newApprove, stakeAmount)
	} else {
		newReject, overflow = math.SafeAdd(newReject, stakeAmount)
	}
	if overflow {
		return nil, ErrCalculation
	}
	newTotalStake, overflow := math.SafeAdd(content.TotalStake(), stakeAmount)
	if overflow {
		return nil, ErrCalculation
	}
	newVoteCount, overflow := safeAddUint32(content.VoteCount(), 1)
	if overflow {
		return nil, ErrCalculation
	}
	newDailyVoteCount, overflow := safeAddUint32(state.DailyVoteCount(), 1)
	if overflow {
		return nil, ErrCalculation
	}

	err = e.transfer.Transfer(voter, e.stakeVault, stakeAmount)
	if err != nil {
		return nil, NewTransferError(err)
	}

	content.SetApproveVotes(newApprove)
	content.SetRejectVotes(newReject)
	content.SetTotalStake(newTotalStake)
	content.SetVoteCount(newVoteCount)
	content.SetLastVoteTimestamp(now)
	err = e.contentPersister.UpdateContent(content)
	if err != nil {
		return nil, err
	}

	vote := model.NewVote(uuid.New().String(), voter, contentID, voteType, stakeAmount, now)
	err = e.votePersister.CreateVote(vote)
	if err != nil {
		return nil, err
	}

	state.SetDailyVoteCount(newDailyVoteCount)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return nil, err
	}

	e.emit(model.EventTypeVoteCast, model.Metadata{
		"contentID":   contentID,
		"voter":       voter.Hex(),
		"voteType":    int(voteType),
		"stakeAmount": stakeAmount,
		"timestamp":   now,
		"voteNumber":  newVoteCount,
	})

	return vote, nil
}

// ClaimRewards pays out a single voter's reward once the stake lockup has
// elapsed: stake * rewardPerVote / totalStake, transferred from the stake
// vault. The vote transitions Active to Rewarded one way; a second claim
// fails and moves no value.
func (e *Engine) ClaimRewards(voteID string, caller common.Address) (uint64, error) {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return 0, err
	}
	err = e.checkActiveStatus(state)
	if err != nil {
		return 0, err
	}

	vote, err := e.votePersister.VoteByID(voteID)
	if err != nil {
		return 0, err
	}
	content, err := e.contentPersister.ContentByID(vote.ContentID())
	if err != nil {
		return 0, err
	}
	now := e.clock.Now()

	if now < vote.VoteTimestamp()+StakeLockupPeriod {
		return 0, ErrStakeStillLocked
	}
	if vote.Voter() != caller {
		return 0, ErrUnauthorized
	}
	if vote.Status() != model.VoteStatusActive {
		return 0, ErrRewardsAlreadyClaimed
	}

	if content.TotalStake() == 0 {
		return 0, ErrCalculation
	}
	rewardNumerator, overflow := math.SafeMul(vote.StakeAmount(), state.RewardPerVote())
	if overflow {
		return 0, ErrCalculation
	}
	rewardAmount := rewardNumerator / content.TotalStake()

	err = e.transfer.Transfer(e.stakeVault, caller, rewardAmount)
	if err != nil {
		return 0, NewTransferError(err)
	}

	vote.SetStatus(model.VoteStatusRewarded)
	err = e.votePersister.UpdateVote(vote)
	if err != nil {
		return 0, err
	}

	e.emit(model.EventTypeRewardsClaimed, model.Metadata{
		"voter":        caller.Hex(),
		"contentID":    content.ContentID(),
		"rewardAmount": rewardAmount,
		"timestamp":    now,
	})

	return rewardAmount, nil
}
