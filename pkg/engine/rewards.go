package engine

import (
	"math/big"

	log "github.com/golang/glog"

	"github.com/ethereum/go-ethereum/common/math"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// DistributeRewards runs the periodic batch payout over the supplied
// candidate votes. Ineligible votes are skipped, not errored. Each payout is
// the voter's stake share of the reward pool, decayed by the time-weight
// tiers and uplifted 20% for early voters. Every payout is computed and the
// checked sum is verified against the pool before any transfer is issued, so
// a batch the pool cannot cover fails before paying anyone. Returns the
// total amount distributed.
func (e *Engine) DistributeRewards(candidates []*model.Vote) (uint64, error) {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return 0, err
	}
	err = e.checkActiveStatus(state)
	if err != nil {
		return 0, err
	}

	now := e.clock.Now()
	if now < state.LastRewardDistributionTimestamp()+RewardDistributionPeriod {
		return 0, ErrRewardDistributionNotDue
	}

	totalStake, err := e.transfer.Balance(e.stakeVault)
	if err != nil {
		return 0, NewTransferError(err)
	}
	rewardPool, err := e.transfer.Balance(e.rewardVault)
	if err != nil {
		return 0, NewTransferError(err)
	}
	if rewardPool == 0 {
		return 0, ErrInsufficientRewardPool
	}

	type payout struct {
		vote   *model.Vote
		amount uint64
	}

	var payouts []payout
	var totalDistributed uint64
	for _, vote := range candidates {
		if !e.voteEligible(vote, now) {
			continue
		}

		rewardAmount, calcErr := calculateVoterReward(vote.StakeAmount(), totalStake,
			rewardPool, vote.VoteTimestamp(), now)
		if calcErr != nil {
			return 0, calcErr
		}

		early, earlyErr := e.isEarlyVoter(vote)
		if earlyErr != nil {
			return 0, earlyErr
		}
		if early {
			boosted, overflow := math.SafeMul(rewardAmount, 120)
			if overflow {
				return 0, ErrCalculation
			}
			rewardAmount = boosted / 100
		}

		var overflow bool
		totalDistributed, overflow = math.SafeAdd(totalDistributed, rewardAmount)
		if overflow {
			return 0, ErrCalculation
		}
		payouts = append(payouts, payout{vote: vote, amount: rewardAmount})
	}

	// The early-voter uplift can push the summed payouts past the pool the
	// shares were computed from. Checked here so no transfer is issued for a
	// batch the pool cannot cover.
	if totalDistributed > rewardPool {
		return 0, ErrInsufficientRewardPool
	}

	for _, p := range payouts {
		err = e.transfer.Transfer(e.rewardVault, p.vote.Voter(), p.amount)
		if err != nil {
			return 0, NewTransferError(err)
		}

		e.emit(model.EventTypeRewardDistributed, model.Metadata{
			"voter":     p.vote.Voter().Hex(),
			"amount":    p.amount,
			"timestamp": now,
		})
	}

	newTotal, overflow := math.SafeAdd(state.TotalRewardsDistributed(), totalDistributed)
	if overflow {
		return 0, ErrCalculation
	}
	state.SetLastRewardDistributionTimestamp(now)
	state.SetTotalRewardsDistributed(newTotal)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return 0, err
	}

	log.Infof("Distributed %v to %v of %v candidate votes", totalDistributed, len(payouts),
		len(candidates))

	e.emit(model.EventTypeRewardsDistributed, model.Metadata{
		"totalAmount": totalDistributed,
		"timestamp":   now,
	})

	return totalDistributed, nil
}

// voteEligible is the skip filter for batch distribution: only unclaimed
// votes with enough stake, cast within the eligibility period, are paid.
func (e *Engine) voteEligible(vote *model.Vote, now int64) bool {
	return vote.Status() == model.VoteStatusActive &&
		vote.VoteTimestamp()+RewardEligibilityPeriod > now &&
		vote.StakeAmount() >= MinStakeForRewards
}

// isEarlyVoter reports whether the vote landed within EarlyVoterWindow of
// its content's submission
func (e *Engine) isEarlyVoter(vote *model.Vote) (bool, error) {
	content, err := e.contentPersister.ContentByID(vote.ContentID())
	if err != nil {
		return false, err
	}
	return vote.VoteTimestamp()-content.SubmissionTime() <= EarlyVoterWindow, nil
}

// calculateVoterReward computes stake * rewardPool / totalStake in a widened
// integer domain, applies the time weight, and narrows. Narrowing overflow
// saturates to zero rather than aborting the batch.
func calculateVoterReward(stakeAmount uint64, totalStake uint64, rewardPool uint64,
	voteTimestamp int64, now int64) (uint64, error) {
	if totalStake == 0 {
		return 0, ErrCalculation
	}

	baseShare := new(big.Int).SetUint64(stakeAmount)
	baseShare.Mul(baseShare, new(big.Int).SetUint64(rewardPool))
	baseShare.Div(baseShare, new(big.Int).SetUint64(totalStake))

	timeWeight := calculateTimeWeight(voteTimestamp, now)
	baseShare.Mul(baseShare, new(big.Int).SetUint64(timeWeight))
	baseShare.Div(baseShare, big.NewInt(100))

	if !baseShare.IsUint64() {
		return 0, nil
	}
	return baseShare.Uint64(), nil
}

// calculateTimeWeight returns the decay multiplier, in percent, for a vote's
// age at distribution time
func calculateTimeWeight(voteTimestamp int64, now int64) uint64 {
	elapsed := now - voteTimestamp
	switch {
	case elapsed < 86400:
		return 100
	case elapsed < 259200:
		return 75
	case elapsed < 604800:
		return 50
	default:
		return 25
	}
}
