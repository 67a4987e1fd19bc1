package engine_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/engine"
	"github.com/scrynet/moderation-protocol/pkg/model"
)

// castVote funds the voter with the stake amount and casts the vote
func castVote(t *testing.T, h *testHarness, contentID string, voter common.Address,
	voteType model.VoteType, stakeAmount uint64) *model.Vote {
	err := h.ledger.Credit(voter, stakeAmount)
	if err != nil {
		t.Fatalf("Should have funded the voter: err: %v", err)
	}
	vote, err := h.engine.CastVote(contentID, voter, voteType, stakeAmount)
	if err != nil {
		t.Fatalf("Should not have gotten error casting vote: err: %v", err)
	}
	return vote
}

func TestCastVote(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	vote := castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)

	if vote.Status() != model.VoteStatusActive {
		t.Errorf("Should have created the vote active: %v", vote.Status())
	}
	if vote.StakeAmount() != 1000 {
		t.Errorf("Should have recorded the stake: %v", vote.StakeAmount())
	}
	if vote.VoteTimestamp() != h.clock.now {
		t.Errorf("Should have stamped the vote time: %v", vote.VoteTimestamp())
	}

	stored, _ := h.persister.ContentByID(content.ContentID())
	if stored.ApproveVotes() != 1000 {
		t.Errorf("Should have accumulated the approve stake: %v", stored.ApproveVotes())
	}
	if stored.TotalStake() != 1000 {
		t.Errorf("Should have accumulated the total stake: %v", stored.TotalStake())
	}
	if stored.VoteCount() != 1 {
		t.Errorf("Should have counted the vote: %v", stored.VoteCount())
	}
	if stored.LastVoteTimestamp() != h.clock.now {
		t.Errorf("Should have advanced the cooldown watermark: %v", stored.LastVoteTimestamp())
	}

	vaultBalance, _ := h.ledger.Balance(stakeVaultAddress)
	if vaultBalance != 1000 {
		t.Errorf("Should have locked the stake in the vault: %v", vaultBalance)
	}
	voterBalance, _ := h.ledger.Balance(voterAddress)
	if voterBalance != 0 {
		t.Errorf("Should have debited the voter: %v", voterBalance)
	}
	if h.persister.state.DailyVoteCount() != 1 {
		t.Errorf("Should have counted the vote in the daily counter: %v",
			h.persister.state.DailyVoteCount())
	}
}

func TestCastVoteStakeAccounting(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 700)
	h.clock.advance(10)
	castVote(t, h, content.ContentID(), voterAddress2, model.VoteTypeReject, 300)
	h.clock.advance(10)
	castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 500)

	// approveVotes + rejectVotes == totalStake after every successful vote
	stored, _ := h.persister.ContentByID(content.ContentID())
	if stored.ApproveVotes() != 1200 {
		t.Errorf("Should have accumulated approve stake: %v", stored.ApproveVotes())
	}
	if stored.RejectVotes() != 300 {
		t.Errorf("Should have accumulated reject stake: %v", stored.RejectVotes())
	}
	if stored.ApproveVotes()+stored.RejectVotes() != stored.TotalStake() {
		t.Errorf("Should have kept the accumulators consistent: %v + %v != %v",
			stored.ApproveVotes(), stored.RejectVotes(), stored.TotalStake())
	}
	if stored.VoteCount() != 3 {
		t.Errorf("Should have counted three votes: %v", stored.VoteCount())
	}
}

func TestCastVoteCooldown(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)

	// The cooldown is content scoped: a different voter is throttled too
	h.clock.advance(9)
	err := h.ledger.Credit(voterAddress2, 1000)
	if err != nil {
		t.Fatalf("Should have funded the voter: err: %v", err)
	}
	_, err = h.engine.CastVote(content.ContentID(), voterAddress2, model.VoteTypeReject, 1000)
	if err != engine.ErrVotingTooFrequent {
		t.Errorf("Should have throttled a vote inside the cooldown: err: %v", err)
	}

	h.clock.advance(1)
	_, err = h.engine.CastVote(content.ContentID(), voterAddress2, model.VoteTypeReject, 1000)
	if err != nil {
		t.Errorf("Should have accepted a vote at the cooldown boundary: err: %v", err)
	}
}

func TestCastVoteStakeBounds(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	err := h.ledger.Credit(voterAddress, engine.MaxStakePerUser+1)
	if err != nil {
		t.Fatalf("Should have funded the voter: err: %v", err)
	}

	_, err = h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove, 99)
	if err != engine.ErrInvalidStakeAmount {
		t.Errorf("Should have rejected stake below the requirement: err: %v", err)
	}

	_, err = h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove,
		engine.MaxStakePerUser+1)
	if err != engine.ErrInvalidStakeAmount {
		t.Errorf("Should have rejected stake above the cap: err: %v", err)
	}

	if len(h.persister.votes) != 0 {
		t.Errorf("Should not have persisted votes on failed casts")
	}
}

func TestCastVoteWindowClosed(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	h.clock.now = content.SubmissionTime() + content.VotingPeriod() + 1
	err := h.ledger.Credit(voterAddress, 1000)
	if err != nil {
		t.Fatalf("Should have funded the voter: err: %v", err)
	}
	_, err = h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)
	if err != engine.ErrVotingPeriodEnded {
		t.Errorf("Should have rejected a vote after the window: err: %v", err)
	}
}

func TestCastVotePaused(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	err := h.engine.PauseProtocol(adminAddress)
	if err != nil {
		t.Fatalf("Should have paused: err: %v", err)
	}

	err = h.ledger.Credit(voterAddress, 1000)
	if err != nil {
		t.Fatalf("Should have funded the voter: err: %v", err)
	}
	_, err = h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)
	if err != engine.ErrProtocolPaused {
		t.Errorf("Should have rejected a vote while paused: err: %v", err)
	}
}

func TestCastVoteInsufficientBalance(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	// Unfunded voter, the stake transfer fails and nothing persists
	_, err := h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)
	if engine.KindOf(err) != engine.ErrorKindTransfer {
		t.Errorf("Should have surfaced the transfer failure: err: %v", err)
	}

	stored, _ := h.persister.ContentByID(content.ContentID())
	if stored.TotalStake() != 0 {
		t.Errorf("Should not have accumulated stake on a failed transfer: %v", stored.TotalStake())
	}
	if len(h.persister.votes) != 0 {
		t.Errorf("Should not have persisted a vote on a failed transfer")
	}
}

func TestCastVoteDailyLimit(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	h.persister.state.SetDailyVoteCount(engine.MaxDailyVotes)

	err := h.ledger.Credit(voterAddress, 2000)
	if err != nil {
		t.Fatalf("Should have funded the voter: err: %v", err)
	}
	_, err = h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)
	if err != engine.ErrDailyVoteLimit {
		t.Errorf("Should have rejected a vote at the daily cap: err: %v", err)
	}

	h.clock.advance(86400)
	_, err = h.engine.CastVote(content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)
	if err != nil {
		t.Fatalf("Should have accepted a vote after the reset: err: %v", err)
	}
	if h.persister.state.DailyVoteCount() != 1 {
		t.Errorf("Should have restarted the daily vote counter at one: %v",
			h.persister.state.DailyVoteCount())
	}
}

func TestClaimRewards(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	vote := castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)

	h.clock.advance(engine.StakeLockupPeriod)
	reward, err := h.engine.ClaimRewards(vote.VoteID(), voterAddress)
	if err != nil {
		t.Fatalf("Should have claimed after the lockup: err: %v", err)
	}

	// stake * rewardPerVote / totalStake = 1000 * 100 / 1000
	if reward != 100 {
		t.Errorf("Should have computed the stake share reward: %v", reward)
	}
	voterBalance, _ := h.ledger.Balance(voterAddress)
	if voterBalance != 100 {
		t.Errorf("Should have paid the reward to the voter: %v", voterBalance)
	}

	stored, _ := h.persister.VoteByID(vote.VoteID())
	if stored.Status() != model.VoteStatusRewarded {
		t.Errorf("Should have marked the vote rewarded: %v", stored.Status())
	}

	events, _ := h.persister.ProtocolEventsByType(model.EventTypeRewardsClaimed)
	if len(events) != 1 {
		t.Errorf("Should have logged a RewardsClaimed event: %v", len(events))
	}
}

func TestClaimRewardsLockup(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	vote := castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)

	h.clock.advance(engine.StakeLockupPeriod - 1)
	_, err := h.engine.ClaimRewards(vote.VoteID(), voterAddress)
	if err != engine.ErrStakeStillLocked {
		t.Errorf("Should have rejected a claim inside the lockup: err: %v", err)
	}
}

func TestClaimRewardsWrongCaller(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	vote := castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)

	h.clock.advance(engine.StakeLockupPeriod)
	_, err := h.engine.ClaimRewards(vote.VoteID(), outsiderAddress)
	if err != engine.ErrUnauthorized {
		t.Errorf("Should have rejected a claim by a non-owner: err: %v", err)
	}
}

func TestClaimRewardsTwice(t *testing.T) {
	h := newTestHarness()
	initProtocol(t, h)
	content := submitContent(t, h)

	vote := castVote(t, h, content.ContentID(), voterAddress, model.VoteTypeApprove, 1000)

	h.clock.advance(engine.StakeLockupPeriod)
	_, err := h.engine.ClaimRewards(vote.VoteID(), voterAddress)
	if err != nil {
		t.Fatalf("Should have claimed: err: %v", err)
	}
	balanceAfterClaim, _ := h.ledger.Balance(voterAddress)

	_, err = h.engine.ClaimRewards(vote.VoteID(), voterAddress)
	if err != engine.ErrRewardsAlreadyClaimed {
		t.Errorf("Should have rejected a second claim: err: %v", err)
	}

	balance, _ := h.ledger.Balance(voterAddress)
	if balance != balanceAfterClaim {
		t.Errorf("Should not have moved value on a failed claim: %v != %v",
			balance, balanceAfterClaim)
	}
}
