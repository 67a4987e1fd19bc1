// Package engine implements the voting and reward economics of the
// moderation protocol: the content lifecycle state machine, stake-weighted
// vote accounting, quorum finalization, rate limiting, reward computation,
// and the emergency admin set.
package engine // import "github.com/scrynet/moderation-protocol/pkg/engine"

import (
	log "github.com/golang/glog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/events"
	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/utils"
)

// TransferService is the external value transfer collaborator. Transfers are
// atomic: a returned error means no value moved. The engine never mutates
// balances directly.
type TransferService interface {
	// Transfer moves amount from one account to another
	Transfer(from common.Address, to common.Address, amount uint64) error
	// Balance returns the current balance of an account
	Balance(account common.Address) (uint64, error)
}

// Clock is the external time oracle. Now must be monotonic non-decreasing
// across calls.
type Clock interface {
	// Now returns the current unix timestamp in seconds
	Now() int64
}

// SystemClock is the default Clock backed by the wall clock
type SystemClock struct{}

// Now returns the current unix timestamp in seconds
func (s SystemClock) Now() int64 {
	return utils.CurrentEpochSecsInInt64()
}

// NewEngineParams are the params to pass to NewEngine
type NewEngineParams struct {
	ProtocolPersister model.ProtocolStatePersister
	ContentPersister  model.ContentPersister
	VotePersister     model.VotePersister
	EventPersister    model.ProtocolEventPersister
	Transfer          TransferService
	Emitter           events.Emitter
	Clock             Clock
	StakeVault        common.Address
	RewardVault       common.Address
}

// NewEngine is a convenience function to init an Engine
func NewEngine(params *NewEngineParams) *Engine {
	clock := params.Clock
	if clock == nil {
		clock = SystemClock{}
	}
	emitter := params.Emitter
	if emitter == nil {
		emitter = &events.NullEmitter{}
	}
	return &Engine{
		protocolPersister: params.ProtocolPersister,
		contentPersister:  params.ContentPersister,
		votePersister:     params.VotePersister,
		eventPersister:    params.EventPersister,
		transfer:          params.Transfer,
		emitter:           emitter,
		clock:             clock,
		stakeVault:        params.StakeVault,
		rewardVault:       params.RewardVault,
	}
}

// Engine runs the protocol operations against the persisted records. Each
// operation is an all-or-nothing state transition: every check and every
// piece of checked arithmetic runs before any external transfer is issued,
// and a failed call persists nothing and emits nothing. The host is assumed
// to serialize calls touching the same records.
type Engine struct {
	protocolPersister model.ProtocolStatePersister
	contentPersister  model.ContentPersister
	votePersister     model.VotePersister
	eventPersister    model.ProtocolEventPersister
	transfer          TransferService
	emitter           events.Emitter
	clock             Clock
	stakeVault        common.Address
	rewardVault       common.Address
}

// StakeVault returns the stake escrow account identity
func (e *Engine) StakeVault() common.Address {
	return e.stakeVault
}

// RewardVault returns the reward pool account identity
func (e *Engine) RewardVault() common.Address {
	return e.rewardVault
}

// emit persists and publishes an event. Emission is fire-and-forget: a
// failed publish or persist is logged, never surfaced to the caller.
func (e *Engine) emit(eventType string, metadata model.Metadata) {
	event := model.NewProtocolEvent(eventType, metadata, e.clock.Now())
	if e.eventPersister != nil {
		err := e.eventPersister.CreateProtocolEvent(event)
		if err != nil {
			log.Errorf("Error persisting %v event: err: %v", eventType, err)
		}
	}
	err := e.emitter.Emit(event)
	if err != nil {
		log.Errorf("Error emitting %v event: err: %v", eventType, err)
	}
}

func (e *Engine) checkActiveStatus(state *model.ProtocolState) error {
	if state.IsPaused() {
		return ErrProtocolPaused
	}
	return nil
}

// checkAndResetDailyLimits zeroes both daily counters and advances the
// watermark once the reset period has elapsed. Runs before any counter
// check on every submission and vote.
func (e *Engine) checkAndResetDailyLimits(state *model.ProtocolState, now int64) {
	if now-state.LastResetTimestamp() >= DailyLimitResetPeriod {
		state.SetDailySubmissionCount(0)
		state.SetDailyVoteCount(0)
		state.SetLastResetTimestamp(now)
	}
}
