package engine

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

// ProtocolConfig holds the economic parameters for protocol initialization
type ProtocolConfig struct {
	Admin            common.Address
	Treasury         common.Address
	StakeRequired    uint64
	VotingPeriod     int64
	QuorumPercentage uint8
	RewardPerVote    uint64
}

// InitializeProtocol validates the config, creates the singleton protocol
// state record seeded with the deploying admin as the sole emergency admin,
// and emits ProtocolInitialized. Fails if a protocol state record already
// exists.
func (e *Engine) InitializeProtocol(config *ProtocolConfig) (*model.ProtocolState, error) {
	_, err := e.protocolPersister.ProtocolState()
	if err == nil {
		return nil, ErrProtocolAlreadyInitialized
	}
	if err != model.ErrPersisterNoResults {
		return nil, err
	}

	if config.QuorumPercentage < MinQuorumPercentage || config.QuorumPercentage > MaxQuorumPercentage {
		return nil, ErrInvalidQuorumPercentage
	}
	if config.VotingPeriod < MinVotingPeriod || config.VotingPeriod > MaxVotingPeriod {
		return nil, ErrInvalidVotingPeriod
	}
	if config.RewardPerVote == 0 {
		return nil, ErrInvalidRewardPerVote
	}
	if config.StakeRequired > MaxStakePerUser {
		return nil, ErrInvalidStakeRequired
	}

	now := e.clock.Now()
	state := model.NewProtocolState(config.Admin, config.Treasury, config.StakeRequired,
		config.VotingPeriod, config.QuorumPercentage, config.RewardPerVote, now, ProgramVersion)

	err = e.protocolPersister.CreateProtocolState(state)
	if err != nil {
		return nil, err
	}

	e.emit(model.EventTypeProtocolInitialized, model.Metadata{
		"admin":            state.Admin().Hex(),
		"treasury":         state.Treasury().Hex(),
		"stakeRequired":    state.StakeRequired(),
		"votingPeriod":     state.VotingPeriod(),
		"quorumPercentage": state.QuorumPercentage(),
		"rewardPerVote":    state.RewardPerVote(),
		"version":          state.Version(),
		"timestamp":        now,
	})

	return state, nil
}

// PauseProtocol sets the pause flag. The caller must be a member of the
// emergency admin set. Pausing works regardless of the current flag value.
func (e *Engine) PauseProtocol(caller common.Address) error {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return err
	}

	if !state.IsEmergencyAdmin(caller) {
		return ErrUnauthorized
	}

	state.SetPaused(true)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return err
	}

	e.emit(model.EventTypeProtocolPaused, model.Metadata{
		"pausedBy":  caller.Hex(),
		"timestamp": e.clock.Now(),
	})
	return nil
}

// UnpauseProtocol clears the pause flag. The caller must be a member of the
// emergency admin set. Unpause is exempt from the pause gate.
func (e *Engine) UnpauseProtocol(caller common.Address) error {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return err
	}

	if !state.IsEmergencyAdmin(caller) {
		return ErrUnauthorized
	}

	state.SetPaused(false)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return err
	}

	e.emit(model.EventTypeProtocolUnpaused, model.Metadata{
		"unpausedBy": caller.Hex(),
		"timestamp":  e.clock.Now(),
	})
	return nil
}

// AddEmergencyAdmin appends a new identity to the emergency admin set. The
// caller must already be a member and the set must be below capacity. Any
// current admin can add any identity, including duplicates.
func (e *Engine) AddEmergencyAdmin(caller common.Address, newAdmin common.Address) error {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return err
	}

	if state.EmergencyAdminCount() >= MaxEmergencyAdmins {
		return ErrMaxEmergencyAdminsReached
	}
	if !state.IsEmergencyAdmin(caller) {
		return ErrUnauthorized
	}

	state.AppendEmergencyAdmin(newAdmin)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return err
	}

	e.emit(model.EventTypeEmergencyAdminAdded, model.Metadata{
		"newAdmin":  newAdmin.Hex(),
		"addedBy":   caller.Hex(),
		"timestamp": e.clock.Now(),
	})
	return nil
}

// RemoveEmergencyAdmin removes all occurrences of the target identity from
// the emergency admin set. The caller must be a member and the set must
// hold more than one member before removal, so it never empties.
func (e *Engine) RemoveEmergencyAdmin(caller common.Address, target common.Address) error {
	state, err := e.protocolPersister.ProtocolState()
	if err != nil {
		return err
	}

	if state.EmergencyAdminCount() <= 1 {
		return ErrCannotRemoveLastAdmin
	}
	if !state.IsEmergencyAdmin(caller) {
		return ErrUnauthorized
	}

	// Removal strips every occurrence of the target. With duplicate
	// memberships that could empty the set, so the survivor count is
	// checked, not just the pre-removal size.
	survivors := 0
	for _, admin := range state.EmergencyAdmins() {
		if admin != target {
			survivors++
		}
	}
	if survivors == 0 {
		return ErrCannotRemoveLastAdmin
	}

	state.RemoveEmergencyAdmin(target)
	err = e.protocolPersister.UpdateProtocolState(state)
	if err != nil {
		return err
	}

	e.emit(model.EventTypeEmergencyAdminRemoved, model.Metadata{
		"removedAdmin": target.Hex(),
		"removedBy":    caller.Hex(),
		"timestamp":    e.clock.Now(),
	})
	return nil
}
