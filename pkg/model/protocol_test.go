package model_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/model"
)

var (
	adminAddr  = common.HexToAddress("0x77e5aaBddb760FBa989A1C4B2CDd4aA8Fa3d311d")
	treasAddr  = common.HexToAddress("0xDFe273082089bB7f70Ee36Eebcde64832FE97E55")
	memberAddr = common.HexToAddress("0x2652c60CF04bBf6bB6cC8A5e6f1C18143729d440")
)

func setupProtocolState() *model.ProtocolState {
	return model.NewProtocolState(adminAddr, treasAddr, 1000000, 86400, 50, 1000000,
		1600000000, 3)
}

func TestNewProtocolState(t *testing.T) {
	state := setupProtocolState()

	if state.IsPaused() {
		t.Errorf("Should not have started paused")
	}
	if state.DailySubmissionCount() != 0 || state.DailyVoteCount() != 0 {
		t.Errorf("Should have zeroed the daily counters")
	}
	if state.LastResetTimestamp() != 1600000000 {
		t.Errorf("Should have seeded the reset watermark: %v", state.LastResetTimestamp())
	}
	if state.LastRewardDistributionTimestamp() != 1600000000 {
		t.Errorf("Should have seeded the distribution watermark: %v",
			state.LastRewardDistributionTimestamp())
	}
	if state.TotalRewardsDistributed() != 0 {
		t.Errorf("Should have zeroed the rewards total")
	}
}

func TestProtocolStateAdminSet(t *testing.T) {
	state := setupProtocolState()

	if state.EmergencyAdminCount() != 1 {
		t.Errorf("Should have seeded the set with the admin: %v", state.EmergencyAdminCount())
	}
	if !state.IsEmergencyAdmin(adminAddr) {
		t.Errorf("Should have made the deployer a member")
	}
	if state.IsEmergencyAdmin(memberAddr) {
		t.Errorf("Should not have other members yet")
	}

	state.AppendEmergencyAdmin(memberAddr)
	if !state.IsEmergencyAdmin(memberAddr) {
		t.Errorf("Should have appended the new member")
	}
	if state.EmergencyAdminCount() != 2 {
		t.Errorf("Should have two members: %v", state.EmergencyAdminCount())
	}

	state.RemoveEmergencyAdmin(memberAddr)
	if state.IsEmergencyAdmin(memberAddr) {
		t.Errorf("Should have removed the member")
	}
	if state.EmergencyAdminCount() != 1 {
		t.Errorf("Should be back to one member: %v", state.EmergencyAdminCount())
	}
}

func TestProtocolStateRemoveAllOccurrences(t *testing.T) {
	state := setupProtocolState()
	state.AppendEmergencyAdmin(memberAddr)
	state.AppendEmergencyAdmin(memberAddr)

	state.RemoveEmergencyAdmin(memberAddr)
	if state.IsEmergencyAdmin(memberAddr) {
		t.Errorf("Should have removed every occurrence")
	}
	if state.EmergencyAdminCount() != 1 {
		t.Errorf("Should have one member left: %v", state.EmergencyAdminCount())
	}
}

func TestProtocolStateAdminsCopy(t *testing.T) {
	state := setupProtocolState()

	admins := state.EmergencyAdmins()
	admins[0] = memberAddr
	if !state.IsEmergencyAdmin(adminAddr) {
		t.Errorf("Should not have mutated the set through the returned slice")
	}
}
