package servicemain_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/engine"
	"github.com/scrynet/moderation-protocol/pkg/ledger"
	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/servicemain"
	"github.com/scrynet/moderation-protocol/pkg/utils"
)

type statePersister struct {
	state *model.ProtocolState
}

func (s *statePersister) ProtocolState() (*model.ProtocolState, error) {
	if s.state == nil {
		return nil, model.ErrPersisterNoResults
	}
	return s.state, nil
}

func (s *statePersister) CreateProtocolState(state *model.ProtocolState) error {
	s.state = state
	return nil
}

func (s *statePersister) UpdateProtocolState(state *model.ProtocolState) error {
	s.state = state
	return nil
}

func testConfig() *utils.ModerationConfig {
	return &utils.ModerationConfig{
		AdminAddress:       "0x77e5aaBddb760FBa989A1C4B2CDd4aA8Fa3d311d",
		TreasuryAddress:    "0xDFe273082089bB7f70Ee36Eebcde64832FE97E55",
		StakeVaultAddress:  "0x39e9e6bFb4B98EA0EBbc4a7e57dC1d38413Fd1a1",
		RewardVaultAddress: "0x8c722B9F4B80A5F0C88b02eD123AB97D354eB5e7",
		StakeRequired:      1000000,
		VotingPeriodSecs:   86400,
		QuorumPercentage:   50,
		RewardPerVote:      1000000,
		PersisterType:      utils.PersisterTypeNone,
	}
}

func testEngine(persister *statePersister) *engine.Engine {
	return engine.NewEngine(&engine.NewEngineParams{
		ProtocolPersister: persister,
		Transfer:          ledger.NewInMemoryLedger(),
	})
}

func TestEnsureProtocolInitialized(t *testing.T) {
	config := testConfig()
	persister := &statePersister{}
	eng := testEngine(persister)

	err := servicemain.EnsureProtocolInitialized(config, eng, &servicemain.InitializedPersisters{
		ProtocolState: persister,
	})
	if err != nil {
		t.Fatalf("Should have initialized the protocol: err: %v", err)
	}
	if persister.state == nil {
		t.Fatalf("Should have created the protocol state")
	}
	if persister.state.Admin() != common.HexToAddress(config.AdminAddress) {
		t.Errorf("Should have taken the admin from the config: %v", persister.state.Admin().Hex())
	}
	if persister.state.QuorumPercentage() != 50 {
		t.Errorf("Should have taken the quorum from the config: %v",
			persister.state.QuorumPercentage())
	}
}

func TestEnsureProtocolInitializedIdempotent(t *testing.T) {
	config := testConfig()
	persister := &statePersister{}
	eng := testEngine(persister)

	err := servicemain.EnsureProtocolInitialized(config, eng, &servicemain.InitializedPersisters{
		ProtocolState: persister,
	})
	if err != nil {
		t.Fatalf("Should have initialized the protocol: err: %v", err)
	}
	created := persister.state

	// A second startup finds the existing record and leaves it alone
	err = servicemain.EnsureProtocolInitialized(config, eng, &servicemain.InitializedPersisters{
		ProtocolState: persister,
	})
	if err != nil {
		t.Fatalf("Should have succeeded on an initialized protocol: err: %v", err)
	}
	if persister.state != created {
		t.Errorf("Should not have replaced the existing state record")
	}
}

func TestEnsureProtocolInitializedBadConfig(t *testing.T) {
	config := testConfig()
	config.QuorumPercentage = 95
	persister := &statePersister{}
	eng := testEngine(persister)

	err := servicemain.EnsureProtocolInitialized(config, eng, &servicemain.InitializedPersisters{
		ProtocolState: persister,
	})
	if err != engine.ErrInvalidQuorumPercentage {
		t.Errorf("Should have surfaced the config validation error: err: %v", err)
	}
	if persister.state != nil {
		t.Errorf("Should not have created state from a bad config")
	}
}

func TestInitPersistersNone(t *testing.T) {
	config := testConfig()
	persisters, err := servicemain.InitPersisters(config)
	if err != nil {
		t.Fatalf("Should have initialized the null persisters: err: %v", err)
	}
	if persisters.ProtocolState == nil || persisters.Content == nil ||
		persisters.Vote == nil || persisters.Event == nil {
		t.Errorf("Should have populated every persister")
	}
}
