// Package servicemain contains the top level logic to run the moderation
// service from the cmds
package servicemain

import (
	"os"
	"os/signal"
	"syscall"

	log "github.com/golang/glog"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/engine"
	"github.com/scrynet/moderation-protocol/pkg/events"
	"github.com/scrynet/moderation-protocol/pkg/helpers"
	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/utils"
)

// InitializedPersisters contains initialized persisters needed to run the
// moderation service
type InitializedPersisters struct {
	ProtocolState model.ProtocolStatePersister
	Content       model.ContentPersister
	Vote          model.VotePersister
	Event         model.ProtocolEventPersister
}

// InitPersisters inits the persisters from the config file
func InitPersisters(config *utils.ModerationConfig) (*InitializedPersisters, error) {
	protocolStatePersister, err := helpers.ProtocolStatePersister(config)
	if err != nil {
		log.Errorf("Error w protocolStatePersister: err: %v", err)
		return nil, err
	}
	contentPersister, err := helpers.ContentPersister(config)
	if err != nil {
		log.Errorf("Error w contentPersister: err: %v", err)
		return nil, err
	}
	votePersister, err := helpers.VotePersister(config)
	if err != nil {
		log.Errorf("Error w votePersister: err: %v", err)
		return nil, err
	}
	eventPersister, err := helpers.ProtocolEventPersister(config)
	if err != nil {
		log.Errorf("Error w protocolEventPersister: err: %v", err)
		return nil, err
	}
	return &InitializedPersisters{
		ProtocolState: protocolStatePersister,
		Content:       contentPersister,
		Vote:          votePersister,
		Event:         eventPersister,
	}, nil
}

// InitEngine builds the moderation engine from the config and the
// initialized persisters. Also returns the emitter so callers can clean it
// up on shutdown.
func InitEngine(config *utils.ModerationConfig, persisters *InitializedPersisters) (*engine.Engine,
	events.Emitter, error) {
	transfer, err := helpers.TransferService(config)
	if err != nil {
		log.Errorf("Error w transferService: err: %v", err)
		return nil, nil, err
	}
	emitter, err := helpers.Emitter(config)
	if err != nil {
		log.Errorf("Error w emitter: err: %v", err)
		return nil, nil, err
	}
	eng := engine.NewEngine(&engine.NewEngineParams{
		ProtocolPersister: persisters.ProtocolState,
		ContentPersister:  persisters.Content,
		VotePersister:     persisters.Vote,
		EventPersister:    persisters.Event,
		Transfer:          transfer,
		Emitter:           emitter,
		StakeVault:        common.HexToAddress(config.StakeVaultAddress),
		RewardVault:       common.HexToAddress(config.RewardVaultAddress),
	})
	return eng, emitter, nil
}

// EnsureProtocolInitialized creates the protocol state record from the
// config if no record exists yet. Safe to call on every startup.
func EnsureProtocolInitialized(config *utils.ModerationConfig, eng *engine.Engine,
	persisters *InitializedPersisters) error {
	_, err := persisters.ProtocolState.ProtocolState()
	if err == nil {
		return nil
	}
	if err != model.ErrPersisterNoResults {
		return err
	}

	log.Infof("No protocol state found, initializing from config")
	state, err := eng.InitializeProtocol(&engine.ProtocolConfig{
		Admin:            common.HexToAddress(config.AdminAddress),
		Treasury:         common.HexToAddress(config.TreasuryAddress),
		StakeRequired:    config.StakeRequired,
		VotingPeriod:     config.VotingPeriodSecs,
		QuorumPercentage: config.QuorumPercentage,
		RewardPerVote:    config.RewardPerVote,
	})
	if err != nil {
		return err
	}
	log.Infof("Initialized protocol: admin: %v, version: %v", state.Admin().Hex(), state.Version())
	return nil
}

// SetupKillNotify cleans up the emitter on a kill signal
func SetupKillNotify(emitter events.Emitter) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-c
		if closer, ok := emitter.(interface{ Close() error }); ok {
			err := closer.Close()
			if err != nil {
				log.Errorf("Error closing emitter: err: %v", err)
			}
		}
		os.Exit(1)
	}()
}
