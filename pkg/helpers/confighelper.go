// Package helpers contains various common helper functions.
// Normally they are shared functions used by the cmds.
package helpers

import (
	"github.com/jmoiron/sqlx"

	"github.com/scrynet/moderation-protocol/pkg/engine"
	"github.com/scrynet/moderation-protocol/pkg/events"
	"github.com/scrynet/moderation-protocol/pkg/ledger"
	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/persistence"
	"github.com/scrynet/moderation-protocol/pkg/utils"
)

// Persister is a helper function to return an interface{} that is an
// initialized persister type
func Persister(config *utils.ModerationConfig) (interface{}, error) {
	if config.PersisterType == utils.PersisterTypePostgresql {
		return postgresPersister(config)
	}
	// Default to the NullPersister
	return &persistence.NullPersister{}, nil
}

// PersisterFromSqlx is a helper function to return an interface{} given an
// initialized sqlx.DB struct
func PersisterFromSqlx(db *sqlx.DB) (interface{}, error) {
	persister := persistence.NewPostgresPersisterFromSqlx(db)
	err := persister.CreateTables()
	if err != nil {
		return nil, err
	}
	return persister, nil
}

// ProtocolStatePersister is a helper function to return the correct protocol
// state persister based on the given configuration
func ProtocolStatePersister(config *utils.ModerationConfig) (model.ProtocolStatePersister, error) {
	p, err := Persister(config)
	if err != nil {
		return nil, err
	}
	return p.(model.ProtocolStatePersister), nil
}

// ContentPersister is a helper function to return the correct content
// persister based on the given configuration
func ContentPersister(config *utils.ModerationConfig) (model.ContentPersister, error) {
	p, err := Persister(config)
	if err != nil {
		return nil, err
	}
	return p.(model.ContentPersister), nil
}

// VotePersister is a helper function to return the correct vote persister
// based on the given configuration
func VotePersister(config *utils.ModerationConfig) (model.VotePersister, error) {
	p, err := Persister(config)
	if err != nil {
		return nil, err
	}
	return p.(model.VotePersister), nil
}

// ProtocolEventPersister is a helper function to return the correct protocol
// event persister based on the given configuration
func ProtocolEventPersister(config *utils.ModerationConfig) (model.ProtocolEventPersister, error) {
	p, err := Persister(config)
	if err != nil {
		return nil, err
	}
	return p.(model.ProtocolEventPersister), nil
}

// Emitter is a helper function to return the configured event emitter. If no
// pubsub project is configured, returns a null emitter.
func Emitter(config *utils.ModerationConfig) (events.Emitter, error) {
	if config.PubSubProjectID == "" || config.PubSubTopicName == "" {
		return &events.NullEmitter{}, nil
	}
	return events.NewGooglePubSubEmitter(config.PubSubProjectID, config.PubSubTopicName)
}

// TransferService is a helper function to return the configured token
// transfer backend. Postgres configs share the persister's connection pool,
// everything else gets an in-memory ledger.
func TransferService(config *utils.ModerationConfig) (engine.TransferService, error) {
	if config.PersisterType == utils.PersisterTypePostgresql {
		persister, err := postgresPersister(config)
		if err != nil {
			return nil, err
		}
		return ledger.NewPostgresLedger(persister.DB())
	}
	return ledger.NewInMemoryLedger(), nil
}

func postgresPersister(config *utils.ModerationConfig) (*persistence.PostgresPersister, error) {
	persister, err := persistence.NewPostgresPersister(
		config.PersisterPostgresAddress,
		config.PersisterPostgresPort,
		config.PersisterPostgresUser,
		config.PersisterPostgresPw,
		config.PersisterPostgresDbname,
	)
	if err != nil {
		return nil, err
	}
	err = persister.CreateTables()
	if err != nil {
		return nil, err
	}
	return persister, nil
}
