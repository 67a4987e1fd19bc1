package persistence_test

import (
	"testing"

	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/persistence"
)

func testProtocolStatePersister(p model.ProtocolStatePersister) {
}

func testContentPersister(p model.ContentPersister) {
}

func testVotePersister(p model.VotePersister) {
}

func testProtocolEventPersister(p model.ProtocolEventPersister) {
}

func TestNullInterface(t *testing.T) {
	p := &persistence.NullPersister{}

	testProtocolStatePersister(p)
	testContentPersister(p)
	testVotePersister(p)
	testProtocolEventPersister(p)
}

func TestPostgresInterface(t *testing.T) {
	p := &persistence.PostgresPersister{}

	testProtocolStatePersister(p)
	testContentPersister(p)
	testVotePersister(p)
	testProtocolEventPersister(p)
}
