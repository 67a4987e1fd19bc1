// Package persistence contains components to interact with the DB
package persistence // import "github.com/scrynet/moderation-protocol/pkg/persistence"

import (
	"database/sql"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"

	// driver for postgresql
	_ "github.com/lib/pq"

	"github.com/scrynet/moderation-protocol/pkg/model"
	"github.com/scrynet/moderation-protocol/pkg/persistence/postgres"
)

const (
	protocolStateTableName = "protocol_state"
	contentTableName       = "content"
	voteTableName          = "vote"
	protocolEventTableName = "protocol_event"
)

// NewPostgresPersister creates a new postgres persister
func NewPostgresPersister(host string, port int, user string, password string,
	dbname string) (*PostgresPersister, error) {
	pgPersister := &PostgresPersister{}
	psqlInfo := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		host, port, user, password, dbname)
	db, err := sqlx.Connect("postgres", psqlInfo)
	if err != nil {
		return pgPersister, fmt.Errorf("Error connecting to sqlx: %v", err)
	}
	pgPersister.db = db
	return pgPersister, nil
}

// NewPostgresPersisterFromSqlx creates a new postgres persister from an
// initialized sqlx.DB
func NewPostgresPersisterFromSqlx(db *sqlx.DB) *PostgresPersister {
	return &PostgresPersister{db: db}
}

// PostgresPersister holds the DB connection and persistence
type PostgresPersister struct {
	db *sqlx.DB
}

// DB returns the underlying sqlx.DB so other components can share the
// connection pool
func (p *PostgresPersister) DB() *sqlx.DB {
	return p.db
}

// CreateTables creates the tables for the moderation protocol if they don't exist
func (p *PostgresPersister) CreateTables() error {
	_, err := p.db.Exec(postgres.ProtocolStateSchema())
	if err != nil {
		return fmt.Errorf("Error creating protocol_state table in postgres: %v", err)
	}
	_, err = p.db.Exec(postgres.ContentSchema())
	if err != nil {
		return fmt.Errorf("Error creating content table in postgres: %v", err)
	}
	_, err = p.db.Exec(postgres.VoteSchema())
	if err != nil {
		return fmt.Errorf("Error creating vote table in postgres: %v", err)
	}
	_, err = p.db.Exec(postgres.ProtocolEventSchema())
	if err != nil {
		return fmt.Errorf("Error creating protocol_event table in postgres: %v", err)
	}
	return nil
}

// ProtocolState retrieves the singleton protocol state record
func (p *PostgresPersister) ProtocolState() (*model.ProtocolState, error) {
	dbState := postgres.ProtocolState{}
	queryString := p.protocolStateQuery(protocolStateTableName)
	err := p.db.Get(&dbState, queryString)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPersisterNoResults
		}
		return nil, fmt.Errorf("Wasn't able to get protocol state from postgres table: %v", err)
	}
	return dbState.DbToProtocolStateData(), nil
}

// CreateProtocolState creates the protocol state record
func (p *PostgresPersister) CreateProtocolState(state *model.ProtocolState) error {
	queryString := p.createProtocolStateQueryString(protocolStateTableName)
	dbState := postgres.NewProtocolState(state)
	_, err := p.db.NamedExec(queryString, dbState)
	if err != nil {
		return fmt.Errorf("Error saving protocol state to table: %v", err)
	}
	return nil
}

// UpdateProtocolState updates fields on the protocol state record
func (p *PostgresPersister) UpdateProtocolState(state *model.ProtocolState) error {
	queryString := p.updateProtocolStateQueryString(protocolStateTableName)
	dbState := postgres.NewProtocolState(state)
	_, err := p.db.NamedExec(queryString, dbState)
	if err != nil {
		return fmt.Errorf("Error updating protocol state in table: %v", err)
	}
	return nil
}

// ContentByID retrieves a content item by its identifier
func (p *PostgresPersister) ContentByID(contentID string) (*model.Content, error) {
	dbContent := postgres.Content{}
	queryString := p.contentByIDQuery(contentTableName)
	err := p.db.Get(&dbContent, queryString, contentID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPersisterNoResults
		}
		return nil, fmt.Errorf("Wasn't able to get content from postgres table: %v", err)
	}
	return dbContent.DbToContentData()
}

// ContentsByStatus retrieves content items with the given status
func (p *PostgresPersister) ContentsByStatus(status model.ContentStatus) ([]*model.Content, error) {
	dbContents := []postgres.Content{}
	queryString := p.contentsByStatusQuery(contentTableName)
	err := p.db.Select(&dbContents, queryString, int(status))
	if err != nil {
		return nil, fmt.Errorf("Wasn't able to get contents from postgres table: %v", err)
	}
	contents := make([]*model.Content, len(dbContents))
	for i, dbContent := range dbContents {
		content, convErr := dbContent.DbToContentData()
		if convErr != nil {
			return nil, convErr
		}
		contents[i] = content
	}
	return contents, nil
}

// CreateContent creates a new content item
func (p *PostgresPersister) CreateContent(content *model.Content) error {
	queryString := p.createContentQueryString(contentTableName)
	dbContent := postgres.NewContent(content)
	_, err := p.db.NamedExec(queryString, dbContent)
	if err != nil {
		return fmt.Errorf("Error saving content to table: %v", err)
	}
	return nil
}

// UpdateContent updates fields on an existing content item
func (p *PostgresPersister) UpdateContent(content *model.Content) error {
	queryString := p.updateContentQueryString(contentTableName)
	dbContent := postgres.NewContent(content)
	_, err := p.db.NamedExec(queryString, dbContent)
	if err != nil {
		return fmt.Errorf("Error updating content in table: %v", err)
	}
	return nil
}

// VoteByID retrieves a vote by its identifier
func (p *PostgresPersister) VoteByID(voteID string) (*model.Vote, error) {
	dbVote := postgres.Vote{}
	queryString := p.voteByIDQuery(voteTableName)
	err := p.db.Get(&dbVote, queryString, voteID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, model.ErrPersisterNoResults
		}
		return nil, fmt.Errorf("Wasn't able to get vote from postgres table: %v", err)
	}
	return dbVote.DbToVoteData(), nil
}

// VotesByContentID retrieves the votes cast against a content item
func (p *PostgresPersister) VotesByContentID(contentID string) ([]*model.Vote, error) {
	queryString := fmt.Sprintf("%s WHERE content_id=$1;", p.voteBaseQuery(voteTableName))
	return p.votesFromTable(queryString, contentID)
}

// VotesByVoter retrieves the votes cast by a voter
func (p *PostgresPersister) VotesByVoter(voter common.Address) ([]*model.Vote, error) {
	queryString := fmt.Sprintf("%s WHERE voter=$1;", p.voteBaseQuery(voteTableName))
	return p.votesFromTable(queryString, voter.Hex())
}

// ActiveVotes retrieves the votes whose rewards have not been claimed
func (p *PostgresPersister) ActiveVotes() ([]*model.Vote, error) {
	queryString := fmt.Sprintf("%s WHERE status=$1;", p.voteBaseQuery(voteTableName))
	return p.votesFromTable(queryString, int(model.VoteStatusActive))
}

// CreateVote creates a new vote
func (p *PostgresPersister) CreateVote(vote *model.Vote) error {
	queryString := p.createVoteQueryString(voteTableName)
	dbVote := postgres.NewVote(vote)
	_, err := p.db.NamedExec(queryString, dbVote)
	if err != nil {
		return fmt.Errorf("Error saving vote to table: %v", err)
	}
	return nil
}

// UpdateVote updates fields on an existing vote
func (p *PostgresPersister) UpdateVote(vote *model.Vote) error {
	queryString := p.updateVoteQueryString(voteTableName)
	dbVote := postgres.NewVote(vote)
	_, err := p.db.NamedExec(queryString, dbVote)
	if err != nil {
		return fmt.Errorf("Error updating vote in table: %v", err)
	}
	return nil
}

// CreateProtocolEvent appends an event to the event log
func (p *PostgresPersister) CreateProtocolEvent(event *model.ProtocolEvent) error {
	queryString := p.createProtocolEventQueryString(protocolEventTableName)
	dbEvent := postgres.NewProtocolEvent(event)
	_, err := p.db.NamedExec(queryString, dbEvent)
	if err != nil {
		return fmt.Errorf("Error saving protocol event to table: %v", err)
	}
	return nil
}

// ProtocolEventsByType retrieves events of the given type
func (p *PostgresPersister) ProtocolEventsByType(eventType string) ([]*model.ProtocolEvent, error) {
	dbEvents := []postgres.ProtocolEvent{}
	queryString := p.protocolEventsByTypeQuery(protocolEventTableName)
	err := p.db.Select(&dbEvents, queryString, eventType)
	if err != nil {
		return nil, fmt.Errorf("Wasn't able to get protocol events from postgres table: %v", err)
	}
	events := make([]*model.ProtocolEvent, len(dbEvents))
	for i, dbEvent := range dbEvents {
		events[i] = dbEvent.DbToProtocolEventData()
	}
	return events, nil
}

func (p *PostgresPersister) votesFromTable(queryString string, arg interface{}) ([]*model.Vote, error) {
	dbVotes := []postgres.Vote{}
	err := p.db.Select(&dbVotes, queryString, arg)
	if err != nil {
		return nil, fmt.Errorf("Wasn't able to get votes from postgres table: %v", err)
	}
	votes := make([]*model.Vote, len(dbVotes))
	for i, dbVote := range dbVotes {
		votes[i] = dbVote.DbToVoteData()
	}
	return votes, nil
}

func (p *PostgresPersister) protocolStateQuery(tableName string) string {
	return fmt.Sprintf("SELECT admin, treasury, stake_required, voting_period, quorum_percentage, "+
		"reward_per_vote, is_paused, daily_submission_count, daily_vote_count, last_reset_timestamp, "+
		"last_reward_distribution_timestamp, total_rewards_distributed, version, emergency_admins "+
		"FROM %s ORDER BY id DESC LIMIT 1;", tableName)
}

func (p *PostgresPersister) createProtocolStateQueryString(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (admin, treasury, stake_required, voting_period, "+
		"quorum_percentage, reward_per_vote, is_paused, daily_submission_count, daily_vote_count, "+
		"last_reset_timestamp, last_reward_distribution_timestamp, total_rewards_distributed, "+
		"version, emergency_admins) VALUES (:admin, :treasury, :stake_required, :voting_period, "+
		":quorum_percentage, :reward_per_vote, :is_paused, :daily_submission_count, :daily_vote_count, "+
		":last_reset_timestamp, :last_reward_distribution_timestamp, :total_rewards_distributed, "+
		":version, :emergency_admins);", tableName)
}

func (p *PostgresPersister) updateProtocolStateQueryString(tableName string) string {
	return fmt.Sprintf("UPDATE %s SET stake_required=:stake_required, voting_period=:voting_period, "+
		"quorum_percentage=:quorum_percentage, reward_per_vote=:reward_per_vote, is_paused=:is_paused, "+
		"daily_submission_count=:daily_submission_count, daily_vote_count=:daily_vote_count, "+
		"last_reset_timestamp=:last_reset_timestamp, "+
		"last_reward_distribution_timestamp=:last_reward_distribution_timestamp, "+
		"total_rewards_distributed=:total_rewards_distributed, emergency_admins=:emergency_admins "+
		"WHERE admin=:admin;", tableName)
}

func (p *PostgresPersister) contentBaseQuery(tableName string) string {
	return fmt.Sprintf("SELECT content_id, submitter, content_hash, content_type, ai_score, "+
		"submission_time, status, approve_votes, reject_votes, total_stake, voting_period, "+
		"quorum_percentage, vote_count, last_vote_timestamp, version, moderation_flags FROM %s", tableName)
}

func (p *PostgresPersister) contentByIDQuery(tableName string) string {
	return fmt.Sprintf("%s WHERE content_id=$1;", p.contentBaseQuery(tableName))
}

func (p *PostgresPersister) contentsByStatusQuery(tableName string) string {
	return fmt.Sprintf("%s WHERE status=$1;", p.contentBaseQuery(tableName))
}

func (p *PostgresPersister) createContentQueryString(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (content_id, submitter, content_hash, content_type, ai_score, "+
		"submission_time, status, approve_votes, reject_votes, total_stake, voting_period, "+
		"quorum_percentage, vote_count, last_vote_timestamp, version, moderation_flags) VALUES "+
		"(:content_id, :submitter, :content_hash, :content_type, :ai_score, :submission_time, :status, "+
		":approve_votes, :reject_votes, :total_stake, :voting_period, :quorum_percentage, :vote_count, "+
		":last_vote_timestamp, :version, :moderation_flags);", tableName)
}

func (p *PostgresPersister) updateContentQueryString(tableName string) string {
	return fmt.Sprintf("UPDATE %s SET status=:status, approve_votes=:approve_votes, "+
		"reject_votes=:reject_votes, total_stake=:total_stake, vote_count=:vote_count, "+
		"last_vote_timestamp=:last_vote_timestamp WHERE content_id=:content_id;", tableName)
}

func (p *PostgresPersister) voteBaseQuery(tableName string) string {
	return fmt.Sprintf("SELECT vote_id, voter, content_id, vote_type, stake_amount, vote_timestamp, "+
		"status FROM %s", tableName)
}

func (p *PostgresPersister) voteByIDQuery(tableName string) string {
	return fmt.Sprintf("%s WHERE vote_id=$1;", p.voteBaseQuery(tableName))
}

func (p *PostgresPersister) createVoteQueryString(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (vote_id, voter, content_id, vote_type, stake_amount, "+
		"vote_timestamp, status) VALUES (:vote_id, :voter, :content_id, :vote_type, :stake_amount, "+
		":vote_timestamp, :status);", tableName)
}

func (p *PostgresPersister) updateVoteQueryString(tableName string) string {
	return fmt.Sprintf("UPDATE %s SET status=:status WHERE vote_id=:vote_id;", tableName)
}

func (p *PostgresPersister) createProtocolEventQueryString(tableName string) string {
	return fmt.Sprintf("INSERT INTO %s (event_type, metadata, creation_timestamp) VALUES "+
		"(:event_type, :metadata, :creation_timestamp);", tableName)
}

func (p *PostgresPersister) protocolEventsByTypeQuery(tableName string) string {
	return fmt.Sprintf("SELECT event_type, metadata, creation_timestamp FROM %s WHERE "+
		"event_type=$1 ORDER BY creation_timestamp;", tableName)
}
