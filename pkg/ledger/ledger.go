// Package ledger contains a PostgreSQL backed account ledger implementing
// the value transfer contract the engine depends on. Production deployments
// point the engine at the real token custody service instead.
package ledger // import "github.com/scrynet/moderation-protocol/pkg/ledger"

import (
	"database/sql"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const ledgerTableName = "ledger_account"

// ErrInsufficientBalance is returned when a transfer would overdraw the
// source account
var ErrInsufficientBalance = errors.New("insufficient balance")

// NewPostgresLedger creates a ledger over an initialized sqlx.DB and ensures
// its table exists
func NewPostgresLedger(db *sqlx.DB) (*PostgresLedger, error) {
	l := &PostgresLedger{db: db}
	err := l.createTable()
	if err != nil {
		return nil, err
	}
	return l, nil
}

// PostgresLedger is an account balance table with atomic transfers. Each
// transfer runs in a single DB transaction: debit and credit land together
// or not at all.
type PostgresLedger struct {
	db *sqlx.DB
}

// Transfer moves amount from one account to another atomically
func (l *PostgresLedger) Transfer(from common.Address, to common.Address, amount uint64) error {
	tx, err := l.db.Beginx()
	if err != nil {
		return errors.Wrap(err, "Error starting transfer transaction")
	}

	var balance uint64
	err = tx.Get(&balance, l.balanceForUpdateQuery(), from.Hex())
	if err != nil {
		_ = tx.Rollback() // nolint: gosec
		if err == sql.ErrNoRows {
			return ErrInsufficientBalance
		}
		return errors.Wrap(err, "Error reading source balance")
	}
	if balance < amount {
		_ = tx.Rollback() // nolint: gosec
		return ErrInsufficientBalance
	}

	_, err = tx.Exec(l.debitQuery(), amount, from.Hex())
	if err != nil {
		_ = tx.Rollback() // nolint: gosec
		return errors.Wrap(err, "Error debiting source account")
	}
	_, err = tx.Exec(l.creditQuery(), to.Hex(), amount)
	if err != nil {
		_ = tx.Rollback() // nolint: gosec
		return errors.Wrap(err, "Error crediting destination account")
	}

	return tx.Commit()
}

// Balance returns the current balance of an account. Unknown accounts have
// a zero balance.
func (l *PostgresLedger) Balance(account common.Address) (uint64, error) {
	var balance uint64
	err := l.db.Get(&balance, l.balanceQuery(), account.Hex())
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, nil
		}
		return 0, errors.Wrap(err, "Error reading balance")
	}
	return balance, nil
}

// Credit adds amount to an account, creating it if needed. Used to fund the
// reward pool and seed test accounts.
func (l *PostgresLedger) Credit(account common.Address, amount uint64) error {
	_, err := l.db.Exec(l.creditQuery(), account.Hex(), amount)
	if err != nil {
		return errors.Wrap(err, "Error crediting account")
	}
	return nil
}

func (l *PostgresLedger) createTable() error {
	schema := fmt.Sprintf(`
        CREATE TABLE IF NOT EXISTS %s(
            account TEXT PRIMARY KEY,
            balance NUMERIC
        );
    `, ledgerTableName)
	_, err := l.db.Exec(schema)
	if err != nil {
		return errors.Wrap(err, "Error creating ledger_account table in postgres")
	}
	return nil
}

func (l *PostgresLedger) balanceQuery() string {
	return fmt.Sprintf("SELECT balance FROM %s WHERE account=$1;", ledgerTableName)
}

func (l *PostgresLedger) balanceForUpdateQuery() string {
	return fmt.Sprintf("SELECT balance FROM %s WHERE account=$1 FOR UPDATE;", ledgerTableName)
}

func (l *PostgresLedger) debitQuery() string {
	return fmt.Sprintf("UPDATE %s SET balance=balance-$1 WHERE account=$2;", ledgerTableName)
}

func (l *PostgresLedger) creditQuery() string {
	return fmt.Sprintf("INSERT INTO %s (account, balance) VALUES ($1, $2) "+
		"ON CONFLICT (account) DO UPDATE SET balance=%s.balance+EXCLUDED.balance;",
		ledgerTableName, ledgerTableName)
}
