package ledger

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// NewInMemoryLedger creates an empty in-memory ledger. Useful for local runs
// without a database and for tests.
func NewInMemoryLedger() *InMemoryLedger {
	return &InMemoryLedger{
		balances: map[common.Address]uint64{},
	}
}

// InMemoryLedger is a map backed ledger. Safe for concurrent use.
type InMemoryLedger struct {
	mutex    sync.Mutex
	balances map[common.Address]uint64
}

// Transfer moves amount from one account to another
func (l *InMemoryLedger) Transfer(from common.Address, to common.Address, amount uint64) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if l.balances[from] < amount {
		return ErrInsufficientBalance
	}
	l.balances[from] -= amount
	l.balances[to] += amount
	return nil
}

// Balance returns the current balance of an account
func (l *InMemoryLedger) Balance(account common.Address) (uint64, error) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	return l.balances[account], nil
}

// Credit adds amount to an account
func (l *InMemoryLedger) Credit(account common.Address, amount uint64) error {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.balances[account] += amount
	return nil
}
