package ledger_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"

	"github.com/scrynet/moderation-protocol/pkg/ledger"
)

var (
	accountA = common.HexToAddress("0x2652c60CF04bBf6bB6cC8A5e6f1C18143729d440")
	accountB = common.HexToAddress("0x3F75ae61Cc1d8042653b5BAec4443e051c5E7dbC")
)

func TestInMemoryLedgerTransfer(t *testing.T) {
	l := ledger.NewInMemoryLedger()

	err := l.Credit(accountA, 1000)
	if err != nil {
		t.Fatalf("Should have credited the account: err: %v", err)
	}

	err = l.Transfer(accountA, accountB, 400)
	if err != nil {
		t.Fatalf("Should have transferred: err: %v", err)
	}

	balanceA, _ := l.Balance(accountA)
	if balanceA != 600 {
		t.Errorf("Should have debited the source: %v", balanceA)
	}
	balanceB, _ := l.Balance(accountB)
	if balanceB != 400 {
		t.Errorf("Should have credited the destination: %v", balanceB)
	}
}

func TestInMemoryLedgerInsufficientBalance(t *testing.T) {
	l := ledger.NewInMemoryLedger()

	err := l.Credit(accountA, 100)
	if err != nil {
		t.Fatalf("Should have credited the account: err: %v", err)
	}

	err = l.Transfer(accountA, accountB, 101)
	if err != ledger.ErrInsufficientBalance {
		t.Errorf("Should have rejected the overdraw: err: %v", err)
	}

	balanceA, _ := l.Balance(accountA)
	if balanceA != 100 {
		t.Errorf("Should not have moved value on a failed transfer: %v", balanceA)
	}
	balanceB, _ := l.Balance(accountB)
	if balanceB != 0 {
		t.Errorf("Should not have credited the destination: %v", balanceB)
	}
}

func TestInMemoryLedgerUnknownAccount(t *testing.T) {
	l := ledger.NewInMemoryLedger()

	balance, err := l.Balance(accountA)
	if err != nil {
		t.Fatalf("Should not have gotten error reading an unknown account: err: %v", err)
	}
	if balance != 0 {
		t.Errorf("Should have reported a zero balance: %v", balance)
	}

	err = l.Transfer(accountA, accountB, 1)
	if err != ledger.ErrInsufficientBalance {
		t.Errorf("Should have rejected a transfer from an unknown account: err: %v", err)
	}
}
