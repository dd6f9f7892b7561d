package acctlock

import (
	"sync"

	"github.com/nmarques/bankledger-backend/internal/domain"
)

// KeyedMutex serializes balance-mutating operations per account identity.
// A fetch-mutate-persist sequence is not atomic on its own: two concurrent
// withdrawals could both pass the funds check against a stale balance and
// overdraw. Holding the account's lock across the whole sequence keeps the
// non-negativity invariant under concurrency.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[domain.AccountID]*sync.Mutex
}

// NewKeyedMutex creates an empty lock registry
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{
		locks: make(map[domain.AccountID]*sync.Mutex),
	}
}

// Lock acquires the exclusive section for one account.
// Operations on unrelated accounts do not contend.
func (k *KeyedMutex) Lock(id domain.AccountID) {
	k.mu.Lock()
	lock, ok := k.locks[id]
	if !ok {
		lock = &sync.Mutex{}
		k.locks[id] = lock
	}
	k.mu.Unlock()

	lock.Lock()
}

// Unlock releases the exclusive section for one account
func (k *KeyedMutex) Unlock(id domain.AccountID) {
	k.mu.Lock()
	lock := k.locks[id]
	k.mu.Unlock()

	lock.Unlock()
}
