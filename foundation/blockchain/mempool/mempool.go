// Package mempool maintains the pool of transactions waiting to be
// included in the next mined block.
package mempool

import (
	"sync"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
)

// Mempool represents a cache of transactions in arrival order. Order is
// preserved so a mined block carries the transactions exactly as they
// were accepted.
type Mempool struct {
	mu   sync.RWMutex
	pool []block.Tx
}

// New constructs a new mempool for use.
func New() *Mempool {
	return &Mempool{}
}

// Count returns the current number of transactions in the pool.
func (mp *Mempool) Count() int {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	return len(mp.pool)
}

// Add appends a transaction to the pool and returns the new pool size.
func (mp *Mempool) Add(tx block.Tx) int {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	mp.pool = append(mp.pool, tx)

	return len(mp.pool)
}

// Copy returns a copy of the pool in arrival order.
func (mp *Mempool) Copy() []block.Tx {
	mp.mu.RLock()
	defer mp.mu.RUnlock()

	txs := make([]block.Tx, len(mp.pool))
	copy(txs, mp.pool)

	return txs
}

// Truncate clears the pool and returns the transactions it held. The swap
// is a single critical section, so a transaction is never duplicated
// across two blocks or dropped.
func (mp *Mempool) Truncate() []block.Tx {
	mp.mu.Lock()
	defer mp.mu.Unlock()

	txs := mp.pool
	if txs == nil {
		txs = []block.Tx{}
	}
	mp.pool = nil

	return txs
}
