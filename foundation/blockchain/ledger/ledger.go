// Package ledger owns the chain of blocks and the pending transaction
// pool for a single node.
package ledger

import (
	"sync"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/genesis"
	"github.com/timo-juhani/blockchain/foundation/blockchain/mempool"
)

// Ledger manages the chain and the pending pool. It is the sole owner of
// both; callers always receive copies.
type Ledger struct {
	mu      sync.RWMutex
	chain   []block.Block
	mempool *mempool.Mempool
}

// New constructs a ledger seeded with the genesis block. The chain is
// never empty after construction.
func New(gen genesis.Genesis) *Ledger {
	return &Ledger{
		chain:   []block.Block{block.Genesis(gen)},
		mempool: mempool.New(),
	}
}

// CreateBlock appends the next block to the chain using the specified
// proof and previous block hash. The pending pool drains into the new
// block inside the same critical section.
func (l *Ledger) CreateBlock(proof int64, prevBlockHash string) block.Block {
	l.mu.Lock()
	defer l.mu.Unlock()

	b := block.New(uint64(len(l.chain))+1, proof, prevBlockHash, l.mempool.Truncate())
	l.chain = append(l.chain, b)

	return b
}

// PreviousBlock returns the block at the head of the chain. The genesis
// block guarantees there always is one.
func (l *Ledger) PreviousBlock() block.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.chain[len(l.chain)-1]
}

// AddTransaction places a transaction in the pending pool and returns the
// index of the block that could include it. The index is a hint, not a
// promise; mining order is separate.
func (l *Ledger) AddTransaction(sender string, receiver string, amount string) uint64 {
	l.mu.RLock()
	defer l.mu.RUnlock()

	l.mempool.Add(block.NewTx(sender, receiver, amount))

	return l.chain[len(l.chain)-1].Index + 1
}

// ReplaceChain swaps the chain for the specified one when it is strictly
// longer than the chain held now. Equal length keeps the incumbent. The
// pending pool is untouched either way.
func (l *Ledger) ReplaceChain(chain []block.Block) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(chain) <= len(l.chain) {
		return false
	}

	c := make([]block.Block, len(chain))
	copy(c, chain)
	l.chain = c

	return true
}

// Chain returns a copy of the chain.
func (l *Ledger) Chain() []block.Block {
	l.mu.RLock()
	defer l.mu.RUnlock()

	chain := make([]block.Block, len(l.chain))
	copy(chain, l.chain)

	return chain
}

// Height returns the number of blocks in the chain.
func (l *Ledger) Height() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.chain)
}

// PendingTransactions returns a copy of the pending pool in arrival order.
func (l *Ledger) PendingTransactions() []block.Tx {
	return l.mempool.Copy()
}
