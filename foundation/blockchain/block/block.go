// Package block defines the ledger's block and transaction types and the
// canonical hash that links blocks together.
package block

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"github.com/timo-juhani/blockchain/foundation/blockchain/genesis"
)

// ZeroHash is the previous hash value carried by the genesis block.
const ZeroHash = "0"

// =============================================================================

// Tx represents a transfer between two parties. All three values are
// opaque to the node; nothing here is interpreted or validated.
type Tx struct {
	Amount   string `json:"amount"`
	Receiver string `json:"receiver"`
	Sender   string `json:"sender"`
}

// NewTx constructs a new transaction for the pending pool.
func NewTx(sender string, receiver string, amount string) Tx {
	return Tx{
		Amount:   amount,
		Receiver: receiver,
		Sender:   sender,
	}
}

// =============================================================================

// Block represents a group of transactions batched together behind a
// proof of work. Field declaration order fixes the canonical encoding:
// json.Marshal emits the keys in this order (alphabetical), which keeps
// the hash bit-reproducible across nodes.
type Block struct {
	Index         uint64 `json:"index"`
	PrevBlockHash string `json:"previous_hash"`
	Proof         int64  `json:"proof"`
	TimeStamp     uint64 `json:"timestamp"`
	Trans         []Tx   `json:"transactions"`
}

// New constructs the next block in a chain from the winning proof, the
// hash of the previous block, and the transactions it will carry.
func New(index uint64, proof int64, prevBlockHash string, trans []Tx) Block {
	if trans == nil {
		trans = []Tx{}
	}

	return Block{
		Index:         index,
		PrevBlockHash: prevBlockHash,
		Proof:         proof,
		TimeStamp:     uint64(time.Now().UTC().Unix()),
		Trans:         trans,
	}
}

// Genesis constructs the first block of a chain. Every node using the same
// genesis information constructs the identical first block.
func Genesis(gen genesis.Genesis) Block {
	return Block{
		Index:         1,
		PrevBlockHash: ZeroHash,
		Proof:         1,
		TimeStamp:     uint64(gen.Date.UTC().Unix()),
		Trans:         []Tx{},
	}
}

// =============================================================================

// Hash returns a unique string for the specified block. Two blocks produce
// the same digest iff they are field for field identical, including the
// order of their transactions.
func Hash(b Block) string {
	data, err := json.Marshal(b)
	if err != nil {
		return ZeroHash
	}

	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
