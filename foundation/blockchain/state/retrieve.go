package state

import (
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/genesis"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
	"github.com/timo-juhani/blockchain/foundation/blockchain/validate"
)

// RetrieveHost returns a copy of the host information.
func (s *State) RetrieveHost() string {
	return s.host
}

// RetrieveNodeID returns the identity this node signs mining rewards with.
func (s *State) RetrieveNodeID() string {
	return s.nodeID
}

// RetrieveGenesis returns a copy of the genesis information.
func (s *State) RetrieveGenesis() genesis.Genesis {
	return s.genesis
}

// RetrieveChain returns a copy of the chain and its length.
func (s *State) RetrieveChain() ([]block.Block, int) {
	chain := s.ledger.Chain()
	return chain, len(chain)
}

// RetrieveLatestBlock returns a copy of the current latest block.
func (s *State) RetrieveLatestBlock() block.Block {
	return s.ledger.PreviousBlock()
}

// RetrieveMempool returns a copy of the pending transaction pool.
func (s *State) RetrieveMempool() []block.Tx {
	return s.ledger.PendingTransactions()
}

// RetrieveKnownPeers retrieves a copy of the known peer list.
func (s *State) RetrieveKnownPeers() []peer.Peer {
	return s.knownPeers.Copy(s.host)
}

// ValidateChain audits the chain the ledger currently holds.
func (s *State) ValidateChain() bool {
	return validate.Chain(s.ledger.Chain())
}
