package state

import (
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
)

// SubmitTransaction places the specified transaction in the pending pool
// and returns the index of the block that could include it. The values
// are opaque; field presence is the caller's concern.
func (s *State) SubmitTransaction(sender string, receiver string, amount string) uint64 {
	index := s.ledger.AddTransaction(sender, receiver, amount)

	s.evHandler("state: SubmitTransaction: tx[%s -> %s] queued for block %d", sender, receiver, index)

	return index
}

// RegisterPeer adds the specified address to the set of known peers. The
// call is idempotent; registering the same address twice leaves one entry.
func (s *State) RegisterPeer(address string) peer.Peer {
	pr := peer.New(address)

	if s.knownPeers.Add(pr) {
		s.evHandler("state: RegisterPeer: added peer[%s]", pr.Host)
	}

	return pr
}
