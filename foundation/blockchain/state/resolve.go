package state

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
	"github.com/timo-juhani/blockchain/foundation/blockchain/validate"
)

// Fan-out bound and per-peer budget for consensus resolution. One slow or
// unreachable peer must not stall the whole pass.
const (
	resolveMaxInFlight = 8
	resolveFetchWait   = 5 * time.Second
)

// ResolveConsensus asks every known peer for its chain and adopts the
// longest one that is strictly longer than ours and passes validation.
// Unreachable peers, non-success responses and invalid chains count as
// abstentions; they never abort the pass. The call reports whether the
// chain was replaced and returns the chain the ledger holds afterwards.
func (s *State) ResolveConsensus(ctx context.Context) (bool, []block.Block) {
	s.evHandler("state: ResolveConsensus: started")
	defer s.evHandler("state: ResolveConsensus: completed")

	peers := s.knownPeers.Copy(s.host)

	// Keep the result slots in a fixed order so the selection below does
	// not depend on response timing.
	sort.Slice(peers, func(i, j int) bool { return peers[i].Host < peers[j].Host })

	responses := make([]ChainResponse, len(peers))

	var wg sync.WaitGroup
	inFlight := make(chan struct{}, resolveMaxInFlight)

	for i, pr := range peers {
		wg.Add(1)

		go func(i int, pr peer.Peer) {
			defer wg.Done()

			inFlight <- struct{}{}
			defer func() { <-inFlight }()

			ctx, cancel := context.WithTimeout(ctx, resolveFetchWait)
			defer cancel()

			resp, err := s.fetcher.FetchChain(ctx, pr)
			if err != nil {
				s.evHandler("state: ResolveConsensus: peer[%s]: no vote: %s", pr.Host, err)
				return
			}

			responses[i] = resp
		}(i, pr)
	}

	wg.Wait()

	// All fetches are in. Take the mining lock so a block being committed
	// right now can't interleave with the swap.
	s.mining.Lock()
	defer s.mining.Unlock()

	maxLength := s.ledger.Height()
	var longest []block.Block

	for i, resp := range responses {
		if resp.Length <= maxLength || len(resp.Chain) != resp.Length {
			continue
		}

		if !validate.Chain(resp.Chain) {
			s.evHandler("state: ResolveConsensus: peer[%s]: chain of length %d failed validation", peers[i].Host, resp.Length)
			continue
		}

		maxLength = resp.Length
		longest = resp.Chain
	}

	if longest == nil {
		return false, s.ledger.Chain()
	}

	replaced := s.ledger.ReplaceChain(longest)
	if replaced {
		s.evHandler("state: ResolveConsensus: chain replaced: height[%d]", maxLength)
	}

	return replaced, s.ledger.Chain()
}
