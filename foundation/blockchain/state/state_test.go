package state_test

import (
	"context"
	"errors"
	"testing"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/genesis"
	"github.com/timo-juhani/blockchain/foundation/blockchain/ledger"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
	"github.com/timo-juhani/blockchain/foundation/blockchain/pow"
	"github.com/timo-juhani/blockchain/foundation/blockchain/state"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// fakeFetcher hands each peer a canned chain response or error. It stands
// in for the HTTP transport during consensus tests.
type fakeFetcher struct {
	responses map[string]state.ChainResponse
	errs      map[string]error
}

func (f fakeFetcher) FetchChain(ctx context.Context, pr peer.Peer) (state.ChainResponse, error) {
	if err, exists := f.errs[pr.Host]; exists {
		return state.ChainResponse{}, err
	}
	return f.responses[pr.Host], nil
}

// mineChain produces a valid chain of the specified height, genesis
// block included.
func mineChain(t *testing.T, height int) []block.Block {
	t.Helper()

	l := ledger.New(genesis.Default())

	for l.Height() < height {
		prev := l.PreviousBlock()

		proof, err := pow.Solve(context.Background(), prev.Proof)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to solve the puzzle: %v", failed, err)
		}

		l.CreateBlock(proof, block.Hash(prev))
	}

	return l.Chain()
}

func newState(t *testing.T, peers []string, fetcher state.ChainFetcher) *state.State {
	t.Helper()

	ps := peer.NewPeerSet()
	for _, host := range peers {
		ps.Add(peer.Peer{Host: host})
	}

	st, err := state.New(state.Config{
		Host:       "0.0.0.0:9080",
		NodeID:     "aa11",
		Genesis:    genesis.Default(),
		KnownPeers: ps,
		Fetcher:    fetcher,
	})
	if err != nil {
		t.Fatalf("\t%s\tShould be able to construct state: %v", failed, err)
	}

	return st
}

func TestMineNewBlock(t *testing.T) {
	t.Log("Given the need to mine blocks over the pending pool.")
	{
		t.Logf("\tTest 0:\tWhen mining with one pending transaction.")
		{
			st := newState(t, nil, fakeFetcher{})

			if index := st.SubmitTransaction("A", "B", "10"); index != 2 {
				t.Fatalf("\t%s\tTest 0:\tShould target block 2: got %d", failed, index)
			}
			t.Logf("\t%s\tTest 0:\tShould target block 2.", success)

			b, err := st.MineNewBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 0:\tShould be able to mine a block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 0:\tShould be able to mine a block.", success)

			if b.Index != 2 || b.Proof != 533 {
				t.Logf("\t%s\tTest 0:\tgot: index %d proof %d", failed, b.Index, b.Proof)
				t.Fatalf("\t%s\tTest 0:\tShould commit block 2 with the known proof.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould commit block 2 with the known proof.", success)

			if len(b.Trans) != 1 || b.Trans[0] != block.NewTx("A", "B", "10") {
				t.Fatalf("\t%s\tTest 0:\tShould carry the pending transaction: got %v", failed, b.Trans)
			}
			t.Logf("\t%s\tTest 0:\tShould carry the pending transaction.", success)

			if !st.ValidateChain() {
				t.Fatalf("\t%s\tTest 0:\tShould leave the chain valid.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould leave the chain valid.", success)

			// The reward for this block waits in the pool for the next one.
			txs := st.RetrieveMempool()
			if len(txs) != 1 || txs[0] != block.NewTx("aa11", "node1", "1") {
				t.Fatalf("\t%s\tTest 0:\tShould queue the mining reward: got %v", failed, txs)
			}
			t.Logf("\t%s\tTest 0:\tShould queue the mining reward.", success)
		}

		t.Logf("\tTest 1:\tWhen mining two blocks back to back.")
		{
			st := newState(t, nil, fakeFetcher{})

			if _, err := st.MineNewBlock(context.Background()); err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine the first block: %v", failed, err)
			}

			b, err := st.MineNewBlock(context.Background())
			if err != nil {
				t.Fatalf("\t%s\tTest 1:\tShould be able to mine the second block: %v", failed, err)
			}
			t.Logf("\t%s\tTest 1:\tShould be able to mine back to back.", success)

			if b.Proof != 45293 {
				t.Fatalf("\t%s\tTest 1:\tShould chain the proofs: got %d", failed, b.Proof)
			}
			t.Logf("\t%s\tTest 1:\tShould chain the proofs.", success)

			if !st.ValidateChain() {
				t.Fatalf("\t%s\tTest 1:\tShould leave the chain valid.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould leave the chain valid.", success)
		}

		t.Logf("\tTest 2:\tWhen mining with a cancelled context.")
		{
			st := newState(t, nil, fakeFetcher{})

			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			if _, err := st.MineNewBlock(ctx); !errors.Is(err, context.Canceled) {
				t.Fatalf("\t%s\tTest 2:\tShould abandon the search: %v", failed, err)
			}
			t.Logf("\t%s\tTest 2:\tShould abandon the search.", success)

			if _, length := st.RetrieveChain(); length != 1 {
				t.Fatalf("\t%s\tTest 2:\tShould leave the chain untouched: got %d", failed, length)
			}
			t.Logf("\t%s\tTest 2:\tShould leave the chain untouched.", success)
		}
	}
}

func TestResolveConsensus(t *testing.T) {
	longer := func(t *testing.T) []block.Block { return mineChain(t, 3) }

	t.Log("Given the need to settle on the longest valid chain.")
	{
		t.Logf("\tTest 0:\tWhen a peer holds a longer valid chain.")
		{
			chain := longer(t)
			fetcher := fakeFetcher{
				responses: map[string]state.ChainResponse{
					"host1:9080": {Chain: chain, Length: len(chain)},
				},
			}
			st := newState(t, []string{"host1:9080"}, fetcher)

			replaced, got := st.ResolveConsensus(context.Background())
			if !replaced {
				t.Fatalf("\t%s\tTest 0:\tShould adopt the longer chain.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould adopt the longer chain.", success)

			if len(got) != 3 {
				t.Fatalf("\t%s\tTest 0:\tShould hold the adopted chain: got %d", failed, len(got))
			}
			t.Logf("\t%s\tTest 0:\tShould hold the adopted chain.", success)
		}

		t.Logf("\tTest 1:\tWhen every peer holds an equal or shorter chain.")
		{
			gen := []block.Block{block.Genesis(genesis.Default())}
			fetcher := fakeFetcher{
				responses: map[string]state.ChainResponse{
					"host1:9080": {Chain: gen, Length: 1},
				},
			}
			st := newState(t, []string{"host1:9080"}, fetcher)

			if replaced, _ := st.ResolveConsensus(context.Background()); replaced {
				t.Fatalf("\t%s\tTest 1:\tShould keep the incumbent chain.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould keep the incumbent chain.", success)
		}

		t.Logf("\tTest 2:\tWhen a longer chain fails validation.")
		{
			chain := longer(t)
			chain[1].Proof++

			fetcher := fakeFetcher{
				responses: map[string]state.ChainResponse{
					"host1:9080": {Chain: chain, Length: len(chain)},
				},
			}
			st := newState(t, []string{"host1:9080"}, fetcher)

			if replaced, _ := st.ResolveConsensus(context.Background()); replaced {
				t.Fatalf("\t%s\tTest 2:\tShould reject the tampered chain.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould reject the tampered chain.", success)
		}

		t.Logf("\tTest 3:\tWhen a peer reports a length its chain does not have.")
		{
			fetcher := fakeFetcher{
				responses: map[string]state.ChainResponse{
					"host1:9080": {Chain: nil, Length: 50},
				},
			}
			st := newState(t, []string{"host1:9080"}, fetcher)

			if replaced, _ := st.ResolveConsensus(context.Background()); replaced {
				t.Fatalf("\t%s\tTest 3:\tShould ignore the inconsistent response.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould ignore the inconsistent response.", success)
		}

		t.Logf("\tTest 4:\tWhen a peer is unreachable.")
		{
			chain := longer(t)
			fetcher := fakeFetcher{
				responses: map[string]state.ChainResponse{
					"host2:9080": {Chain: chain, Length: len(chain)},
				},
				errs: map[string]error{
					"host1:9080": errors.New("connection refused"),
				},
			}
			st := newState(t, []string{"host1:9080", "host2:9080"}, fetcher)

			replaced, got := st.ResolveConsensus(context.Background())
			if !replaced {
				t.Fatalf("\t%s\tTest 4:\tShould adopt from the reachable peer.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould adopt from the reachable peer.", success)

			if len(got) != 3 {
				t.Fatalf("\t%s\tTest 4:\tShould hold the adopted chain: got %d", failed, len(got))
			}
			t.Logf("\t%s\tTest 4:\tShould hold the adopted chain.", success)
		}

		t.Logf("\tTest 5:\tWhen two peers hold longer chains of different heights.")
		{
			three := mineChain(t, 3)
			four := mineChain(t, 4)

			fetcher := fakeFetcher{
				responses: map[string]state.ChainResponse{
					"host1:9080": {Chain: three, Length: len(three)},
					"host2:9080": {Chain: four, Length: len(four)},
				},
			}
			st := newState(t, []string{"host1:9080", "host2:9080"}, fetcher)

			replaced, got := st.ResolveConsensus(context.Background())
			if !replaced || len(got) != 4 {
				t.Fatalf("\t%s\tTest 5:\tShould adopt the longest chain: replaced %v length %d", failed, replaced, len(got))
			}
			t.Logf("\t%s\tTest 5:\tShould adopt the longest chain.", success)
		}
	}
}

func TestRegisterPeer(t *testing.T) {
	t.Log("Given the need to register peers from submitted addresses.")
	{
		t.Logf("\tTest 0:\tWhen registering an address with a scheme.")
		{
			st := newState(t, nil, fakeFetcher{})

			pr := st.RegisterPeer("http://host9:9080")
			if pr.Host != "host9:9080" {
				t.Fatalf("\t%s\tTest 0:\tShould normalize the address: got %q", failed, pr.Host)
			}
			t.Logf("\t%s\tTest 0:\tShould normalize the address.", success)

			st.RegisterPeer("host9:9080")
			if len(st.RetrieveKnownPeers()) != 1 {
				t.Fatalf("\t%s\tTest 0:\tShould register each peer once.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould register each peer once.", success)
		}
	}
}
