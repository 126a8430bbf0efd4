package validate_test

import (
	"context"
	"testing"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/genesis"
	"github.com/timo-juhani/blockchain/foundation/blockchain/ledger"
	"github.com/timo-juhani/blockchain/foundation/blockchain/pow"
	"github.com/timo-juhani/blockchain/foundation/blockchain/validate"
)

// Success and failure markers.
const (
	success = "✓"
	failed  = "✗"
)

// buildChain mines the specified number of blocks over a fresh ledger.
func buildChain(t *testing.T, blocks int) []block.Block {
	t.Helper()

	l := ledger.New(genesis.Default())

	for i := 0; i < blocks; i++ {
		prev := l.PreviousBlock()

		proof, err := pow.Solve(context.Background(), prev.Proof)
		if err != nil {
			t.Fatalf("\t%s\tShould be able to solve the puzzle: %v", failed, err)
		}

		l.AddTransaction("A", "B", "10")
		l.CreateBlock(proof, block.Hash(prev))
	}

	return l.Chain()
}

func TestChain(t *testing.T) {
	t.Log("Given the need to audit a chain of blocks.")
	{
		t.Logf("\tTest 0:\tWhen auditing a chain of mined blocks.")
		{
			chain := buildChain(t, 3)

			if !validate.Chain(chain) {
				t.Fatalf("\t%s\tTest 0:\tShould accept a properly mined chain.", failed)
			}
			t.Logf("\t%s\tTest 0:\tShould accept a properly mined chain.", success)
		}

		t.Logf("\tTest 1:\tWhen auditing a single genesis block.")
		{
			chain := []block.Block{block.Genesis(genesis.Default())}

			if !validate.Chain(chain) {
				t.Fatalf("\t%s\tTest 1:\tShould accept a genesis only chain.", failed)
			}
			t.Logf("\t%s\tTest 1:\tShould accept a genesis only chain.", success)
		}

		t.Logf("\tTest 2:\tWhen a stored proof has been tampered with.")
		{
			chain := buildChain(t, 2)
			chain[1].Proof++

			if validate.Chain(chain) {
				t.Fatalf("\t%s\tTest 2:\tShould reject a tampered proof.", failed)
			}
			t.Logf("\t%s\tTest 2:\tShould reject a tampered proof.", success)
		}

		t.Logf("\tTest 3:\tWhen a block body has been tampered with.")
		{
			chain := buildChain(t, 2)
			chain[1].Trans[0].Amount = "1000000"

			if validate.Chain(chain) {
				t.Fatalf("\t%s\tTest 3:\tShould reject a broken hash link.", failed)
			}
			t.Logf("\t%s\tTest 3:\tShould reject a broken hash link.", success)
		}

		t.Logf("\tTest 4:\tWhen a previous hash has been rewritten.")
		{
			chain := buildChain(t, 2)
			chain[2].PrevBlockHash = "0000aaaa"

			if validate.Chain(chain) {
				t.Fatalf("\t%s\tTest 4:\tShould reject a rewritten link.", failed)
			}
			t.Logf("\t%s\tTest 4:\tShould reject a rewritten link.", success)
		}
	}
}
