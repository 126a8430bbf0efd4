// Package validate implements the chain audit: every block must link to
// its parent by hash and carry a proof that wins the puzzle against the
// parent's proof.
package validate

import (
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/pow"
)

// Chain scans the specified chain and reports whether every block links
// to its predecessor and carries a winning proof. The scan stops at the
// first failing block. Each proof is confirmed with a single hash
// evaluation; the mining search is never re-run here.
func Chain(chain []block.Block) bool {
	for i := 1; i < len(chain); i++ {
		if chain[i].PrevBlockHash != block.Hash(chain[i-1]) {
			return false
		}

		if !pow.Verify(chain[i].Proof, chain[i-1].Proof) {
			return false
		}
	}

	return true
}
