package state

import (
	"context"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/pow"
)

// MineNewBlock performs the proof of work search against the previous
// block and commits the winning block to the chain. The pending pool
// drains into the new block. The mining reward transaction is placed in
// the pool afterwards, so it lands in the next mined block.
func (s *State) MineNewBlock(ctx context.Context) (block.Block, error) {
	s.mining.Lock()
	defer s.mining.Unlock()

	s.evHandler("state: MineNewBlock: MINING: perform POW")

	prevBlock := s.ledger.PreviousBlock()

	proof, err := pow.Solve(ctx, prevBlock.Proof)
	if err != nil {
		return block.Block{}, err
	}

	// One more check; the solve loop only samples the context.
	if ctx.Err() != nil {
		return block.Block{}, ctx.Err()
	}

	s.evHandler("state: MineNewBlock: MINING: SOLVED: proof[%d]", proof)

	b := s.ledger.CreateBlock(proof, block.Hash(prevBlock))

	// Credit this node for the work. The reward transaction waits in the
	// pool like any other.
	s.ledger.AddTransaction(s.nodeID, s.genesis.MinerName, s.genesis.MiningReward)

	s.evHandler("state: MineNewBlock: MINING: block[%d] committed: trans[%d]", b.Index, len(b.Trans))

	return b, nil
}
