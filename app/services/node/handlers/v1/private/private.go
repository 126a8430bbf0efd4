// Package private maintains the group of handlers for node to node access.
package private

import (
	"context"
	"net/http"

	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
	"github.com/timo-juhani/blockchain/foundation/blockchain/state"
	"github.com/timo-juhani/blockchain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of node to node endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
}

// Chain returns the chain and its length. This is the contract consensus
// resolution consumes on every peer.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blocks, length := h.State.RetrieveChain()

	resp := state.ChainResponse{
		Chain:  blocks,
		Length: length,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Status returns the current status of the node.
func (h Handlers) Status(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	latestBlock := h.State.RetrieveLatestBlock()

	status := peer.Status{
		LatestBlockHash:   block.Hash(latestBlock),
		LatestBlockNumber: latestBlock.Index,
		KnownPeers:        h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, status, http.StatusOK)
}
