// Package public maintains the group of handlers for public access.
package public

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/timo-juhani/blockchain/business/sys/validate"
	"github.com/timo-juhani/blockchain/business/web/errs"
	"github.com/timo-juhani/blockchain/business/web/metrics"
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
	"github.com/timo-juhani/blockchain/foundation/blockchain/state"
	"github.com/timo-juhani/blockchain/foundation/events"
	"github.com/timo-juhani/blockchain/foundation/web"
	"go.uber.org/zap"
)

// Handlers manages the set of public endpoints.
type Handlers struct {
	Log   *zap.SugaredLogger
	State *state.State
	WS    websocket.Upgrader
	Evts  *events.Events
}

// Events handles a web socket to provide events to a client.
func (h Handlers) Events(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	h.WS.CheckOrigin = func(r *http.Request) bool { return true }

	c, err := h.WS.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer c.Close()

	ch := h.Evts.Acquire(v.TraceID)
	defer h.Evts.Release(v.TraceID)

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case msg, wd := <-ch:
			if !wd {
				return nil
			}

			if err := c.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
				return err
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, []byte("ping")); err != nil {
				return nil
			}
		}
	}
}

// Mine performs the proof of work search and extends the chain with the
// block it produces.
func (h Handlers) Mine(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	b, err := h.State.MineNewBlock(ctx)
	if err != nil {
		return fmt.Errorf("unable to mine block: %w", err)
	}

	metrics.AddBlockMined()

	resp := struct {
		Message string      `json:"message"`
		Block   block.Block `json:"block"`
	}{
		Message: "new block has been mined",
		Block:   b,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Chain returns the chain this node currently holds.
func (h Handlers) Chain(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	blocks, length := h.State.RetrieveChain()

	resp := chainInfo{
		Chain:  blocks,
		Length: length,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Validate audits the chain this node currently holds.
func (h Handlers) Validate(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	resp := struct {
		Valid bool `json:"valid"`
	}{
		Valid: h.State.ValidateChain(),
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// Resolve runs consensus resolution against the known peers and reports
// whether the chain was replaced.
func (h Handlers) Resolve(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	replaced, blocks := h.State.ResolveConsensus(ctx)
	if replaced {
		metrics.AddChainReplacement()
	}

	resp := struct {
		Replaced bool          `json:"replaced"`
		Chain    []block.Block `json:"chain"`
	}{
		Replaced: replaced,
		Chain:    blocks,
	}

	return web.Respond(ctx, w, resp, http.StatusOK)
}

// AddTransaction adds a new transaction to the pending pool.
func (h Handlers) AddTransaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	v, err := web.GetValues(ctx)
	if err != nil {
		return web.NewShutdownError("web value missing from context")
	}

	var payload tx
	if err := web.Decode(r, &payload); err != nil {
		return errs.NewTrusted(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	// The core accepts anything; field presence is checked here at the edge.
	if err := validate.Check(payload); err != nil {
		return err
	}

	h.Log.Infow("add tran", "traceid", v.TraceID, "sender", payload.Sender, "receiver", payload.Receiver, "amount", payload.Amount)

	index := h.State.SubmitTransaction(payload.Sender, payload.Receiver, payload.Amount)
	metrics.AddTransaction()

	resp := struct {
		Message string `json:"message"`
		Index   uint64 `json:"index"`
	}{
		Message: fmt.Sprintf("transaction will be added to block %d", index),
		Index:   index,
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Mempool returns the set of uncommitted transactions.
func (h Handlers) Mempool(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	txs := h.State.RetrieveMempool()
	return web.Respond(ctx, w, txs, http.StatusOK)
}

// AddPeers registers the specified addresses with this node.
func (h Handlers) AddPeers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	var payload registerPeers
	if err := web.Decode(r, &payload); err != nil {
		return errs.NewTrusted(fmt.Errorf("unable to decode payload: %w", err), http.StatusBadRequest)
	}

	if err := validate.Check(payload); err != nil {
		return err
	}

	for _, address := range payload.Peers {
		h.State.RegisterPeer(address)
	}

	resp := struct {
		Message    string      `json:"message"`
		TotalNodes []peer.Peer `json:"total_nodes"`
	}{
		Message:    "peers are connected",
		TotalNodes: h.State.RetrieveKnownPeers(),
	}

	return web.Respond(ctx, w, resp, http.StatusCreated)
}

// Peers returns the set of known peers.
func (h Handlers) Peers(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	return web.Respond(ctx, w, h.State.RetrieveKnownPeers(), http.StatusOK)
}
