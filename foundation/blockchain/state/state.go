// Package state is the core API for the blockchain node and implements
// all the business rules and processing.
package state

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
	"github.com/timo-juhani/blockchain/foundation/blockchain/genesis"
	"github.com/timo-juhani/blockchain/foundation/blockchain/ledger"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
)

// EventHandler defines a function that is called when events occur in the
// processing of mining and consensus.
type EventHandler func(v string, args ...any)

// ChainFetcher represents the behavior required to retrieve another
// node's chain. A transport failure is reported as an error and counts as
// an abstention during consensus resolution.
type ChainFetcher interface {
	FetchChain(ctx context.Context, pr peer.Peer) (ChainResponse, error)
}

// ChainResponse is the answer a peer gives when asked for its chain.
type ChainResponse struct {
	Chain  []block.Block `json:"chain"`
	Length int           `json:"length"`
}

// =============================================================================

// Config represents the configuration required to start the node.
type Config struct {
	Host       string
	NodeID     string
	Genesis    genesis.Genesis
	KnownPeers *peer.PeerSet
	Fetcher    ChainFetcher
	EvHandler  EventHandler
}

// State manages the blockchain node.
type State struct {
	host      string
	nodeID    string
	genesis   genesis.Genesis
	evHandler EventHandler

	ledger     *ledger.Ledger
	knownPeers *peer.PeerSet
	fetcher    ChainFetcher

	// mining serializes block commits and chain replacement so a solved
	// proof always lands on the previous block it was read from.
	mining sync.Mutex
}

// New constructs a new state value to manage the node. The ledger is
// built here with its genesis block in place.
func New(cfg Config) (*State, error) {

	// Build a safe event handler function for use.
	ev := func(v string, args ...any) {
		if cfg.EvHandler != nil {
			cfg.EvHandler(v, args...)
		}
	}

	knownPeers := cfg.KnownPeers
	if knownPeers == nil {
		knownPeers = peer.NewPeerSet()
	}

	fetcher := cfg.Fetcher
	if fetcher == nil {
		fetcher = newHTTPFetcher()
	}

	// The node identifies itself as the sender of mining rewards.
	nodeID := cfg.NodeID
	if nodeID == "" {
		nodeID = strings.ReplaceAll(uuid.NewString(), "-", "")
	}

	state := State{
		host:      cfg.Host,
		nodeID:    nodeID,
		genesis:   cfg.Genesis,
		evHandler: ev,

		ledger:     ledger.New(cfg.Genesis),
		knownPeers: knownPeers,
		fetcher:    fetcher,
	}

	return &state, nil
}
