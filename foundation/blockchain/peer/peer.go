// Package peer maintains the peer related information such as the set
// of known peers and their status.
package peer

import (
	"net/url"
	"strings"
	"sync"
)

// Peer represents information about a node in the network.
type Peer struct {
	Host string `json:"host"`
}

// New constructs a peer from the specified address. The address is
// reduced to its host:port form first.
func New(address string) Peer {
	return Peer{
		Host: Normalize(address),
	}
}

// Match validates if the specified host matches this node.
func (p Peer) Match(host string) bool {
	return p.Host == host
}

// Normalize reduces an address to its host:port form. A full URL loses
// its scheme and path; a bare host:port passes through unchanged. No
// reachability check is performed; whatever the parser produces is what
// gets registered.
func Normalize(address string) string {
	addr := strings.TrimSpace(address)
	if !strings.Contains(addr, "//") {
		addr = "//" + addr
	}

	u, err := url.Parse(addr)
	if err != nil {
		return ""
	}

	return u.Host
}

// =============================================================================

// Status represents information about the state of any given peer.
type Status struct {
	LatestBlockHash   string `json:"latest_block_hash"`
	LatestBlockNumber uint64 `json:"latest_block_number"`
	KnownPeers        []Peer `json:"known_peers"`
}

// =============================================================================

// PeerSet represents the data representation to maintain a set of known peers.
type PeerSet struct {
	mu  sync.RWMutex
	set map[Peer]struct{}
}

// NewPeerSet constructs a new set to manage node peer information.
func NewPeerSet() *PeerSet {
	return &PeerSet{
		set: make(map[Peer]struct{}),
	}
}

// Add adds a new peer to the set. Adding an existing peer is a no-op, so
// registration is idempotent.
func (ps *PeerSet) Add(peer Peer) bool {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	_, exists := ps.set[peer]
	if !exists {
		ps.set[peer] = struct{}{}
		return true
	}

	return false
}

// Count returns the number of known peers.
func (ps *PeerSet) Count() int {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	return len(ps.set)
}

// Copy returns a list of the known peers, excluding the specified host.
func (ps *PeerSet) Copy(host string) []Peer {
	ps.mu.RLock()
	defer ps.mu.RUnlock()

	var peers []Peer
	for peer := range ps.set {
		if !peer.Match(host) {
			peers = append(peers, peer)
		}
	}

	return peers
}
