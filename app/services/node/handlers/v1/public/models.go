package public

import (
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
)

// tx represents a transaction submitted for inclusion in a future block.
// All three fields must be present; the values are not interpreted.
type tx struct {
	Sender   string `json:"sender" validate:"required"`
	Receiver string `json:"receiver" validate:"required"`
	Amount   string `json:"amount" validate:"required"`
}

// registerPeers represents a request to connect this node with others.
type registerPeers struct {
	Peers []string `json:"peers" validate:"required,min=1"`
}

// chainInfo is the public form of the node's chain.
type chainInfo struct {
	Chain  []block.Block `json:"chain"`
	Length int           `json:"length"`
}
