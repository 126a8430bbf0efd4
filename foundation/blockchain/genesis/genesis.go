// Package genesis maintains access to the genesis information.
package genesis

import (
	"encoding/json"
	"os"
	"time"
)

// Genesis represents the information shared by every node in the network.
// The date feeds the genesis block's timestamp, so all members of a chain
// must agree on these values for their first blocks to link up.
type Genesis struct {
	Date         time.Time `json:"date"`
	ChainID      uint16    `json:"chain_id"`      // The chain id represents an unique id for this running network.
	MinerName    string    `json:"miner_name"`    // The name credited with the reward for mining a block.
	MiningReward string    `json:"mining_reward"` // Reward for mining a block.
}

// =============================================================================

// Default returns the genesis information hard coded into the node.
func Default() Genesis {
	return Genesis{
		Date:         time.Date(2023, time.March, 10, 0, 0, 0, 0, time.UTC),
		ChainID:      1,
		MinerName:    "node1",
		MiningReward: "1",
	}
}

// Load opens and consumes the genesis file if one exists, falling back to
// the defaults when it doesn't.
func Load(path string) (Genesis, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Genesis{}, err
	}

	genesis := Default()
	if err := json.Unmarshal(content, &genesis); err != nil {
		return Genesis{}, err
	}

	return genesis, nil
}
