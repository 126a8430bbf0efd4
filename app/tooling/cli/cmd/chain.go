package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
)

var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the chain the node currently holds",
	Run:   chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/chain/list", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result struct {
		Chain  []block.Block `json:"chain"`
		Length int           `json:"length"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	fmt.Println("length:", result.Length)
	for _, b := range result.Chain {
		fmt.Printf("block %d  proof %d  prev %s  trans %d\n", b.Index, b.Proof, b.PrevBlockHash, len(b.Trans))
	}
}
