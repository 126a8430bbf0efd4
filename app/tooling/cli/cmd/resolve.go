package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve",
	Short: "Run consensus resolution against the known peers",
	Run:   resolveRun,
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}

func resolveRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/chain/resolve", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result struct {
		Replaced bool          `json:"replaced"`
		Chain    []block.Block `json:"chain"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	if result.Replaced {
		fmt.Println("chain was replaced")
	} else {
		fmt.Println("chain is authoritative")
	}
	fmt.Println("length:", len(result.Chain))
}
