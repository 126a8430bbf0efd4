package cmd

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/timo-juhani/blockchain/foundation/blockchain/block"
)

var mempoolCmd = &cobra.Command{
	Use:   "mempool",
	Short: "Print the transactions waiting for the next block",
	Run:   mempoolRun,
}

func init() {
	rootCmd.AddCommand(mempoolCmd)
}

func mempoolRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/tx/uncommitted/list", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var txs []block.Tx
	if err := json.NewDecoder(resp.Body).Decode(&txs); err != nil {
		log.Fatal(err)
	}

	for _, tx := range txs {
		fmt.Printf("%s -> %s  %s\n", tx.Sender, tx.Receiver, tx.Amount)
	}
}
