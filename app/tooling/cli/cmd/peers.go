package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
	"github.com/timo-juhani/blockchain/foundation/blockchain/peer"
)

var addPeers []string

var peersCmd = &cobra.Command{
	Use:   "peers",
	Short: "Print or extend the set of known peers",
	Run:   peersRun,
}

func init() {
	rootCmd.AddCommand(peersCmd)
	peersCmd.Flags().StringSliceVarP(&addPeers, "add", "a", nil, "Peer addresses to register with the node.")
}

func peersRun(cmd *cobra.Command, args []string) {
	if len(addPeers) > 0 {
		registerPeers()
		return
	}

	resp, err := http.Get(fmt.Sprintf("%s/v1/peers/list", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var peers []peer.Peer
	if err := json.NewDecoder(resp.Body).Decode(&peers); err != nil {
		log.Fatal(err)
	}

	for _, p := range peers {
		fmt.Println(p.Host)
	}
}

func registerPeers() {
	payload := struct {
		Peers []string `json:"peers"`
	}{
		Peers: addPeers,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/peers/add", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result struct {
		Message    string      `json:"message"`
		TotalNodes []peer.Peer `json:"total_nodes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Message)
	for _, p := range result.TotalNodes {
		fmt.Println(p.Host)
	}
}
