package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"
)

var (
	from   string
	to     string
	amount string
)

// sendCmd represents the send command
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Send transaction",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Sender of the transaction.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Receiver of the transaction.")
	sendCmd.Flags().StringVarP(&amount, "amount", "a", "0", "Amount to send.")
}

func sendRun(cmd *cobra.Command, args []string) {
	payload := struct {
		Sender   string `json:"sender"`
		Receiver string `json:"receiver"`
		Amount   string `json:"amount"`
	}{
		Sender:   from,
		Receiver: to,
		Amount:   amount,
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx/add", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var result struct {
		Message string `json:"message"`
		Index   uint64 `json:"index"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Message)
}
