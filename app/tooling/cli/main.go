package main

import "github.com/timo-juhani/blockchain/app/tooling/cli/cmd"

func main() {
	cmd.Execute()
}
