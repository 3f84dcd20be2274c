package main

import (
	"os"

	"savings-ledger/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
