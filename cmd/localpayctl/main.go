package main

import (
	"fmt"
	"os"

	"localpay-gateway/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "localpayctl:", err)
		os.Exit(1)
	}
}
