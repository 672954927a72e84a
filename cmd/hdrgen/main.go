package main

import (
	"fmt"
	"os"

	"github.com/teranos/hdrgen/cli"
	"github.com/teranos/hdrgen/logger"
)

func main() {
	defer logger.Cleanup()

	if err := cli.HdrgenCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
