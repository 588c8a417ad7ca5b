package main

import (
	"fmt"
	"os"

	"github.com/smartcontractkit/lottery/cmd/lottery"
)

func main() {
	rootCmd := lottery.BuildLotteryCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
