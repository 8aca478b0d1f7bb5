package main

import (
	"os"

	"github.com/rcliao/aoc2018/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
