// Package main is the entry point for the balance simulator
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Dice Dungeon balance simulator",
	Long:  `Simulate auto-plays complete dungeon runs with a greedy policy and reports win rates per class.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runCmd)
}
