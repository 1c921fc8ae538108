// Package main is the entry point for the spawn engine API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "collect-api",
	Short: "Collectible spawn engine API",
	Long:  `collect-api runs the spawn engine for multiplayer chat collection games: activity-triggered spawns, weighted rarity selection, claim arbitration, and despawn.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
}
