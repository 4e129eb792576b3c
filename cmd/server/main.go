// Package main is the entry point for the Pokerole bot
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "pokerole-bot",
	Short: "Pokerole rules bot",
	Long:  `Pokerole bot resolves dice pools, clashes, evasion and damage for tables playing over Discord.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "load settings from this .env file")

	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(actorCmd)
	rootCmd.AddCommand(itemCmd)
}
