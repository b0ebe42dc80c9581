// File: cmd/goodfoods-cli/main.go
package main

import (
	"fmt"
	"os"

	"goodfoods/cmd/goodfoods-cli/commands"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goodfoods",
	Short: "GoodFoods CLI - restaurant discovery and table booking assistant",
	Long: `GoodFoods is a conversational restaurant assistant. The chat command
talks to the configured LLM provider and books tables against the local
catalog and ledger files, while seed maintains derived catalog fields.`,
}

func main() {

	// Register commands

	rootCmd.AddCommand(commands.ChatCmd)

	rootCmd.AddCommand(commands.SeedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
