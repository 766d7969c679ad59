// Package main provides the FOA ingestion command line interface.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "foa_agent",
	Short: "Funding opportunity ingestion and tagging pipeline",
	Long:  "foa_agent extracts structured records from government grant announcement pages and assigns controlled-vocabulary semantic tags, writing JSON and CSV output.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
