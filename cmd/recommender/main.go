// Package main provides the entry point for the course recommender.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "recommender",
	Short: "Course and career opportunity recommendation engine",
	Long:  "Ranks external learning and career opportunities against a student's enrolled courses and profile, using a skills taxonomy graph and semantic similarity.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
