package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careertrack",
	Short: "Resume analysis service",
	Long: `careertrack analyzes resumes against target roles: detected skills,
ATS compatibility, role recommendations, a 30/60/90-day learning plan,
project suggestions and market insights.

It serves the analysis over HTTP (built-in engine or relayed to an
external backend) or runs one-shot analyses from the command line.`,
}

func main() {
	// .env is optional; the environment always wins
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
