// Package main provides the entry point for the Resume Structurer CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_structurer",
	Short: "Resume Structurer CLI",
	Long:  "Resume Structurer turns raw resume text into structured JSON: contact details, work history, education, skills, ranked technologies, and a synthesized summary.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
