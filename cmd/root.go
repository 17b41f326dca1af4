/*
Copyright © 2025 qanooni
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hr-assistant-be",
	Short: "Retrieval-augmented HR legal assistant backend",
	Long: `Backend for a dual-mode HR legal assistant over Saudi labor law.

It keeps two in-memory document corpora (labor-law texts and uploaded
employment contracts), retrieves the most similar chunks for a question
and answers through an OpenAI-compatible model with cited sources.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config/config.yaml", "config file")
}
