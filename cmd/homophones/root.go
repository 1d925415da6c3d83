package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for homophones.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "homophones",
		Short: "Build homophone lists from an online dictionary",
		Long: `homophones reads one or more word lists, looks every word up on an
online dictionary (English Wiktionary by default) and collects the
homophones listed on each word's page.

It writes the results as "word,homophone" pairs and/or as a sorted list of
every word that takes part in a pair.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewBuildCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
