// Package cli implements the command-line interface for cimeta.
package cli

import (
	"fmt"
	"os"

	"github.com/cimeta/cimeta/internal/config"
	"github.com/cimeta/cimeta/internal/gitrepo"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cimeta",
	Short: "CI release metadata",
	Long: `cimeta derives release metadata for a CI job step: the current commit,
branch, nearest release tag, and the tweak (fourth version component)
used to number builds between tagged releases.`,
}

var tolerateMissingHistory bool

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&tolerateMissingHistory, "tolerate-missing-history", false,
		"Keep defaults instead of failing when a shallow checkout has no tag history")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(tweakCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(describeCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(inputCmd)
}

// loadSettings reads the repo-local settings file, exiting on a parse error
func loadSettings() *config.Settings {
	s, err := config.LoadSettings(".")
	if err != nil {
		exitError("%v", err)
	}
	return s
}

// openRepo opens the repository containing the working directory, with the
// policy taken from settings or the --tolerate-missing-history flag
func openRepo(cmd *cobra.Command) *gitrepo.Repo {
	policy := gitrepo.Strict
	if tolerateMissingHistory || loadSettings().TolerateMissingHistory {
		policy = gitrepo.TolerateMissingHistory
	}

	repo, err := gitrepo.Open(cmd.Context(), ".", policy)
	if err != nil {
		exitError("%v", err)
	}
	return repo
}

// exitError prints an error and exits
func exitError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
