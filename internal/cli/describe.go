package cli

import (
	"fmt"

	"github.com/cimeta/cimeta/internal/gitrepo"
	"github.com/cimeta/cimeta/internal/models"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe [commit]",
	Short: "Describe the nearest release tag",
	Long: `Print the nearest tag and the long describe output for HEAD, or for a
given 40-character commit hash.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDescribe,
}

func runDescribe(cmd *cobra.Command, args []string) {
	ref := "HEAD"
	if len(args) == 1 {
		if err := models.CheckCommit(args[0]); err != nil {
			exitError("%v", err)
		}
		ref = args[0]
	}

	runner := gitrepo.NewRunner(".")
	short, err := runner.Run(cmd.Context(), "describe", "--tags", "--abbrev=0", ref)
	if err != nil {
		exitError("%v", err)
	}
	long, err := runner.Run(cmd.Context(), "describe", "--tags", "--long", ref)
	if err != nil {
		exitError("%v", err)
	}

	fmt.Println(short)
	fmt.Println(long)
}
