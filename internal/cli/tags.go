package cli

import (
	"fmt"
	"strings"

	"github.com/cimeta/cimeta/internal/gitrepo"
	"github.com/cimeta/cimeta/internal/models"
	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List release tags",
	Long: `List every tag in the repository.

Fails on a shallow checkout, where the tag list would be silently
truncated.

Examples:
  cimeta tags
  cimeta tags --release-branch 24.3`,
	Run: runTags,
}

var tagsReleaseBranch string

func init() {
	tagsCmd.Flags().StringVar(&tagsReleaseBranch, "release-branch", "",
		"Only show tags of this release line (NN.N)")
}

func runTags(cmd *cobra.Command, args []string) {
	if tagsReleaseBranch != "" {
		if err := models.CheckReleaseBranch(tagsReleaseBranch); err != nil {
			exitError("%v", err)
		}
	}

	runner := gitrepo.NewRunner(".")
	tags, err := runner.Tags(cmd.Context())
	if err != nil {
		exitError("%v", err)
	}

	for _, tag := range tags {
		if tagsReleaseBranch != "" && !strings.HasPrefix(tag, "v"+tagsReleaseBranch+".") {
			continue
		}
		fmt.Println(tag)
	}
}
