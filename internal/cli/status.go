package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show release metadata for the checkout",
	Long:  `Show the current commit, branch, nearest release tag, and derived tweak.`,
	Run:   runStatus,
}

func runStatus(cmd *cobra.Command, args []string) {
	repo := openRepo(cmd)

	yellow := color.New(color.FgYellow)
	cyan := color.New(color.FgCyan)

	fmt.Printf("On branch %s\n", repo.Branch)
	yellow.Printf("Commit %s (%s)\n", repo.SHA, repo.ShortSHA)

	if repo.LatestTag == "" {
		fmt.Println("No release tag reachable")
	} else {
		cyan.Printf("Latest tag %s\n", repo.LatestTag)
		fmt.Printf("Commits since tag: %d\n", repo.CommitsSinceTag)
		fmt.Printf("Description: %s\n", repo.Description)
	}

	tweak, err := repo.Tweak()
	if err != nil {
		exitError("%v", err)
	}
	fmt.Printf("Tweak: %d\n", tweak)
}
