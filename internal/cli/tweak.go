package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tweakCmd = &cobra.Command{
	Use:   "tweak",
	Short: "Print the derived build number",
	Long: `Print the tweak: the fourth version component derived from the nearest
release tag and the commit distance to it, for embedding in a
MAJOR.MINOR.PATCH.TWEAK version string.`,
	Run: runTweak,
}

func runTweak(cmd *cobra.Command, args []string) {
	repo := openRepo(cmd)

	tweak, err := repo.Tweak()
	if err != nil {
		exitError("%v", err)
	}
	fmt.Println(tweak)
}
