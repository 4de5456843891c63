package cli

import (
	"fmt"
	"strings"

	"github.com/cimeta/cimeta/internal/config"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the CI run context",
	Long:  `Show the PR and repository context the workflow exported for this run.`,
	Run:   runInfo,
}

func runInfo(cmd *cobra.Command, args []string) {
	env := config.CaptureEnv()

	cyan := color.New(color.FgCyan)

	printField(cyan, "Repository", env.Repository)
	printField(cyan, "Fork", env.ForkName)
	printField(cyan, "Branch", env.Branch)
	printField(cyan, "Commit", env.SHA)
	printField(cyan, "User", env.UserLogin)
	printField(cyan, "PR title", env.PRTitle)
	printField(cyan, "PR labels", strings.Join(env.PRLabels, ", "))

	if env.PRBody != "" {
		cyan.Println("PR body:")
		fmt.Println(env.PRBody)
	}
}

func printField(c *color.Color, name, value string) {
	if value == "" {
		return
	}
	c.Printf("%s: ", name)
	fmt.Println(value)
}
