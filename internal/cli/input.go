package cli

import (
	"fmt"

	"github.com/cimeta/cimeta/internal/config"
	"github.com/spf13/cobra"
)

var inputCmd = &cobra.Command{
	Use:   "input <name>",
	Short: "Print a workflow input value",
	Long: `Look up a workflow input by name in the workflow-inputs JSON file.

A missing file or unknown input prints nothing and exits 0: optional
inputs must not fail the step.`,
	Args: cobra.ExactArgs(1),
	Run:  runInput,
}

func runInput(cmd *cobra.Command, args []string) {
	in := config.Inputs{Path: loadSettings().InputsFile}

	value, ok := in.Lookup(args[0])
	if !ok {
		return
	}
	fmt.Println(value)
}
