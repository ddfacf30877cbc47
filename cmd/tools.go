package cmd

import (
	"strings"

	"awsmcp/internal/awsclient"
	"awsmcp/internal/config"
	"awsmcp/internal/gateway"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// toolsSets filters the listing to the named tool sets.
var toolsSets []string

// toolsCmd renders the tool catalog so users can see what a configuration
// will serve without starting the server or touching AWS.
var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tools the server would expose",
	Long: `Lists every tool of the selected tool sets with its required
arguments. No AWS credentials are needed; nothing is invoked.`,
	Args: cobra.NoArgs,
	RunE: runTools,
}

func runTools(cmd *cobra.Command, args []string) error {
	sets := toolsSets
	if len(sets) == 0 {
		sets = config.AllToolSets()
	}

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"TOOL", "SET", "REQUIRED ARGS", "DESCRIPTION"})

	// One registry per set keeps shared tools (create_tags) attributed to
	// every set that carries them.
	for _, set := range sets {
		reg, err := buildRegistry(&awsclient.Clients{}, []string{set})
		if err != nil {
			return err
		}
		for _, tool := range reg.Tools() {
			t.AppendRow(table.Row{tool.Name, set, strings.Join(requiredArgs(tool), ", "), tool.Description})
		}
	}

	t.Render()
	return nil
}

func requiredArgs(tool gateway.Tool) []string {
	required := []string{}
	for _, arg := range tool.Args {
		if arg.Required {
			required = append(required, arg.Name)
		}
	}
	return required
}

func init() {
	toolsCmd.Flags().StringSliceVar(&toolsSets, "tool-sets", nil, "Limit the listing to these tool sets (ec2, vpc, tgw, nlb, s3)")
	rootCmd.AddCommand(toolsCmd)
}
