package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/checkcodedoc/internal/domain"
	m "github.com/mouse-blink/checkcodedoc/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <report.json>",
		Short: "View a previously generated JSON report",
		Long: `View a report written with --reporter json. In a terminal the findings
open in a scrollable, filterable list; otherwise they are printed as tables.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true

			wf, closeWorkflow, err := buildWorkflow(cmd, "")
			if err != nil {
				return err
			}
			defer closeWorkflow()

			return wf.View(domain.ViewArgs{Report: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
