package commands

import (
	"github.com/spf13/cobra"

	"github.com/thierryteisseire/0crm-skill/pkg/runtime/terminal/export"
	"github.com/thierryteisseire/0crm-skill/pkg/services/pipeline"
)

// NewReportCmd builds the pipeline report command: it fetches the full
// deal and contact snapshots, runs the aggregation engine over them and
// renders the result.
func NewReportCmd(globals *Globals, reporter *export.Reporter) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Generate the sales pipeline report",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}

			ctx := globals.Context()
			deals, err := client.ListDeals(ctx, "")
			if err != nil {
				return err
			}
			contacts, err := client.ListContacts(ctx)
			if err != nil {
				return err
			}

			opts, err := globals.ReportOptions()
			if err != nil {
				return err
			}

			return reporter.Handle(pipeline.BuildReport(contacts, deals, opts))
		},
	}
}
