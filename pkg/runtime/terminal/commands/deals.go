package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thierryteisseire/0crm-skill/pkg/models/api"
	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// NewDealsCmd builds the deals command group.
func NewDealsCmd(globals *Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deals",
		Short: "Manage deals",
	}

	cmd.AddCommand(
		newDealsListCmd(globals),
		newDealsCreateCmd(globals),
		newDealsUpdateCmd(globals),
		newDealsDeleteCmd(globals),
	)
	return cmd
}

func newDealsListCmd(globals *Globals) *cobra.Command {
	var stage string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}

			deals, err := client.ListDeals(globals.Context(), stage)
			if err != nil {
				return err
			}

			fmt.Fprintf(globals.Output, "Found %d deal(s):\n", len(deals))
			var totalValue float64
			for _, deal := range deals {
				printDeal(globals.Output, deal)
				totalValue += deal.Value
			}
			fmt.Fprintf(globals.Output, "\nTotal value: $%.0f\n", totalValue)
			return nil
		},
	}

	cmd.Flags().StringVar(&stage, "stage", "", "Filter by stage")
	return cmd
}

type dealCreateCmd struct {
	globals *Globals
	deal    domain.Deal
}

func newDealsCreateCmd(globals *Globals) *cobra.Command {
	dc := &dealCreateCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a deal",
		RunE:  dc.run,
	}

	cmd.Flags().StringVar(&dc.deal.Title, "title", "", "Deal title")
	cmd.Flags().StringVar(&dc.deal.Stage, "stage", "", "Deal stage")
	cmd.Flags().Float64Var(&dc.deal.Value, "value", 0, "Deal value")
	cmd.Flags().StringVar(&dc.deal.Priority, "priority", "", "Priority (Low/Medium/High)")
	cmd.Flags().StringVar(&dc.deal.ContactID, "contact-id", "", "Associated contact ID")
	cmd.Flags().StringVar(&dc.deal.Notes, "notes", "", "Notes")

	_ = cmd.MarkFlagRequired("title")
	_ = cmd.MarkFlagRequired("stage")

	return cmd
}

func (dc *dealCreateCmd) run(cmd *cobra.Command, args []string) error {
	client, err := dc.globals.Client()
	if err != nil {
		return err
	}

	result, err := client.CreateDeals(dc.globals.Context(), dc.deal)
	if err != nil {
		return err
	}

	if len(result.Created) == 0 {
		return fmt.Errorf("deal was not created (%d skipped)", len(result.Skipped))
	}

	fmt.Fprintln(dc.globals.Output, "Deal created successfully:")
	printDeal(dc.globals.Output, result.Created[0])
	return nil
}

type dealUpdateCmd struct {
	globals  *Globals
	title    string
	stage    string
	value    float64
	priority string
	notes    string
}

func newDealsUpdateCmd(globals *Globals) *cobra.Command {
	du := &dealUpdateCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a deal",
		Args:  cobra.ExactArgs(1),
		RunE:  du.run,
	}

	cmd.Flags().StringVar(&du.title, "title", "", "New title")
	cmd.Flags().StringVar(&du.stage, "stage", "", "New stage")
	cmd.Flags().Float64Var(&du.value, "value", 0, "New value")
	cmd.Flags().StringVar(&du.priority, "priority", "", "New priority")
	cmd.Flags().StringVar(&du.notes, "notes", "", "New notes")

	return cmd
}

func (du *dealUpdateCmd) run(cmd *cobra.Command, args []string) error {
	var patch api.DealPatch
	if cmd.Flags().Changed("title") {
		patch.Title = &du.title
	}
	if cmd.Flags().Changed("stage") {
		patch.Stage = &du.stage
	}
	if cmd.Flags().Changed("value") {
		patch.Value = &du.value
	}
	if cmd.Flags().Changed("priority") {
		patch.Priority = &du.priority
	}
	if cmd.Flags().Changed("notes") {
		patch.Notes = &du.notes
	}

	if patch == (api.DealPatch{}) {
		return fmt.Errorf("no updates provided")
	}

	client, err := du.globals.Client()
	if err != nil {
		return err
	}

	updated, err := client.UpdateDeal(du.globals.Context(), args[0], patch)
	if err != nil {
		return err
	}

	fmt.Fprintln(du.globals.Output, "Deal updated successfully:")
	printDeal(du.globals.Output, updated)
	return nil
}

func newDealsDeleteCmd(globals *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a deal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}

			message, err := client.DeleteDeal(globals.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(globals.Output, message)
			return nil
		},
	}
}
