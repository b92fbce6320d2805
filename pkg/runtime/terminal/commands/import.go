package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/thierryteisseire/0crm-skill/pkg/services/importer"
)

type importCmd struct {
	globals      *Globals
	contactsFile string
	dealsFile    string
	writeSamples bool
}

// NewImportCmd builds the CSV bulk import command. Invalid rows are
// skipped and reported; valid records go out as one batch per collection
// and the server's created/skipped split is reported verbatim.
func NewImportCmd(globals *Globals) *cobra.Command {
	ic := &importCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk import contacts and deals from CSV files",
		RunE:  ic.run,
	}

	cmd.Flags().StringVar(&ic.contactsFile, "contacts", "", "Path to a contacts CSV file")
	cmd.Flags().StringVar(&ic.dealsFile, "deals", "", "Path to a deals CSV file")
	cmd.Flags().BoolVar(&ic.writeSamples, "sample", false,
		"Write sample_contacts.csv and sample_deals.csv and import them")

	return cmd
}

func (ic *importCmd) run(cmd *cobra.Command, args []string) error {
	if ic.writeSamples {
		if err := importer.WriteSampleContactsCSV("sample_contacts.csv"); err != nil {
			return err
		}
		if err := importer.WriteSampleDealsCSV("sample_deals.csv"); err != nil {
			return err
		}
		fmt.Fprintln(ic.globals.Output, "Created sample_contacts.csv and sample_deals.csv")
		ic.contactsFile = "sample_contacts.csv"
		ic.dealsFile = "sample_deals.csv"
	}

	if ic.contactsFile == "" && ic.dealsFile == "" {
		return fmt.Errorf("nothing to import: pass --contacts and/or --deals, or --sample")
	}

	client, err := ic.globals.Client()
	if err != nil {
		return err
	}
	ctx := ic.globals.Context()

	if ic.contactsFile != "" {
		f, err := os.Open(ic.contactsFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", ic.contactsFile, err)
		}
		contacts, rowErrs, err := importer.ReadContacts(f, &ic.globals.Logger)
		_ = f.Close()
		if err != nil {
			return err
		}

		for _, rowErr := range rowErrs {
			fmt.Fprintf(ic.globals.Output, "Skipping row %d: %s\n", rowErr.Row, rowErr.Reason)
		}
		if len(contacts) > 0 {
			result, err := client.CreateContacts(ctx, contacts...)
			if err != nil {
				return err
			}
			fmt.Fprintf(ic.globals.Output, "Contacts: %d created, %d skipped by server\n",
				len(result.Created), len(result.Skipped))
		}
	}

	if ic.dealsFile != "" {
		f, err := os.Open(ic.dealsFile)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", ic.dealsFile, err)
		}
		deals, rowErrs, err := importer.ReadDeals(f, &ic.globals.Logger)
		_ = f.Close()
		if err != nil {
			return err
		}

		for _, rowErr := range rowErrs {
			fmt.Fprintf(ic.globals.Output, "Skipping row %d: %s\n", rowErr.Row, rowErr.Reason)
		}
		if len(deals) > 0 {
			result, err := client.CreateDeals(ctx, deals...)
			if err != nil {
				return err
			}
			fmt.Fprintf(ic.globals.Output, "Deals: %d created, %d skipped by server\n",
				len(result.Created), len(result.Skipped))
		}
	}

	return nil
}
