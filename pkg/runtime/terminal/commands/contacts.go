package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// NewContactsCmd builds the contacts command group.
func NewContactsCmd(globals *Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contacts",
		Short: "Manage contacts",
	}

	cmd.AddCommand(
		newContactsListCmd(globals),
		newContactsCreateCmd(globals),
		newContactsDeleteCmd(globals),
	)
	return cmd
}

func newContactsListCmd(globals *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}

			contacts, err := client.ListContacts(globals.Context())
			if err != nil {
				return err
			}

			fmt.Fprintf(globals.Output, "Found %d contact(s):\n", len(contacts))
			for _, contact := range contacts {
				printContact(globals.Output, contact)
			}
			return nil
		},
	}
}

type contactCreateCmd struct {
	globals *Globals
	contact domain.Contact
}

func newContactsCreateCmd(globals *Globals) *cobra.Command {
	cc := &contactCreateCmd{globals: globals}
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		RunE:  cc.run,
	}

	cmd.Flags().StringVar(&cc.contact.Name, "name", "", "Contact name")
	cmd.Flags().StringVar(&cc.contact.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&cc.contact.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&cc.contact.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&cc.contact.Role, "role", "", "Job role")
	cmd.Flags().StringVar(&cc.contact.Location, "location", "", "Location")
	cmd.Flags().StringVar(&cc.contact.Notes, "notes", "", "Notes")

	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func (cc *contactCreateCmd) run(cmd *cobra.Command, args []string) error {
	client, err := cc.globals.Client()
	if err != nil {
		return err
	}

	result, err := client.CreateContacts(cc.globals.Context(), cc.contact)
	if err != nil {
		return err
	}

	if len(result.Created) == 0 {
		return fmt.Errorf("contact was not created (%d skipped)", len(result.Skipped))
	}

	fmt.Fprintln(cc.globals.Output, "Contact created successfully:")
	printContact(cc.globals.Output, result.Created[0])
	return nil
}

func newContactsDeleteCmd(globals *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}

			message, err := client.DeleteContact(globals.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintln(globals.Output, message)
			return nil
		},
	}
}
