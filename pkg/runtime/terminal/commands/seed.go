package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// NewSeedCmd creates the demo dataset: five contacts across companies and
// five deals covering every pipeline stage, linked to their contacts.
func NewSeedCmd(globals *Globals) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create demo contacts and deals",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := globals.Client()
			if err != nil {
				return err
			}
			ctx := globals.Context()

			contactResult, err := client.CreateContacts(ctx, demoContacts()...)
			if err != nil {
				return err
			}
			fmt.Fprintf(globals.Output, "Created %d contacts\n", len(contactResult.Created))

			// Deals reference contacts by name through the ids the server
			// just minted.
			idByName := make(map[string]string, len(contactResult.Created))
			for _, contact := range contactResult.Created {
				idByName[contact.Name] = contact.ID
			}

			dealResult, err := client.CreateDeals(ctx, demoDeals(idByName)...)
			if err != nil {
				return err
			}
			fmt.Fprintf(globals.Output, "Created %d deals\n", len(dealResult.Created))

			fmt.Fprintln(globals.Output, "Demo data created. Run '0crm report' to see the pipeline.")
			return nil
		},
	}
}

func demoContacts() []domain.Contact {
	return []domain.Contact{
		{
			Name:     "Alice Freeman",
			Email:    "alice@ecoflow.com",
			Company:  "EcoFlow",
			Role:     "CEO",
			Location: "Bristol, UK",
			Notes:    "Early adopter of green energy. Interested in bulk licensing.",
		},
		{
			Name:     "Bob Miller",
			Email:    "bob@megamart.com",
			Company:  "MegaMart",
			Role:     "Head of Procurement",
			Location: "Chicago, IL",
			Notes:    "High volume potential. Key decision maker for Retail vertical.",
		},
		{
			Name:     "Charlie Zhang",
			Email:    "charlie@zenith.sg",
			Company:  "Zenith Systems",
			Role:     "Sales Director",
			Location: "Singapore",
			Notes:    "Looking for CRM migration. Referral from J. Smith.",
		},
		{
			Name:     "Diana Prince",
			Email:    "diana@wonderworks.com",
			Company:  "WonderWorks",
			Role:     "Founder",
			Location: "London, UK",
			Notes:    "Expanding to European markets. Highly interested in automation.",
		},
		{
			Name:     "Edward Norton",
			Email:    "edward@skylinedesigns.com",
			Company:  "Skyline Designs",
			Role:     "Lead Architect",
			Location: "New York, NY",
			Notes:    "Strategic partner for Urban planning projects.",
		},
	}
}

func demoDeals(idByName map[string]string) []domain.Deal {
	return []domain.Deal{
		{
			Title:     "EcoFlow Enterprise Suite",
			Value:     45000,
			Stage:     domain.StageNegotiation,
			Priority:  domain.PriorityHigh,
			ContactID: idByName["Alice Freeman"],
			Notes:     "Annual subscription for UK and EU teams.",
		},
		{
			Title:     "MegaMart Global Rollout",
			Value:     120000,
			Stage:     domain.StageQualified,
			Priority:  domain.PriorityHigh,
			ContactID: idByName["Bob Miller"],
			Notes:     "Target for Q3 implementation.",
		},
		{
			Title:     "Zenith CRM Integration",
			Value:     15000,
			Stage:     domain.StageProposalSent,
			Priority:  domain.PriorityMedium,
			ContactID: idByName["Charlie Zhang"],
			Notes:     "Technical assessment in progress.",
		},
		{
			Title:     "WonderWorks Supply Chain",
			Value:     60000,
			Stage:     domain.StageLead,
			Priority:  domain.PriorityHigh,
			ContactID: idByName["Diana Prince"],
			Notes:     "Initial discovery call scheduled.",
		},
		{
			Title:     "Skyline Office Design",
			Value:     25000,
			Stage:     domain.StageClosedWon,
			Priority:  domain.PriorityMedium,
			ContactID: idByName["Edward Norton"],
			Notes:     "Contract signed on 2024-02-05.",
		},
	}
}
