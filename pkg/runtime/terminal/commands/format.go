package commands

import (
	"fmt"
	"io"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

func printContact(w io.Writer, c domain.Contact) {
	fmt.Fprintf(w, "\n%s\n", c.Name)
	fmt.Fprintf(w, "   ID:       %s\n", c.ID)
	if c.Email != "" {
		fmt.Fprintf(w, "   Email:    %s\n", c.Email)
	}
	if c.Phone != "" {
		fmt.Fprintf(w, "   Phone:    %s\n", c.Phone)
	}
	if c.Company != "" {
		fmt.Fprintf(w, "   Company:  %s\n", c.Company)
	}
	if c.Role != "" {
		fmt.Fprintf(w, "   Role:     %s\n", c.Role)
	}
	if c.Location != "" {
		fmt.Fprintf(w, "   Location: %s\n", c.Location)
	}
	if c.Notes != "" {
		fmt.Fprintf(w, "   Notes:    %s\n", c.Notes)
	}
}

func printDeal(w io.Writer, d domain.Deal) {
	fmt.Fprintf(w, "\n%s\n", d.Title)
	fmt.Fprintf(w, "   ID:       %s\n", d.ID)
	if d.Value != 0 {
		fmt.Fprintf(w, "   Value:    $%.0f\n", d.Value)
	}
	fmt.Fprintf(w, "   Stage:    %s\n", d.Stage)
	if d.Priority != "" {
		fmt.Fprintf(w, "   Priority: %s\n", d.Priority)
	}
	if d.ContactID != "" {
		fmt.Fprintf(w, "   Contact:  %s\n", d.ContactID)
	}
	if d.Notes != "" {
		fmt.Fprintf(w, "   Notes:    %s\n", d.Notes)
	}
}
