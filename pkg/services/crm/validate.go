package crm

import (
	"fmt"
	"strings"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// ValidateContact checks a contact before submission. Rules run in order
// and the first failure wins; fields the API may add later are never
// inspected.
func ValidateContact(contact domain.Contact) error {
	if strings.TrimSpace(contact.Name) == "" {
		return &ValidationError{Field: "name", Reason: ReasonMissingField}
	}
	if contact.Email != "" && !strings.Contains(contact.Email, "@") {
		return &ValidationError{Field: "email", Reason: ReasonInvalidFormat, Detail: contact.Email}
	}
	if contact.Phone != "" && len(contact.Phone) < 5 {
		return &ValidationError{Field: "phone", Reason: ReasonInvalidFormat, Detail: "number too short"}
	}
	return nil
}

// ValidateDeal checks a deal before submission.
func ValidateDeal(deal domain.Deal) error {
	if deal.Title == "" {
		return &ValidationError{Field: "title", Reason: ReasonMissingField}
	}
	if deal.Stage == "" {
		return &ValidationError{Field: "stage", Reason: ReasonMissingField}
	}
	if deal.Value < 0 {
		return &ValidationError{
			Field:  "value",
			Reason: ReasonInvalidValue,
			Detail: fmt.Sprintf("cannot be negative: %v", deal.Value),
		}
	}
	if deal.Priority != "" {
		switch deal.Priority {
		case domain.PriorityLow, domain.PriorityMedium, domain.PriorityHigh:
		default:
			return &ValidationError{
				Field:  "priority",
				Reason: ReasonInvalidValue,
				Detail: fmt.Sprintf("%s (must be Low, Medium or High)", deal.Priority),
			}
		}
	}
	return nil
}
