package adapters

import (
	"encoding/json"

	"github.com/thierryteisseire/0crm-skill/pkg/models/api"
	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

func MapAPIContactToDomain(c api.Contact) domain.Contact {
	return domain.Contact{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Company:  c.Company,
		Role:     c.Role,
		Location: c.Location,
		Notes:    c.Notes,
	}
}

func MapDomainContactToAPI(c domain.Contact) api.Contact {
	return api.Contact{
		ID:       c.ID,
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Company:  c.Company,
		Role:     c.Role,
		Location: c.Location,
		Notes:    c.Notes,
	}
}

func MapAPIDealToDomain(d api.Deal) domain.Deal {
	return domain.Deal{
		ID:        d.ID,
		Title:     d.Title,
		Stage:     d.Stage,
		Value:     d.Value,
		Priority:  d.Priority,
		ContactID: d.ContactID,
		Notes:     d.Notes,
	}
}

func MapDomainDealToAPI(d domain.Deal) api.Deal {
	return api.Deal{
		ID:        d.ID,
		Title:     d.Title,
		Stage:     d.Stage,
		Value:     d.Value,
		Priority:  d.Priority,
		ContactID: d.ContactID,
		Notes:     d.Notes,
	}
}

func MapAPIProfileToDomain(p api.UserProfile) domain.UserProfile {
	return domain.UserProfile{
		ID:        p.ID,
		Email:     p.Email,
		APIKey:    p.APIKey,
		CreatedAt: p.CreatedAt,
	}
}

func MapAPIHealthToDomain(h api.HealthResponse) domain.Health {
	return domain.Health{
		Status:   h.Status,
		Platform: h.Platform,
	}
}

// DecodeCreatedContacts decodes the `created` entries of a bulk response
// into domain contacts. Entries that don't decode are skipped rather than
// failing the whole batch.
func DecodeCreatedContacts(raw []json.RawMessage) []domain.Contact {
	contacts := make([]domain.Contact, 0, len(raw))
	for _, entry := range raw {
		var c api.Contact
		if err := json.Unmarshal(entry, &c); err != nil {
			continue
		}
		contacts = append(contacts, MapAPIContactToDomain(c))
	}
	return contacts
}

// DecodeCreatedDeals decodes the `created` entries of a bulk response into
// domain deals.
func DecodeCreatedDeals(raw []json.RawMessage) []domain.Deal {
	deals := make([]domain.Deal, 0, len(raw))
	for _, entry := range raw {
		var d api.Deal
		if err := json.Unmarshal(entry, &d); err != nil {
			continue
		}
		deals = append(deals, MapAPIDealToDomain(d))
	}
	return deals
}
