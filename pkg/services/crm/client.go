package crm

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/thierryteisseire/0crm-skill/pkg/adapters"
	"github.com/thierryteisseire/0crm-skill/pkg/models/api"
	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// ContactCreateResult is the outcome of a contact create. Skipped entries
// pass through verbatim from the API; the client does not reinterpret why
// a record was skipped.
type ContactCreateResult struct {
	Created []domain.Contact
	Skipped []json.RawMessage
}

// DealCreateResult is the outcome of a deal create.
type DealCreateResult struct {
	Created []domain.Deal
	Skipped []json.RawMessage
}

// Health checks the unauthenticated health endpoint.
func (c *Client) Health(ctx context.Context) (domain.Health, error) {
	var resp api.HealthResponse
	if err := c.execute(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return domain.Health{}, err
	}
	return adapters.MapAPIHealthToDomain(resp), nil
}

// UserProfile fetches the authenticated user's profile.
func (c *Client) UserProfile(ctx context.Context) (domain.UserProfile, error) {
	var resp api.UserProfile
	if err := c.execute(ctx, http.MethodGet, "/api/user/profile", nil, &resp); err != nil {
		return domain.UserProfile{}, err
	}
	return adapters.MapAPIProfileToDomain(resp), nil
}

// ListContacts fetches all contacts.
func (c *Client) ListContacts(ctx context.Context) ([]domain.Contact, error) {
	var resp []api.Contact
	if err := c.execute(ctx, http.MethodGet, "/api/contacts", nil, &resp); err != nil {
		return nil, err
	}

	contacts := make([]domain.Contact, 0, len(resp))
	for _, contact := range resp {
		contacts = append(contacts, adapters.MapAPIContactToDomain(contact))
	}
	return contacts, nil
}

// GetContact fetches one contact by id.
func (c *Client) GetContact(ctx context.Context, id string) (domain.Contact, error) {
	var resp api.Contact
	if err := c.execute(ctx, http.MethodGet, "/api/contacts/"+id, nil, &resp); err != nil {
		return domain.Contact{}, err
	}
	return adapters.MapAPIContactToDomain(resp), nil
}

// CreateContacts validates and submits one or more contacts. A single
// contact is posted as a lone object, a batch as an array; the collection
// endpoint accepts both. Validation failures surface before any network
// call.
func (c *Client) CreateContacts(ctx context.Context, contacts ...domain.Contact) (*ContactCreateResult, error) {
	payloads := make([]api.Contact, 0, len(contacts))
	for _, contact := range contacts {
		if err := ValidateContact(contact); err != nil {
			return nil, err
		}
		payloads = append(payloads, adapters.MapDomainContactToAPI(contact))
	}

	var body any = payloads
	if len(payloads) == 1 {
		body = payloads[0]
	}

	var resp api.BulkCreateResponse
	if err := c.execute(ctx, http.MethodPost, "/api/contacts", body, &resp); err != nil {
		return nil, err
	}

	return &ContactCreateResult{
		Created: adapters.DecodeCreatedContacts(resp.Created),
		Skipped: resp.Skipped,
	}, nil
}

// UpdateContact applies a partial update and returns the updated contact.
func (c *Client) UpdateContact(ctx context.Context, id string, patch api.ContactPatch) (domain.Contact, error) {
	var resp api.Contact
	if err := c.execute(ctx, http.MethodPatch, "/api/contacts/"+id, patch, &resp); err != nil {
		return domain.Contact{}, err
	}
	return adapters.MapAPIContactToDomain(resp), nil
}

// DeleteContact removes a contact and returns the server's confirmation
// message.
func (c *Client) DeleteContact(ctx context.Context, id string) (string, error) {
	var resp api.DeleteResponse
	if err := c.execute(ctx, http.MethodDelete, "/api/contacts/"+id, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListDeals fetches all deals. A non-empty stage filters client-side, the
// way the original CLI does; the API has no stage query parameter.
func (c *Client) ListDeals(ctx context.Context, stage string) ([]domain.Deal, error) {
	var resp []api.Deal
	if err := c.execute(ctx, http.MethodGet, "/api/deals", nil, &resp); err != nil {
		return nil, err
	}

	deals := make([]domain.Deal, 0, len(resp))
	for _, deal := range resp {
		if stage != "" && deal.Stage != stage {
			continue
		}
		deals = append(deals, adapters.MapAPIDealToDomain(deal))
	}
	return deals, nil
}

// GetDeal fetches one deal by id.
func (c *Client) GetDeal(ctx context.Context, id string) (domain.Deal, error) {
	var resp api.Deal
	if err := c.execute(ctx, http.MethodGet, "/api/deals/"+id, nil, &resp); err != nil {
		return domain.Deal{}, err
	}
	return adapters.MapAPIDealToDomain(resp), nil
}

// CreateDeals validates and submits one or more deals.
func (c *Client) CreateDeals(ctx context.Context, deals ...domain.Deal) (*DealCreateResult, error) {
	payloads := make([]api.Deal, 0, len(deals))
	for _, deal := range deals {
		if err := ValidateDeal(deal); err != nil {
			return nil, err
		}
		payloads = append(payloads, adapters.MapDomainDealToAPI(deal))
	}

	var body any = payloads
	if len(payloads) == 1 {
		body = payloads[0]
	}

	var resp api.BulkCreateResponse
	if err := c.execute(ctx, http.MethodPost, "/api/deals", body, &resp); err != nil {
		return nil, err
	}

	return &DealCreateResult{
		Created: adapters.DecodeCreatedDeals(resp.Created),
		Skipped: resp.Skipped,
	}, nil
}

// UpdateDeal applies a partial update and returns the updated deal.
func (c *Client) UpdateDeal(ctx context.Context, id string, patch api.DealPatch) (domain.Deal, error) {
	var resp api.Deal
	if err := c.execute(ctx, http.MethodPatch, "/api/deals/"+id, patch, &resp); err != nil {
		return domain.Deal{}, err
	}
	return adapters.MapAPIDealToDomain(resp), nil
}

// DeleteDeal removes a deal and returns the server's confirmation message.
func (c *Client) DeleteDeal(ctx context.Context, id string) (string, error) {
	var resp api.DeleteResponse
	if err := c.execute(ctx, http.MethodDelete, "/api/deals/"+id, nil, &resp); err != nil {
		return "", err
	}
	return resp.Message, nil
}
