package crm

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thierryteisseire/0crm-skill/pkg/crmtest"
	"github.com/thierryteisseire/0crm-skill/pkg/models/api"
	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

const testKey = "zero_test_key"

func startFakeCRM(t *testing.T) (*crmtest.Server, *Client) {
	t.Helper()

	fake := crmtest.NewServer(zerolog.Nop(), testKey)
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := NewClient(Settings{Host: server.URL, APIKey: testKey})
	require.NoError(t, err)
	return fake, client
}

func TestHealthNeedsNoKey(t *testing.T) {
	fake := crmtest.NewServer(zerolog.Nop(), testKey)
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := NewClient(Settings{Host: server.URL})
	require.NoError(t, err)

	health, err := client.Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
}

func TestProfileRejectsBadKey(t *testing.T) {
	fake := crmtest.NewServer(zerolog.Nop(), testKey)
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	client, err := NewClient(Settings{Host: server.URL, APIKey: "wrong"})
	require.NoError(t, err)

	_, err = client.UserProfile(context.Background())
	assert.ErrorIs(t, err, ErrAuthentication)
}

func TestContactLifecycle(t *testing.T) {
	_, client := startFakeCRM(t)
	ctx := context.Background()

	created, err := client.CreateContacts(ctx, domain.Contact{
		Name:    "Ada Lovelace",
		Email:   "ada@analytical.org",
		Company: "Analytical Engines",
	})
	require.NoError(t, err)
	require.Len(t, created.Created, 1)
	assert.Empty(t, created.Skipped)

	id := created.Created[0].ID
	require.NotEmpty(t, id)

	fetched, err := client.GetContact(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", fetched.Name)

	role := "Countess of Computing"
	updated, err := client.UpdateContact(ctx, id, api.ContactPatch{Role: &role})
	require.NoError(t, err)
	assert.Equal(t, role, updated.Role)
	assert.Equal(t, "ada@analytical.org", updated.Email)

	listed, err := client.ListContacts(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	message, err := client.DeleteContact(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, message, id)

	_, err = client.GetContact(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDealLifecycle(t *testing.T) {
	_, client := startFakeCRM(t)
	ctx := context.Background()

	created, err := client.CreateDeals(ctx, domain.Deal{
		Title:    "Engine Rollout",
		Stage:    domain.StageQualified,
		Value:    12000,
		Priority: domain.PriorityHigh,
	})
	require.NoError(t, err)
	require.Len(t, created.Created, 1)

	id := created.Created[0].ID

	stage := domain.StageNegotiation
	updated, err := client.UpdateDeal(ctx, id, api.DealPatch{Stage: &stage})
	require.NoError(t, err)
	assert.Equal(t, domain.StageNegotiation, updated.Stage)
	assert.Equal(t, 12000.0, updated.Value)

	message, err := client.DeleteDeal(ctx, id)
	require.NoError(t, err)
	assert.Contains(t, message, id)
}

func TestListDealsFiltersByStageClientSide(t *testing.T) {
	_, client := startFakeCRM(t)
	ctx := context.Background()

	_, err := client.CreateDeals(ctx,
		domain.Deal{Title: "A", Stage: domain.StageLead, Value: 100},
		domain.Deal{Title: "B", Stage: domain.StageNegotiation, Value: 200},
		domain.Deal{Title: "C", Stage: domain.StageLead, Value: 300},
	)
	require.NoError(t, err)

	leads, err := client.ListDeals(ctx, domain.StageLead)
	require.NoError(t, err)
	require.Len(t, leads, 2)
	for _, deal := range leads {
		assert.Equal(t, domain.StageLead, deal.Stage)
	}

	all, err := client.ListDeals(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCreateValidatesBeforeNetwork(t *testing.T) {
	fake, client := startFakeCRM(t)
	ctx := context.Background()

	_, err := client.CreateContacts(ctx, domain.Contact{Email: "no-name@example.com"})
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	_, err = client.CreateDeals(ctx, domain.Deal{Title: "T", Stage: domain.StageLead, Value: -5})
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "value", vErr.Field)

	// Nothing reached the server.
	assert.Empty(t, fake.Contacts())
	assert.Empty(t, fake.Deals())
}

func TestBulkCreatePassesSkippedThrough(t *testing.T) {
	fake, client := startFakeCRM(t)
	ctx := context.Background()

	batch := []domain.Deal{
		{Title: "Kept", Stage: domain.StageLead, Value: 10},
		{Title: "Also kept", Stage: domain.StageQualified, Value: 20},
	}
	result, err := client.CreateDeals(ctx, batch...)
	require.NoError(t, err)
	assert.Len(t, result.Created, 2)
	assert.Empty(t, result.Skipped)
	assert.Len(t, fake.Deals(), 2)
}

func TestUserProfile(t *testing.T) {
	_, client := startFakeCRM(t)

	profile, err := client.UserProfile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tester@example.com", profile.Email)
	assert.Equal(t, testKey, profile.APIKey)
}
