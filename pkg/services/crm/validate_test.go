package crm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

func TestValidateContact(t *testing.T) {
	tests := []struct {
		name       string
		contact    domain.Contact
		wantField  string
		wantReason string
	}{
		{
			name:       "empty contact missing name",
			contact:    domain.Contact{},
			wantField:  "name",
			wantReason: ReasonMissingField,
		},
		{
			name:       "whitespace-only name",
			contact:    domain.Contact{Name: "   "},
			wantField:  "name",
			wantReason: ReasonMissingField,
		},
		{
			name:       "email without at sign",
			contact:    domain.Contact{Name: "A", Email: "bad"},
			wantField:  "email",
			wantReason: ReasonInvalidFormat,
		},
		{
			name:       "phone too short",
			contact:    domain.Contact{Name: "A", Phone: "123"},
			wantField:  "phone",
			wantReason: ReasonInvalidFormat,
		},
		{
			name:    "valid contact",
			contact: domain.Contact{Name: "A", Email: "a@b.com", Phone: "+1-555-0100"},
		},
		{
			name:    "name only is enough",
			contact: domain.Contact{Name: "A"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateContact(tt.contact)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}

func TestValidateDeal(t *testing.T) {
	tests := []struct {
		name       string
		deal       domain.Deal
		wantField  string
		wantReason string
	}{
		{
			name:       "missing title",
			deal:       domain.Deal{Stage: domain.StageLead},
			wantField:  "title",
			wantReason: ReasonMissingField,
		},
		{
			name:       "missing stage",
			deal:       domain.Deal{Title: "T"},
			wantField:  "stage",
			wantReason: ReasonMissingField,
		},
		{
			name:       "negative value",
			deal:       domain.Deal{Title: "T", Stage: domain.StageLead, Value: -1},
			wantField:  "value",
			wantReason: ReasonInvalidValue,
		},
		{
			name:       "unrecognized priority",
			deal:       domain.Deal{Title: "T", Stage: domain.StageLead, Priority: "Urgent"},
			wantField:  "priority",
			wantReason: ReasonInvalidValue,
		},
		{
			name: "valid deal with priority",
			deal: domain.Deal{Title: "T", Stage: domain.StageLead, Value: 100, Priority: domain.PriorityHigh},
		},
		{
			name: "free-form stage passes",
			deal: domain.Deal{Title: "T", Stage: "Discovery Call"},
		},
		{
			name: "zero value is fine",
			deal: domain.Deal{Title: "T", Stage: domain.StageLead},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDeal(tt.deal)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantReason, vErr.Reason)
		})
	}
}

func TestValidationErrorIsNotRetryExhausted(t *testing.T) {
	err := ValidateDeal(domain.Deal{})

	var exhausted *RetryExhaustedError
	assert.False(t, errors.As(err, &exhausted))
}
