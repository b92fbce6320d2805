// Package api holds the wire shapes exchanged with the Zero CRM HTTP API.
package api

import "encoding/json"

// Contact is the contact payload as sent and received over the wire.
// Optional fields are omitted from outbound JSON when empty; fields the
// server adds that we don't model are ignored on decode.
type Contact struct {
	ID       string `json:"id,omitempty"`
	Name     string `json:"name"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Company  string `json:"company,omitempty"`
	Role     string `json:"role,omitempty"`
	Location string `json:"location,omitempty"`
	Notes    string `json:"notes,omitempty"`
}

// Deal is the deal payload as sent and received over the wire.
type Deal struct {
	ID        string  `json:"id,omitempty"`
	Title     string  `json:"title"`
	Stage     string  `json:"stage"`
	Value     float64 `json:"value,omitempty"`
	Priority  string  `json:"priority,omitempty"`
	ContactID string  `json:"contact_id,omitempty"`
	Notes     string  `json:"notes,omitempty"`
}

// ContactPatch carries a partial contact update. Only non-nil fields are
// serialized, so a PATCH touches exactly the fields the caller set.
type ContactPatch struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Company  *string `json:"company,omitempty"`
	Role     *string `json:"role,omitempty"`
	Location *string `json:"location,omitempty"`
	Notes    *string `json:"notes,omitempty"`
}

// DealPatch carries a partial deal update.
type DealPatch struct {
	Title    *string  `json:"title,omitempty"`
	Stage    *string  `json:"stage,omitempty"`
	Value    *float64 `json:"value,omitempty"`
	Priority *string  `json:"priority,omitempty"`
	Notes    *string  `json:"notes,omitempty"`
}

// BulkCreateResponse is the 201 body of a collection POST. Skipped entries
// are passed through verbatim; the client never reinterprets why the server
// skipped a record.
type BulkCreateResponse struct {
	Created []json.RawMessage `json:"created"`
	Skipped []json.RawMessage `json:"skipped"`
}

// DeleteResponse is the 200 body of a DELETE.
type DeleteResponse struct {
	Message string `json:"message"`
}

// HealthResponse is the unauthenticated GET /api/health body.
type HealthResponse struct {
	Status   string `json:"status"`
	Platform string `json:"platform"`
}

// UserProfile is the GET /api/user/profile body.
type UserProfile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	APIKey    string `json:"apiKey"`
	CreatedAt string `json:"created_at,omitempty"`
}
