package domain

// Contact is a CRM contact record. Name is the only required field;
// everything else is optional and zero-valued when absent.
type Contact struct {
	ID       string
	Name     string
	Email    string
	Phone    string
	Company  string
	Role     string
	Location string
	Notes    string
}

// Deal is a sales pipeline record. Title and Stage are required; Value
// defaults to 0 when the API omits it.
type Deal struct {
	ID        string
	Title     string
	Stage     string
	Value     float64
	Priority  string
	ContactID string
	Notes     string
}

// Pipeline stages recognized by the forecast probability table. Stage is
// otherwise a free-form string; only the two Closed values carry meaning
// for win-rate and forecast logic.
const (
	StageLead         = "Lead"
	StageQualified    = "Qualified"
	StageProposalSent = "Proposal Sent"
	StageNegotiation  = "Negotiation"
	StageClosedWon    = "Closed Won"
	StageClosedLost   = "Closed Lost"
)

// Deal priorities accepted by validation.
const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"
)

// PriorityNotSet labels the bucket for deals without a priority.
const PriorityNotSet = "Not Set"

// UserProfile describes the authenticated API user.
type UserProfile struct {
	ID        string
	Email     string
	APIKey    string
	CreatedAt string
}

// Health is the unauthenticated service health snapshot.
type Health struct {
	Status   string
	Platform string
}
