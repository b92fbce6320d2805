package pipeline

import (
	"sort"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// topCompanies caps the companies-by-headcount listing.
const topCompanies = 5

// AnalyzeEngagement measures how many contacts have at least one deal
// attached. The rate is computed against the full contact count; deal
// contact ids are counted distinctly without checking membership in the
// contact set. Also ranks the top companies by contact headcount, ties
// kept in first-encountered order.
func AnalyzeEngagement(contacts []domain.Contact, deals []domain.Deal) domain.Engagement {
	eng := domain.Engagement{TotalContacts: len(contacts)}

	seen := make(map[string]struct{})
	for _, deal := range deals {
		if deal.ContactID == "" {
			continue
		}
		seen[deal.ContactID] = struct{}{}
	}
	eng.Engaged = len(seen)

	if eng.TotalContacts > 0 {
		eng.Rate = float64(eng.Engaged) / float64(eng.TotalContacts) * 100
	}

	counts := make(map[string]int)
	var order []string
	for _, contact := range contacts {
		company := contact.Company
		if company == "" {
			company = "Unknown"
		}
		if _, ok := counts[company]; !ok {
			order = append(order, company)
		}
		counts[company]++
	}

	ranked := make([]domain.CompanyCount, 0, len(order))
	for _, company := range order {
		ranked = append(ranked, domain.CompanyCount{Company: company, Count: counts[company]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})

	if len(ranked) > topCompanies {
		ranked = ranked[:topCompanies]
	}
	eng.TopCompanies = ranked

	return eng
}
