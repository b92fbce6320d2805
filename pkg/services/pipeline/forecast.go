package pipeline

import (
	"strings"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// Options tune the forecast. The probability table is a heuristic carried
// over from the original reports, kept configurable rather than baked in.
type Options struct {
	// StageProbabilities maps an open stage to its win probability.
	StageProbabilities map[string]float64
	// DefaultProbability applies to open stages missing from the table.
	DefaultProbability float64
}

// DefaultOptions returns the historical probability table with its 30%
// fallback for unrecognized stages.
func DefaultOptions() Options {
	return Options{
		StageProbabilities: map[string]float64{
			domain.StageLead:         0.1,
			domain.StageQualified:    0.25,
			domain.StageProposalSent: 0.5,
			domain.StageNegotiation:  0.75,
		},
		DefaultProbability: 0.3,
	}
}

// AnalyzeForecast sums the unweighted active pipeline and the
// probability-weighted forecast over deals not yet closed. Closed Won and
// Closed Lost deals contribute to neither. Stage names match the
// probability table case-insensitively, so tables loaded from config
// files work regardless of key casing.
func AnalyzeForecast(deals []domain.Deal, opts Options) domain.Forecast {
	table := make(map[string]float64, len(opts.StageProbabilities))
	for stage, probability := range opts.StageProbabilities {
		table[strings.ToLower(stage)] = probability
	}

	var fc domain.Forecast

	for _, deal := range deals {
		if deal.Stage == domain.StageClosedWon || deal.Stage == domain.StageClosedLost {
			continue
		}

		fc.ActivePipeline += deal.Value

		probability, ok := table[strings.ToLower(deal.Stage)]
		if !ok {
			probability = opts.DefaultProbability
		}
		fc.WeightedForecast += deal.Value * probability
	}

	return fc
}
