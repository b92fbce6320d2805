package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

func TestAnalyzeForecastWeightsOpenStages(t *testing.T) {
	deals := []domain.Deal{
		{Title: "Won", Stage: domain.StageClosedWon, Value: 25000},
		{Title: "Lost", Stage: domain.StageClosedLost, Value: 10000},
		{Title: "Open", Stage: domain.StageNegotiation, Value: 45000},
	}

	fc := AnalyzeForecast(deals, DefaultOptions())

	assert.Equal(t, 45000.0, fc.ActivePipeline)
	assert.Equal(t, 33750.0, fc.WeightedForecast)
}

func TestAnalyzeForecastUnrecognizedStageUsesDefault(t *testing.T) {
	deals := []domain.Deal{
		{Title: "Odd", Stage: "Discovery Call", Value: 1000},
	}

	fc := AnalyzeForecast(deals, DefaultOptions())

	assert.Equal(t, 1000.0, fc.ActivePipeline)
	assert.Equal(t, 300.0, fc.WeightedForecast)
}

func TestAnalyzeForecastFullTable(t *testing.T) {
	deals := []domain.Deal{
		{Title: "L", Stage: domain.StageLead, Value: 1000},
		{Title: "Q", Stage: domain.StageQualified, Value: 1000},
		{Title: "P", Stage: domain.StageProposalSent, Value: 1000},
		{Title: "N", Stage: domain.StageNegotiation, Value: 1000},
	}

	fc := AnalyzeForecast(deals, DefaultOptions())

	assert.Equal(t, 4000.0, fc.ActivePipeline)
	assert.InDelta(t, 1600.0, fc.WeightedForecast, 1e-9)
}

func TestAnalyzeForecastCustomTable(t *testing.T) {
	opts := Options{
		StageProbabilities: map[string]float64{"Pilot": 0.9},
		DefaultProbability: 0.05,
	}
	deals := []domain.Deal{
		{Title: "A", Stage: "Pilot", Value: 100},
		{Title: "B", Stage: "Cold", Value: 100},
	}

	fc := AnalyzeForecast(deals, opts)

	assert.Equal(t, 200.0, fc.ActivePipeline)
	assert.InDelta(t, 95.0, fc.WeightedForecast, 1e-9)
}

func TestAnalyzeForecastEmptyInput(t *testing.T) {
	fc := AnalyzeForecast(nil, DefaultOptions())

	assert.Equal(t, domain.Forecast{}, fc)
}

func TestAnalyzeForecastStageMatchIsCaseInsensitive(t *testing.T) {
	opts := Options{
		StageProbabilities: map[string]float64{"negotiation": 0.9},
		DefaultProbability: 0.1,
	}
	deals := []domain.Deal{
		{Title: "A", Stage: domain.StageNegotiation, Value: 1000},
	}

	fc := AnalyzeForecast(deals, opts)

	assert.InDelta(t, 900.0, fc.WeightedForecast, 1e-9)
}
