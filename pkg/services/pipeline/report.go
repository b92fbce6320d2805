package pipeline

import (
	"fmt"
	"time"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// BuildReport assembles the full pipeline report from a snapshot of
// contacts and deals: stage totals, win rate, priority breakdown, deal
// size metrics, weighted forecast and contact engagement.
func BuildReport(contacts []domain.Contact, deals []domain.Deal, opts Options) *domain.Report {
	report := &domain.Report{
		Title:       "Zero CRM Pipeline Report",
		GeneratedAt: time.Now(),
		Currency:    "USD",
	}

	summary := ByStage(deals)
	report.TotalValue = summary.TotalValue
	report.Sections = append(report.Sections,
		stageSection(summary),
		winRateSection(AnalyzeWinRate(deals)),
		prioritySection(PriorityBreakdown(deals)),
		dealSizeSection(DealSize(deals)),
		forecastSection(AnalyzeForecast(deals, opts)),
		engagementSection(AnalyzeEngagement(contacts, deals)),
	)

	return report
}

func stageSection(summary domain.PipelineSummary) domain.ReportSection {
	section := domain.ReportSection{
		Title: "Pipeline Value by Stage",
		Summary: map[string]interface{}{
			"Total Deals": summary.TotalCount,
			"Total Value": fmt.Sprintf("$%.0f", summary.TotalValue),
		},
	}

	for _, bucket := range summary.Stages {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        bucket.Stage,
			Value:       fmt.Sprintf("$%.0f", bucket.Value),
			Unit:        fmt.Sprintf("%d deals", bucket.Count),
			Description: fmt.Sprintf("%.1f%% of pipeline", bucket.Percentage),
		})
	}
	return section
}

func winRateSection(wr domain.WinRate) domain.ReportSection {
	return domain.ReportSection{
		Title: "Win Rate Analysis",
		Summary: map[string]interface{}{
			"Win Rate": fmt.Sprintf("%.1f%%", wr.Rate),
		},
		Details: []domain.ReportDetail{
			{Name: "Won", Value: wr.Won, Unit: "deals", Description: fmt.Sprintf("$%.0f", wr.WonValue)},
			{Name: "Lost", Value: wr.Lost, Unit: "deals", Description: fmt.Sprintf("$%.0f", wr.LostValue)},
			{Name: "Active", Value: wr.Active, Unit: "deals", Description: fmt.Sprintf("$%.0f", wr.ActiveValue)},
		},
	}
}

func prioritySection(buckets []domain.PriorityBucket) domain.ReportSection {
	section := domain.ReportSection{
		Title:   "Priority Breakdown",
		Summary: map[string]interface{}{},
	}
	for _, bucket := range buckets {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  bucket.Priority,
			Value: fmt.Sprintf("$%.0f", bucket.Value),
			Unit:  fmt.Sprintf("%d deals", bucket.Count),
		})
	}
	return section
}

func dealSizeSection(metrics domain.DealSizeMetrics) domain.ReportSection {
	section := domain.ReportSection{
		Title: "Average Deal Metrics",
		Summary: map[string]interface{}{
			"Average Deal Size": fmt.Sprintf("$%.2f", metrics.Average),
			"Median Deal Size":  fmt.Sprintf("$%.0f", metrics.Median),
		},
	}
	if metrics.Largest != nil {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:        "Largest Deal",
			Value:       fmt.Sprintf("$%.0f", metrics.Largest.Value),
			Description: fmt.Sprintf("%s (%s)", metrics.Largest.Title, metrics.Largest.Stage),
		})
	}
	return section
}

func forecastSection(fc domain.Forecast) domain.ReportSection {
	return domain.ReportSection{
		Title: "Revenue Forecast",
		Summary: map[string]interface{}{
			"Active Pipeline":   fmt.Sprintf("$%.0f", fc.ActivePipeline),
			"Weighted Forecast": fmt.Sprintf("$%.2f", fc.WeightedForecast),
		},
		Details: []domain.ReportDetail{
			{
				Name:        "Weighted Forecast",
				Value:       fmt.Sprintf("$%.2f", fc.WeightedForecast),
				Description: "Based on stage-weighted probability",
			},
		},
	}
}

func engagementSection(eng domain.Engagement) domain.ReportSection {
	section := domain.ReportSection{
		Title: "Contact Engagement",
		Summary: map[string]interface{}{
			"Total Contacts":    eng.TotalContacts,
			"With Active Deals": eng.Engaged,
			"Engagement Rate":   fmt.Sprintf("%.1f%%", eng.Rate),
		},
	}
	for _, company := range eng.TopCompanies {
		section.Details = append(section.Details, domain.ReportDetail{
			Name:  company.Company,
			Value: company.Count,
			Unit:  "contacts",
		})
	}
	return section
}
