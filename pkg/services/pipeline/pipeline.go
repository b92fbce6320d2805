// Package pipeline computes sales-pipeline metrics over snapshots of CRM
// records. All functions are pure and total: they never mutate their
// inputs and return zeroed results on empty input.
package pipeline

import (
	"sort"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// stageUnknown buckets deals that carry no stage.
const stageUnknown = "Unknown"

// ByStage groups deals by stage, summing count and value per bucket.
// Buckets come back ordered by descending value, first-encountered stage
// winning ties, with percentages of the grand total (0 when the total is
// 0).
func ByStage(deals []domain.Deal) domain.PipelineSummary {
	index := make(map[string]int)
	var buckets []domain.StageBucket

	for _, deal := range deals {
		stage := deal.Stage
		if stage == "" {
			stage = stageUnknown
		}

		i, ok := index[stage]
		if !ok {
			i = len(buckets)
			index[stage] = i
			buckets = append(buckets, domain.StageBucket{Stage: stage})
		}
		buckets[i].Count++
		buckets[i].Value += deal.Value
	}

	summary := domain.PipelineSummary{TotalCount: len(deals)}
	for _, b := range buckets {
		summary.TotalValue += b.Value
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Value > buckets[j].Value
	})

	for i := range buckets {
		if summary.TotalValue > 0 {
			buckets[i].Percentage = buckets[i].Value / summary.TotalValue * 100
		}
	}
	summary.Stages = buckets

	return summary
}

// AnalyzeWinRate splits deals into won, lost and active subsets. Rate is
// won/(won+lost) as a percentage and 0 when nothing has closed yet.
func AnalyzeWinRate(deals []domain.Deal) domain.WinRate {
	wr := domain.WinRate{Total: len(deals)}

	for _, deal := range deals {
		switch deal.Stage {
		case domain.StageClosedWon:
			wr.Won++
			wr.WonValue += deal.Value
		case domain.StageClosedLost:
			wr.Lost++
			wr.LostValue += deal.Value
		default:
			wr.ActiveValue += deal.Value
		}
	}

	wr.Active = wr.Total - wr.Won - wr.Lost
	if closed := wr.Won + wr.Lost; closed > 0 {
		wr.Rate = float64(wr.Won) / float64(closed) * 100
	}

	return wr
}

// priorityOrder fixes the render order of priority buckets.
var priorityOrder = []string{
	domain.PriorityHigh,
	domain.PriorityMedium,
	domain.PriorityLow,
	domain.PriorityNotSet,
}

// PriorityBreakdown groups deals by priority, deals without one falling
// into the Not Set bucket. Output follows the fixed High, Medium, Low,
// Not Set precedence; priorities absent from the input are omitted.
func PriorityBreakdown(deals []domain.Deal) []domain.PriorityBucket {
	groups := make(map[string]*domain.PriorityBucket)

	for _, deal := range deals {
		priority := deal.Priority
		if priority == "" {
			priority = domain.PriorityNotSet
		}

		bucket, ok := groups[priority]
		if !ok {
			bucket = &domain.PriorityBucket{Priority: priority}
			groups[priority] = bucket
		}
		bucket.Count++
		bucket.Value += deal.Value
	}

	var out []domain.PriorityBucket
	for _, priority := range priorityOrder {
		if bucket, ok := groups[priority]; ok {
			out = append(out, *bucket)
		}
	}
	return out
}

// DealSize computes mean, median and largest deal over the snapshot.
// Median is the value at the lower-middle index of the ascending sort,
// matching the report output this tool has always produced rather than
// averaging the two middle values on even-length input.
func DealSize(deals []domain.Deal) domain.DealSizeMetrics {
	if len(deals) == 0 {
		return domain.DealSizeMetrics{}
	}

	values := make([]float64, len(deals))
	var total float64
	largest := 0
	for i, deal := range deals {
		values[i] = deal.Value
		total += deal.Value
		if deal.Value > deals[largest].Value {
			largest = i
		}
	}
	sort.Float64s(values)

	max := deals[largest]
	return domain.DealSizeMetrics{
		Average: total / float64(len(deals)),
		Median:  values[len(values)/2],
		Largest: &max,
	}
}
