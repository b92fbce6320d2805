package domain

// StageBucket aggregates deals sharing a pipeline stage.
type StageBucket struct {
	Stage      string
	Count      int
	Value      float64
	Percentage float64
}

// PipelineSummary is the grouped-by-stage view of the pipeline, ordered by
// descending bucket value, with grand totals.
type PipelineSummary struct {
	Stages     []StageBucket
	TotalCount int
	TotalValue float64
}

// WinRate splits deals into won/lost/active subsets with their summed
// values. Rate is won/(won+lost) as a percentage, 0 when nothing closed.
type WinRate struct {
	Total       int
	Won         int
	Lost        int
	Active      int
	Rate        float64
	WonValue    float64
	LostValue   float64
	ActiveValue float64
}

// PriorityBucket aggregates deals sharing a priority.
type PriorityBucket struct {
	Priority string
	Count    int
	Value    float64
}

// DealSizeMetrics summarizes deal value distribution. Largest is nil when
// the input is empty.
type DealSizeMetrics struct {
	Average float64
	Median  float64
	Largest *Deal
}

// Forecast is the stage-probability-weighted revenue projection over deals
// still open in the pipeline.
type Forecast struct {
	ActivePipeline   float64
	WeightedForecast float64
}

// Engagement measures how many contacts are attached to at least one deal.
type Engagement struct {
	TotalContacts int
	Engaged       int
	Rate          float64
	TopCompanies  []CompanyCount
}

// CompanyCount is a company with its contact headcount.
type CompanyCount struct {
	Company string
	Count   int
}
