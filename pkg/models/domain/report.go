package domain

import "time"

// Report represents a complete pipeline analysis report
type Report struct {
	Title       string
	GeneratedAt time.Time
	Sections    []ReportSection
	TotalValue  float64
	Currency    string
}

// ReportSection represents a logical section in the report
type ReportSection struct {
	Title   string
	Summary map[string]interface{}
	Details []ReportDetail
}

// ReportDetail represents detailed information within a section
type ReportDetail struct {
	Name        string
	Value       interface{}
	Unit        string
	Description string
}
