// Package importer reads contact and deal batches from header-driven CSV
// files for bulk submission, and writes the sample files used to try the
// import flow out.
package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/thierryteisseire/0crm-skill/pkg/models/domain"
)

// RowError records a CSV row that was skipped instead of imported.
type RowError struct {
	Row    int
	Reason string
}

// ReadContacts parses contacts from a CSV stream with a header row. Rows
// missing the required name column are skipped and reported, not fatal.
func ReadContacts(r io.Reader, logger *zerolog.Logger) ([]domain.Contact, []RowError, error) {
	rows, header, err := readRows(r)
	if err != nil {
		return nil, nil, err
	}

	var contacts []domain.Contact
	var skipped []RowError

	for i, row := range rows {
		rowNum := i + 2 // header is row 1
		get := fieldGetter(header, row)

		name := strings.TrimSpace(get("name"))
		if name == "" {
			skipped = append(skipped, RowError{Row: rowNum, Reason: "missing required field 'name'"})
			logger.Warn().Int("row", rowNum).Msg("skipping contact row: missing name")
			continue
		}

		contacts = append(contacts, domain.Contact{
			Name:     name,
			Email:    strings.TrimSpace(get("email")),
			Phone:    strings.TrimSpace(get("phone")),
			Company:  strings.TrimSpace(get("company")),
			Role:     strings.TrimSpace(get("role")),
			Location: strings.TrimSpace(get("location")),
			Notes:    strings.TrimSpace(get("notes")),
		})
	}

	return contacts, skipped, nil
}

// ReadDeals parses deals from a CSV stream with a header row. Rows missing
// title or stage, or carrying an unparseable value, are skipped and
// reported.
func ReadDeals(r io.Reader, logger *zerolog.Logger) ([]domain.Deal, []RowError, error) {
	rows, header, err := readRows(r)
	if err != nil {
		return nil, nil, err
	}

	var deals []domain.Deal
	var skipped []RowError

	for i, row := range rows {
		rowNum := i + 2
		get := fieldGetter(header, row)

		title := strings.TrimSpace(get("title"))
		if title == "" {
			skipped = append(skipped, RowError{Row: rowNum, Reason: "missing required field 'title'"})
			logger.Warn().Int("row", rowNum).Msg("skipping deal row: missing title")
			continue
		}

		stage := strings.TrimSpace(get("stage"))
		if stage == "" {
			skipped = append(skipped, RowError{Row: rowNum, Reason: "missing required field 'stage'"})
			logger.Warn().Int("row", rowNum).Msg("skipping deal row: missing stage")
			continue
		}

		var value float64
		if raw := strings.TrimSpace(get("value")); raw != "" {
			value, err = strconv.ParseFloat(raw, 64)
			if err != nil {
				skipped = append(skipped, RowError{Row: rowNum, Reason: fmt.Sprintf("invalid value %q", raw)})
				logger.Warn().Int("row", rowNum).Str("value", raw).Msg("skipping deal row: invalid value")
				continue
			}
		}

		deals = append(deals, domain.Deal{
			Title:    title,
			Stage:    stage,
			Value:    value,
			Priority: strings.TrimSpace(get("priority")),
			Notes:    strings.TrimSpace(get("notes")),
		})
	}

	return deals, skipped, nil
}

func readRows(r io.Reader) ([][]string, map[string]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("csv file is empty")
	}

	header := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		header[strings.ToLower(strings.TrimSpace(name))] = i
	}

	return records[1:], header, nil
}

func fieldGetter(header map[string]int, row []string) func(string) string {
	return func(name string) string {
		i, ok := header[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}
}

// WriteSampleContactsCSV writes the sample contact dataset to path.
func WriteSampleContactsCSV(path string) error {
	rows := [][]string{
		{"name", "email", "phone", "company", "role", "location", "notes"},
		{"John Smith", "john.smith@techcorp.com", "+1-555-0101", "TechCorp", "CEO", "New York, NY", "Interested in enterprise plan"},
		{"Sarah Johnson", "sarah@startup.io", "+1-555-0102", "Startup Inc", "CTO", "San Francisco, CA", "Met at conference"},
		{"Michael Chen", "mchen@innovate.com", "+1-555-0103", "Innovate LLC", "VP Sales", "Austin, TX", "Referral from John"},
	}
	return writeCSV(path, rows)
}

// WriteSampleDealsCSV writes the sample deal dataset to path.
func WriteSampleDealsCSV(path string) error {
	rows := [][]string{
		{"title", "value", "stage", "priority", "notes"},
		{"Enterprise Contract - TechCorp", "50000", "Proposal Sent", "High", "Annual subscription"},
		{"Startup Package - Startup Inc", "10000", "Qualified", "Medium", "Monthly plan"},
		{"Growth Plan - Innovate LLC", "25000", "Negotiation", "High", "Quarterly contract"},
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
