// Package loader parses campaign records from CSV input. It is a thin
// inbound adapter: malformed lines become warnings, and the resulting
// records are handed to the usecase untouched.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"adroi/internal/core/domain"
)

var requiredHeaders = []string{"channel", "spend", "revenue", "clicks", "conversions", "impressions"}

// ReadRecords parses CSV data with the header
// channel,spend,revenue,clicks,conversions,impressions (case-insensitive,
// any column order). Lines that fail to parse are skipped and reported
// as warnings; a missing required header fails the whole read.
func ReadRecords(r io.Reader) ([]domain.Record, []string, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("unable to read header: %w", err)
	}
	index := mapHeaders(header)
	if missing := missingHeaders(index); len(missing) > 0 {
		return nil, nil, fmt.Errorf("missing required headers: %s", strings.Join(missing, ", "))
	}

	var records []domain.Record
	var warnings []string
	line := 1
	for {
		line++
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		rec, warn := parseRecord(row, index, line)
		if warn != "" {
			warnings = append(warnings, warn)
			continue
		}
		records = append(records, rec)
	}
	return records, warnings, nil
}

// ReadFile loads campaign records from a CSV file on disk.
func ReadFile(path string) ([]domain.Record, []string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("unable to open CSV: %w", err)
	}
	defer file.Close()
	return ReadRecords(file)
}

func mapHeaders(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}
	return index
}

func missingHeaders(index map[string]int) []string {
	var missing []string
	for _, key := range requiredHeaders {
		if _, ok := index[key]; !ok {
			missing = append(missing, key)
		}
	}
	return missing
}

func parseRecord(row []string, index map[string]int, line int) (domain.Record, string) {
	get := func(key string) string {
		pos := index[key]
		if pos >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[pos])
	}

	channel := get("channel")
	if channel == "" {
		return domain.Record{}, fmt.Sprintf("line %d: missing channel", line)
	}

	spend, err := strconv.ParseFloat(get("spend"), 64)
	if err != nil {
		return domain.Record{}, fmt.Sprintf("line %d: invalid spend", line)
	}
	revenue, err := strconv.ParseFloat(get("revenue"), 64)
	if err != nil {
		return domain.Record{}, fmt.Sprintf("line %d: invalid revenue", line)
	}
	clicks, err := strconv.ParseInt(get("clicks"), 10, 64)
	if err != nil {
		return domain.Record{}, fmt.Sprintf("line %d: invalid clicks", line)
	}
	conversions, err := strconv.ParseInt(get("conversions"), 10, 64)
	if err != nil {
		return domain.Record{}, fmt.Sprintf("line %d: invalid conversions", line)
	}
	impressions, err := strconv.ParseInt(get("impressions"), 10, 64)
	if err != nil {
		return domain.Record{}, fmt.Sprintf("line %d: invalid impressions", line)
	}

	return domain.Record{
		Channel:     channel,
		Spend:       spend,
		Revenue:     revenue,
		Clicks:      clicks,
		Conversions: conversions,
		Impressions: impressions,
	}, ""
}
