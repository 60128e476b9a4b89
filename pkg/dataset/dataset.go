// Package dataset loads tool rating tables from CSV, JSON, or YAML files
// into the records consumed by the scoring engine.
package dataset

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Agyekum1987/ai-logistics-tool-selection-mcda/pkg/scoring"
)

// NameColumn identifies each tool in the input table.
const NameColumn = "tool_name"

// Load reads a rating table, dispatching on the file extension.
func Load(path string) ([]scoring.ToolRecord, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".csv":
		return LoadCSV(path)
	case ".json":
		return LoadJSON(path)
	case ".yaml", ".yml":
		return LoadYAML(path)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .csv, .json, .yaml)", ext)
	}
}

// LoadCSV reads a rating table from a CSV file. The header row names the
// columns; the tool_name column becomes the record name. Cells that parse
// as numbers are stored as float64; anything else keeps its raw string, so
// a bad value only fails later if its criterion carries a weight.
func LoadCSV(path string) ([]scoring.ToolRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%s: missing header row", path)
	}

	header := rows[0]
	nameCol := -1
	for i, h := range header {
		if strings.TrimSpace(h) == NameColumn {
			nameCol = i
			break
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%s: no %q column", path, NameColumn)
	}

	records := make([]scoring.ToolRecord, 0, len(rows)-1)
	for n, row := range rows[1:] {
		rec := scoring.ToolRecord{Ratings: make(map[string]any, len(header)-1)}
		for i, cell := range row {
			cell = strings.TrimSpace(cell)
			if i == nameCol {
				rec.Name = cell
				continue
			}
			if v, err := strconv.ParseFloat(cell, 64); err == nil {
				rec.Ratings[header[i]] = v
			} else {
				rec.Ratings[header[i]] = cell
			}
		}
		if rec.Name == "" {
			return nil, fmt.Errorf("%s: row %d: empty %s", path, n+2, NameColumn)
		}
		records = append(records, rec)
	}
	return records, nil
}

// LoadJSON reads a rating table from a JSON array of flat objects, each
// holding a tool_name key plus criterion keys.
func LoadJSON(path string) ([]scoring.ToolRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	var rows []map[string]any
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fromRows(path, rows)
}

// LoadYAML reads a rating table from a YAML sequence of flat mappings,
// the same shape as the JSON form.
func LoadYAML(path string) ([]scoring.ToolRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset: %w", err)
	}
	var rows []map[string]any
	if err := yaml.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return fromRows(path, rows)
}

func fromRows(path string, rows []map[string]any) ([]scoring.ToolRecord, error) {
	records := make([]scoring.ToolRecord, 0, len(rows))
	for i, row := range rows {
		name, _ := row[NameColumn].(string)
		if name == "" {
			return nil, fmt.Errorf("%s: row %d: missing %s", path, i+1, NameColumn)
		}
		ratings := make(map[string]any, len(row)-1)
		for k, v := range row {
			if k == NameColumn {
				continue
			}
			ratings[k] = v
		}
		records = append(records, scoring.ToolRecord{Name: name, Ratings: ratings})
	}
	return records, nil
}
