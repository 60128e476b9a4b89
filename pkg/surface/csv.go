package surface

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// CSVRenderer writes the evaluated table back out in its original tabular
// shape with business_score and rank columns appended, ordered by rank.
type CSVRenderer struct{}

func (r *CSVRenderer) Render(w io.Writer, rep *Report) error {
	// Union of rating keys across records so ragged inputs still line up.
	keySet := make(map[string]bool)
	for _, t := range rep.Tools {
		for k := range t.Ratings {
			keySet[k] = true
		}
	}
	keys := make([]string, 0, len(keySet))
	for k := range keySet {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	cw := csv.NewWriter(w)

	header := append([]string{"tool_name"}, keys...)
	header = append(header, "business_score", "rank")
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, t := range rep.Tools {
		row := make([]string, 0, len(header))
		row = append(row, t.Name)
		for _, k := range keys {
			row = append(row, cellString(t.Ratings[k]))
		}
		row = append(row,
			strconv.FormatFloat(t.BusinessScore, 'f', 2, 64),
			strconv.Itoa(t.Rank))
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprint(c)
	}
}
