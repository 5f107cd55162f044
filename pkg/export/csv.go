package export

import (
	"fmt"
	"strconv"
	"strings"
)

// exportCSV renders the table as comma-separated text. A cell is wrapped in
// double quotes only when it contains a comma or a double quote, with
// internal quotes doubled. An empty row set still yields the header row.
func exportCSV(opts Options) (*Artifact, error) {
	lines := make([]string, 0, len(opts.Rows)+1)
	lines = append(lines, strings.Join(opts.Columns, ","))

	for _, row := range opts.Rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = escapeCell(stringifyCell(cell))
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return &Artifact{
		Filename: opts.Filename + ".csv",
		MIME:     "text/csv; charset=utf-8",
		Data:     []byte(strings.Join(lines, "\n")),
	}, nil
}

func stringifyCell(cell interface{}) string {
	switch v := cell.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case bool:
		return strconv.FormatBool(v)
	}
	return fmt.Sprintf("%v", cell)
}

func escapeCell(val string) string {
	if strings.ContainsAny(val, ",\"") {
		return "\"" + strings.ReplaceAll(val, "\"", "\"\"") + "\""
	}
	return val
}
