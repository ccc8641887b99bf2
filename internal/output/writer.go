package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/parquet-go/parquet-go"
)

// Table is an ordered set of columns plus rows, the shape every writer
// consumes. Column order is preserved across all formats.
type Table struct {
	Columns []string
	Rows    [][]any
}

// Write renders tbl to w in the given format.
func Write(w io.Writer, format Format, tbl Table) error {
	switch format {
	case FormatTable:
		RenderTable(w, tbl)
		return nil
	case FormatJSON:
		return writeJSON(w, tbl)
	case FormatJSONL:
		return writeJSONL(w, tbl)
	case FormatCSV:
		return writeCSV(w, tbl)
	case FormatParquet:
		return writeParquet(w, tbl)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteFile renders tbl into a newly created (or truncated) file at path.
func WriteFile(path string, format Format, tbl Table) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := Write(f, format, tbl); err != nil {
		f.Close()
		return fmt.Errorf("writing %s output to %s: %w", format, path, err)
	}
	return f.Close()
}

// RenderTable prints tbl as a rounded-border table with highlighted
// headers.
func RenderTable(w io.Writer, tbl Table) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)

	headers := make(table.Row, len(tbl.Columns))
	for i, col := range tbl.Columns {
		headers[i] = text.FgHiCyan.Sprint(strings.ToUpper(col))
	}
	t.AppendHeader(headers)

	for _, row := range tbl.Rows {
		cells := make(table.Row, len(tbl.Columns))
		for i := range tbl.Columns {
			if i < len(row) {
				cells[i] = cellString(row[i])
			}
		}
		t.AppendRow(cells)
	}
	t.Render()
}

func writeJSON(w io.Writer, tbl Table) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(records(tbl))
}

func writeJSONL(w io.Writer, tbl Table) error {
	enc := json.NewEncoder(w)
	for _, rec := range records(tbl) {
		if err := enc.Encode(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeCSV(w io.Writer, tbl Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tbl.Columns); err != nil {
		return err
	}
	for _, row := range tbl.Rows {
		record := make([]string, len(tbl.Columns))
		for i := range tbl.Columns {
			if i < len(row) {
				record[i] = cellString(row[i])
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// writeParquet writes rows with an all-string schema derived from the
// column set. Typed export belongs to the API client layer; here every
// cell is rendered the same way the other writers render it.
func writeParquet(w io.Writer, tbl Table) error {
	group := parquet.Group{}
	for _, col := range tbl.Columns {
		group[col] = parquet.Optional(parquet.String())
	}
	schema := parquet.NewSchema("records", group)

	pw := parquet.NewGenericWriter[map[string]any](w, schema)
	for _, row := range tbl.Rows {
		rec := make(map[string]any, len(tbl.Columns))
		for i, col := range tbl.Columns {
			if i < len(row) && row[i] != nil {
				rec[col] = cellString(row[i])
			}
		}
		if _, err := pw.Write([]map[string]any{rec}); err != nil {
			return err
		}
	}
	return pw.Close()
}

func records(tbl Table) []map[string]any {
	recs := make([]map[string]any, 0, len(tbl.Rows))
	for _, row := range tbl.Rows {
		rec := make(map[string]any, len(tbl.Columns))
		for i, col := range tbl.Columns {
			if i < len(row) {
				rec[col] = row[i]
			}
		}
		recs = append(recs, rec)
	}
	return recs
}

func cellString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
