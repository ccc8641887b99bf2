package output

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an output format token.
type Format string

const (
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatJSONL   Format = "jsonl"
	FormatCSV     Format = "csv"
	FormatParquet Format = "parquet"
)

var extensionFormats = map[string]Format{
	".csv":     FormatCSV,
	".json":    FormatJSON,
	".jsonl":   FormatJSONL,
	".parquet": FormatParquet,
	".pq":      FormatParquet,
}

// UnsupportedOutputExtensionError indicates an --output value that names
// neither a known format nor a recognized file extension.
type UnsupportedOutputExtensionError struct {
	Option string
}

func (e *UnsupportedOutputExtensionError) Error() string {
	return fmt.Sprintf("invalid output option %q: must be a format (%s) or a file path ending in %s",
		e.Option, "table, json, csv, parquet", strings.Join(knownExtensions(), ", "))
}

// Parse classifies a single --output string into a format and an optional
// file path. An empty option returns an empty format; the caller
// substitutes the profile's configured default. A bare format token selects
// console output in that format; anything else is treated as a file path
// whose extension determines the format. Parse never touches disk.
func Parse(option string) (Format, string, error) {
	if option == "" {
		return "", "", nil
	}

	switch Format(option) {
	case FormatTable, FormatJSON, FormatCSV, FormatParquet:
		return Format(option), "", nil
	}

	ext := strings.ToLower(filepath.Ext(option))
	format, ok := extensionFormats[ext]
	if !ok {
		return "", "", &UnsupportedOutputExtensionError{Option: option}
	}
	return format, option, nil
}

func knownExtensions() []string {
	return []string{".csv", ".json", ".jsonl", ".parquet", ".pq"}
}
