// Package output classifies the --output option shared by all commands and
// renders tabular results as table, json, jsonl, csv, or parquet, to the
// console or to a file.
package output
