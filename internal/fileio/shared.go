package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadRows picks a reader by file extension and returns positional rows,
// header row included. Delimited text is charset-detected and transcoded to
// UTF-8 first.
func ReadRows(r io.Reader, filename string) ([][]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".tsv", ".txt":
		return readDelimited(r, '\t')
	case ".csv":
		return readDelimited(r, ',')
	case ".xlsx":
		return readXLSX(r)
	case ".xls":
		return readXLS(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// IsDelimited reports whether the upload can be streamed line-by-line instead
// of being materialized as rows.
func IsDelimited(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".tsv", ".txt":
		return true
	}
	return false
}

// normalizeCell trims the exotic whitespace spreadsheet exports leave in
// cells (NBSP, thin space, narrow NBSP).
func normalizeCell(s string) string {
	s = strings.NewReplacer("\u00A0", " ", "\u2009", " ", "\u202F", " ").Replace(s)
	return strings.TrimSpace(s)
}
