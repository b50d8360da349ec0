// Package ingest turns uploaded ledger files into daily revenue rollups.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

var (
	ErrNotText   = errors.New("file content is not valid text")
	ErrNoData    = errors.New("no data found")
	ErrBadFormat = errors.New("could not parse file")
)

// mediaTypes accepted for ledger uploads. Browsers are inconsistent about
// spreadsheet MIME types, so the filename extension is an equal fallback.
var mediaTypes = map[string]string{
	"text/csv":                 "csv",
	"application/vnd.ms-excel": "xlsx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": "xlsx",
}

// DetectKind resolves the stored file kind from the declared media type,
// falling back to the filename extension. ok is false when neither matches
// a supported spreadsheet type.
func DetectKind(declaredType, filename string) (string, bool) {
	if kind, found := mediaTypes[strings.ToLower(strings.TrimSpace(declaredType))]; found {
		// The stored kind still follows the extension when one is present:
		// a .csv uploaded as vnd.ms-excel is a CSV.
		if byExt, extOK := kindFromExtension(filename); extOK {
			return byExt, true
		}
		return kind, true
	}
	return kindFromExtension(filename)
}

func kindFromExtension(filename string) (string, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return "csv", true
	case ".xls", ".xlsx":
		return "xlsx", true
	}
	return "", false
}

// Parse reads delimited text into loosely typed rows. The first non-blank
// line is the header; blank lines are skipped; numeric-looking cells become
// numbers and empty cells become nulls. Rows shorter than the header simply
// omit the trailing columns.
func Parse(text string) ([]Row, error) {
	if !utf8.ValidString(text) {
		return nil, ErrNotText
	}

	reader := csv.NewReader(strings.NewReader(text))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := readHeader(reader)
	if err != nil {
		return nil, err
	}

	var rows []Row
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		if isBlank(record) {
			continue
		}

		row := make(Row, len(header))
		for i, name := range header {
			if i >= len(record) {
				break
			}
			row[name] = typeCell(record[i])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func readHeader(reader *csv.Reader) ([]string, error) {
	for {
		record, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrBadFormat, err)
		}
		if isBlank(record) {
			continue
		}

		header := make([]string, len(record))
		for i, name := range record {
			header[i] = strings.TrimSpace(name)
		}
		return header, nil
	}
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}

// typeCell applies best-effort dynamic typing to a raw cell.
func typeCell(raw string) Value {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nullValue
	}
	if num, err := decimal.NewFromString(trimmed); err == nil {
		return NumberValue(num)
	}
	return StringValue(trimmed)
}
