// Package csvtable turns CSV data into tableview columns and records.
//
// The first CSV row is interpreted as the header: its cells become the
// column keys and, space-separated, the column titles. Every further
// row becomes a tableview.Record mapping column keys to cell strings.
//
// The character encoding and the field separator can be detected
// automatically from the raw bytes, supporting the encodings and
// separators commonly found in exported spreadsheet data.
package csvtable

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strings"

	"github.com/domonda/go-types/charset"

	"github.com/domonda/go-tableview"
)

// ErrEmptyTable is returned when the CSV data
// contains no header row.
var ErrEmptyTable = errors.New("empty table")

// Format describes how CSV bytes are interpreted.
type Format struct {
	// Encoding is a character encoding name supported by the
	// charset package, like "UTF-8" or "Windows 1252".
	Encoding string
	// Separator is the field delimiter.
	Separator rune
}

// detectionEncodings are tried in order by ParseDetectFormat.
var detectionEncodings = []string{
	"UTF-8",
	"UTF-16LE",
	"ISO 8859-1",
	"Windows 1252",
	"Macintosh",
}

// encodingTests are characters with encoding dependent byte
// representations used to validate encoding detection.
var encodingTests = []string{"ä", "Ä", "ö", "Ö", "ü", "Ü", "ß", "§", "€", "д", "Д", "б", "Б"}

// ParseDetectFormat parses CSV data with automatic detection of the
// character encoding and the field separator, returning the detected
// format together with the columns and records.
//
// Separator detection counts the occurrences of comma, semicolon and
// tab and picks the most frequent one, unless the data starts with an
// explicit "sep=x" header line.
func ParseDetectFormat(data []byte) (columns []tableview.Column, records []tableview.Record, format *Format, err error) {
	var encodings []charset.Encoding
	for _, name := range detectionEncodings {
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return nil, nil, nil, err
		}
		encodings = append(encodings, enc)
	}
	decoded, encodingName, err := charset.AutoDecode(data, encodings, encodingTests)
	if err != nil {
		return nil, nil, nil, err
	}
	if encodingName == "" {
		encodingName = "UTF-8"
	}

	format = &Format{
		Encoding:  encodingName,
		Separator: detectSeparator(decoded),
	}
	columns, records, err = parse(decoded, format.Separator)
	if err != nil {
		return nil, nil, nil, err
	}
	return columns, records, format, nil
}

// ParseWithFormat parses CSV data using an explicitly specified format.
func ParseWithFormat(data []byte, format *Format) (columns []tableview.Column, records []tableview.Record, err error) {
	if format == nil {
		return nil, nil, errors.New("missing csvtable.Format")
	}
	if format.Encoding == "UTF-8" || format.Encoding == "" {
		data = charset.TrimBOM(data, charset.BOMUTF8)
	} else {
		enc, err := charset.GetEncoding(format.Encoding)
		if err != nil {
			return nil, nil, err
		}
		data, err = enc.Decode(data)
		if err != nil {
			return nil, nil, err
		}
	}
	separator := format.Separator
	if separator == 0 {
		separator = ','
	}
	return parse(data, separator)
}

func parse(data []byte, separator rune) (columns []tableview.Column, records []tableview.Record, err error) {
	data = trimSepHeaderLine(data)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = separator
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("parsing CSV: %w", err)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, nil, ErrEmptyTable
	}

	header := rows[0]
	columns = make([]tableview.Column, len(header))
	for i, key := range header {
		key = strings.TrimSpace(key)
		columns[i] = tableview.Column{
			Key:   key,
			Title: tableview.SpacePascalCase(key),
		}
	}

	records = make([]tableview.Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isEmptyRow(row) {
			continue
		}
		record := make(tableview.Record, len(columns))
		for i := range columns {
			if i < len(row) {
				record[columns[i].Key] = row[i]
			}
		}
		records = append(records, record)
	}
	return columns, records, nil
}

// detectSeparator picks the most frequent of comma, semicolon
// and tab, honoring an explicit "sep=x" header line.
// Comma wins on equal counts.
func detectSeparator(data []byte) rune {
	if sep := sepHeaderLineSeparator(data); sep != 0 {
		return sep
	}
	separator := ','
	maxCount := bytes.Count(data, []byte{','})
	if count := bytes.Count(data, []byte{';'}); count > maxCount {
		separator, maxCount = ';', count
	}
	if count := bytes.Count(data, []byte{'\t'}); count > maxCount {
		separator = '\t'
	}
	return separator
}

// sepHeaderLineSeparator returns the separator declared by a
// leading "sep=x" line, or 0 when there is none.
func sepHeaderLineSeparator(data []byte) rune {
	firstLine, _, _ := bytes.Cut(data, []byte{'\n'})
	firstLine = bytes.TrimSuffix(firstLine, []byte{'\r'})
	firstLine = bytes.Trim(firstLine, `"`)
	if len(firstLine) != 5 {
		return 0
	}
	prefix := string(firstLine[:4])
	if !strings.EqualFold(prefix, "sep=") {
		return 0
	}
	return rune(firstLine[4])
}

func trimSepHeaderLine(data []byte) []byte {
	if sepHeaderLineSeparator(data) == 0 {
		return data
	}
	_, rest, _ := bytes.Cut(data, []byte{'\n'})
	return rest
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
