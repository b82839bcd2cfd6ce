package tableview

import (
	"strings"
	"unicode"
)

// Column describes how one record field is labeled, searched,
// sort-enabled and rendered.
type Column struct {
	// Key identifies the record field.
	Key string

	// Title is the display text for the column header.
	Title string

	// IgnoreFiltering excludes the column from search matching
	// and disables sorting by this column.
	IgnoreFiltering bool

	// CellRenderer overrides the default value extraction
	// for display. It has no effect on filtering or sorting,
	// which always use the raw record value.
	CellRenderer func(record Record) string
}

// CellValue returns the display string for the column's
// cell of the passed record.
func (c *Column) CellValue(record Record) string {
	if c.CellRenderer != nil {
		return c.CellRenderer(record)
	}
	return valueString(record[c.Key])
}

// Sortable returns true if the column can be used as sort key.
func (c *Column) Sortable() bool {
	return !c.IgnoreFiltering
}

// columnByKey returns the column with the passed key or nil.
func columnByKey(columns []Column, key string) *Column {
	for i := range columns {
		if columns[i].Key == key {
			return &columns[i]
		}
	}
	return nil
}

// SpacePascalCase inserts spaces before upper case characters
// within PascalCase like keys and replaces underscores with spaces.
// Usable as default column title for keys without a configured title.
func SpacePascalCase(key string) string {
	var b strings.Builder
	b.Grow(len(key) + 4)
	lastWasUpper := true
	lastWasSpace := true
	for _, r := range key {
		if r == '_' {
			if !lastWasSpace {
				b.WriteByte(' ')
			}
			lastWasUpper = false
			lastWasSpace = true
			continue
		}
		isUpper := unicode.IsUpper(r)
		if isUpper && !lastWasUpper && !lastWasSpace {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
		lastWasUpper = isUpper
		lastWasSpace = unicode.IsSpace(r)
	}
	return strings.TrimSpace(b.String())
}
