package tableview

import "strings"

// FilterRecords returns the records where at least one column
// not excluded by IgnoreFiltering contains searchTerm as a
// case insensitive substring of the stringified record value.
//
// An empty searchTerm (after trimming) returns records unchanged.
// The relative order of surviving records is preserved and the
// passed slice is never mutated.
func FilterRecords(records []Record, searchTerm string, columns []Column) []Record {
	searchTerm = strings.ToLower(strings.TrimSpace(searchTerm))
	if searchTerm == "" {
		return records
	}
	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if recordMatches(record, searchTerm, columns) {
			filtered = append(filtered, record)
		}
	}
	return filtered
}

func recordMatches(record Record, lowerTerm string, columns []Column) bool {
	for i := range columns {
		if columns[i].IgnoreFiltering {
			continue
		}
		value := valueString(record[columns[i].Key])
		if value == "" {
			continue
		}
		if strings.Contains(strings.ToLower(value), lowerTerm) {
			return true
		}
	}
	return false
}
