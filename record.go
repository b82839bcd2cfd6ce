package tableview

import "fmt"

// Record is one row of domain data keyed by column keys.
// Identity is positional, no unique key is required.
// Values can be of any type, missing keys are treated
// as empty values for filtering and rendering.
type Record map[string]any

// valueString converts a record value to its display string.
// Nil and missing values yield the empty string.
func valueString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// copyRecords returns a new slice with the same records.
// The engine never mutates or sorts a caller owned slice.
func copyRecords(records []Record) []Record {
	if records == nil {
		return nil
	}
	copied := make([]Record, len(records))
	copy(copied, records)
	return copied
}
