package tableview

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
)

// SortDirection specifies the direction of sorting.
type SortDirection int

const (
	// SortAscending sorts in natural order.
	SortAscending SortDirection = iota
	// SortDescending sorts in reversed natural order.
	SortDescending
)

// String returns the string representation of a SortDirection.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Toggled returns the opposite direction.
func (d SortDirection) Toggled() SortDirection {
	if d == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// SortState is the single active sort column and direction of a view.
type SortState struct {
	Key       string
	Direction SortDirection
}

// SortRecords returns a new slice with the records ordered by the
// value under sortState.Key. Numbers compare numerically, all other
// values compare lexicographically by their string form.
//
// The sort is stable, so sorting repeatedly with the same state is
// idempotent and toggling the direction twice reproduces the original
// relative order for distinct keys. The passed slice is not mutated.
func SortRecords(records []Record, sortState SortState) []Record {
	sorted := copyRecords(records)
	slices.SortStableFunc(sorted, func(a, b Record) int {
		result := compareValues(a[sortState.Key], b[sortState.Key])
		if sortState.Direction == SortDescending {
			result = -result
		}
		return result
	})
	return sorted
}

// compareValues is a 3-way comparison using the natural ordering
// of the value types: numeric when both values are numbers,
// lexicographic on the string forms otherwise.
func compareValues(a, b any) int {
	aNum, aOK := numericValue(a)
	bNum, bOK := numericValue(b)
	if aOK && bOK {
		return cmp.Compare(aNum, bNum)
	}
	return strings.Compare(valueString(a), valueString(b))
}

func numericValue(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	}
	return 0, false
}
