package tableview

// Page returns the records of the 1-based page for the passed page size.
//
// Indices beyond the data length yield fewer or zero records.
// An out of range page is not an error and is deliberately not
// clamped, it degrades to an empty page slice.
func Page(records []Record, page, pageSize int) []Record {
	if page < 1 || pageSize < 1 {
		return nil
	}
	start := pageSize * (page - 1)
	if start >= len(records) {
		return nil
	}
	end := min(start+pageSize, len(records))
	return records[start:end]
}

// TotalPages returns the number of pages needed for numRecords
// records at the passed page size, 0 when there are no records.
func TotalPages(numRecords, pageSize int) int {
	if numRecords <= 0 || pageSize < 1 {
		return 0
	}
	return (numRecords + pageSize - 1) / pageSize
}
