package csvtable

import (
	"context"
	"fmt"

	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-tableview"
)

// ReadFile reads a CSV file and parses it with automatic
// format detection, see ParseDetectFormat.
func ReadFile(ctx context.Context, file fs.FileReader) (columns []tableview.Column, records []tableview.Record, format *Format, err error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading CSV file %s: %w", file.Name(), err)
	}
	return ParseDetectFormat(data)
}

// ReadFileWithFormat reads a CSV file and parses it
// with an explicitly specified format.
func ReadFileWithFormat(ctx context.Context, file fs.FileReader, format *Format) (columns []tableview.Column, records []tableview.Record, err error) {
	data, err := file.ReadAllContext(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("reading CSV file %s: %w", file.Name(), err)
	}
	return ParseWithFormat(data, format)
}
