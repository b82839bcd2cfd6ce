// Package htmltable renders tableview snapshots as HTML.
//
// It implements the render adapter side of the tableview contract:
// a Writer turns every Snapshot into a search form, a table with
// sortable column headers, an item-count caption and a pagination
// control list. Interaction is left to the embedding page, the
// emitted buttons carry data-sort-key and data-page attributes
// for handlers to pick up after every render.
//
// All cell values are HTML-escaped by default. Columns whose
// CellRenderer produces trusted HTML can be marked raw with
// WithRawColumn.
package htmltable

import (
	"html/template"
	"io"

	"github.com/domonda/go-tableview"
)

// Writer writes tableview snapshots as HTML table elements.
//
// Writer is immutable after creation, all With* methods return
// a new Writer instance with the modified configuration.
type Writer struct {
	tableClass        string
	emptyText         string
	rawColumns        map[int]bool
	searchTemplate    *template.Template
	tableHeadTemplate *template.Template
	rowTemplate       *template.Template
	tableFootTemplate *template.Template
	emptyTemplate     *template.Template
	footerTemplate    *template.Template
}

// NewWriter creates a Writer with the default templates,
// no table class and "No matching entries" as empty state text.
func NewWriter() *Writer {
	return &Writer{
		emptyText:         "No matching entries",
		searchTemplate:    SearchTemplate,
		tableHeadTemplate: TableHeadTemplate,
		rowTemplate:       RowTemplate,
		tableFootTemplate: TableFootTemplate,
		emptyTemplate:     EmptyTemplate,
		footerTemplate:    FooterTemplate,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

// WithTableClass returns a new writer using the passed
// CSS class for the table element.
func (w *Writer) WithTableClass(tableClass string) *Writer {
	mod := w.clone()
	mod.tableClass = tableClass
	return mod
}

// WithEmptyText returns a new writer using the passed text
// for the empty state placeholder.
func (w *Writer) WithEmptyText(emptyText string) *Writer {
	mod := w.clone()
	mod.emptyText = emptyText
	return mod
}

// WithRawColumn returns a new writer that inserts the cell values
// of the column with the passed index as raw HTML without escaping.
// Only use for columns whose CellRenderer produces trusted HTML.
func (w *Writer) WithRawColumn(columnIndex int) *Writer {
	mod := w.clone()
	mod.rawColumns = make(map[int]bool, len(w.rawColumns)+1)
	for i := range w.rawColumns {
		mod.rawColumns[i] = true
	}
	mod.rawColumns[columnIndex] = true
	return mod
}

// WriteSnapshot writes the snapshot as HTML to dest.
// An empty snapshot renders the placeholder instead of a table.
func (w *Writer) WriteSnapshot(dest io.Writer, snapshot *tableview.Snapshot) error {
	templData := &TemplateContext{
		TableClass: w.tableClass,
		EmptyText:  w.emptyText,
		Snapshot:   snapshot,
	}

	err := w.searchTemplate.Execute(dest, templData)
	if err != nil {
		return err
	}

	if snapshot.Empty {
		err = w.emptyTemplate.Execute(dest, templData)
		if err != nil {
			return err
		}
		return w.footerTemplate.Execute(dest, templData)
	}

	err = w.tableHeadTemplate.Execute(dest, templData)
	if err != nil {
		return err
	}

	rowData := &RowTemplateContext{
		TemplateContext: *templData,
		Cells:           make([]template.HTML, len(snapshot.Headers)),
	}
	for _, row := range snapshot.Rows {
		for col, cell := range row {
			if w.rawColumns[col] {
				rowData.Cells[col] = template.HTML(cell) //#nosec G203
			} else {
				rowData.Cells[col] = template.HTML(template.HTMLEscapeString(cell)) //#nosec G203
			}
		}
		err = w.rowTemplate.Execute(dest, rowData)
		if err != nil {
			return err
		}
		rowData.RowIndex++
	}

	err = w.tableFootTemplate.Execute(dest, templData)
	if err != nil {
		return err
	}
	return w.footerTemplate.Execute(dest, templData)
}

// Renderer returns a tableview.Renderer that writes every
// received snapshot to dest.
func (w *Writer) Renderer(dest io.Writer) *Renderer {
	return &Renderer{writer: w, dest: dest}
}

// Renderer implements tableview.Renderer by writing
// snapshots through a Writer.
type Renderer struct {
	writer *Writer
	dest   io.Writer
	err    error
}

// RenderTable implements the tableview.Renderer interface.
// Write errors are retained and returned by Err.
func (r *Renderer) RenderTable(snapshot *tableview.Snapshot) {
	r.err = r.writer.WriteSnapshot(r.dest, snapshot)
}

// Err returns the error of the last render, or nil.
func (r *Renderer) Err() error { return r.err }
