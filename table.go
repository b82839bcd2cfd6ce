package tableview

import "fmt"

// DefaultPageSize is used when Options.PageSize is zero.
const DefaultPageSize = 20

// Options configures a Table.
type Options struct {
	// Title is an optional display title passed through to snapshots.
	Title string

	// Data are the initial records. The slice is copied,
	// the Table never mutates or reorders a caller owned slice.
	Data []Record

	// Columns is the required, non-empty column schema.
	Columns []Column

	// PageSize is the fixed number of records per page,
	// DefaultPageSize when zero.
	PageSize int

	// ShowSearch controls whether snapshots request a search
	// affordance. When nil it defaults to true if Data is non-empty.
	ShowSearch *bool

	// SortColumn is the initial sort state,
	// first column ascending when nil.
	SortColumn *SortState

	// Renderer receives the snapshot of every state transition.
	// Required.
	Renderer Renderer

	// OnRenderComplete is called with no arguments after every
	// snapshot has been handed to the Renderer, so a caller can
	// re-bind interaction handlers on freshly produced output.
	OnRenderComplete func()
}

// Table owns the canonical view state of one tabular view:
// source records, search term, sort state and current page.
// Every operation recomputes the derived state and pushes a
// Snapshot to the configured Renderer.
//
// A Table is not safe for concurrent use. Operations run to
// completion in the order they are called.
type Table struct {
	title            string
	columns          []Column
	pageSize         int
	showSearch       bool
	renderer         Renderer
	onRenderComplete func()
	initialSort      SortState

	// sourceData is sorted per sortState, filteredData derives
	// from it so filtering always inherits the sort order.
	sourceData   []Record
	filteredData []Record
	searchTerm   string
	sortState    SortState
	currentPage  int

	lastSnapshot *Snapshot
}

// New creates a Table from the passed Options, applies the initial
// sort and renders the first snapshot.
//
// It returns an error wrapping ErrConfiguration when no Renderer is
// supplied, Columns is empty, or the initial sort key does not
// reference a configured column. No partial Table is created.
func New(opts Options) (*Table, error) {
	if opts.Renderer == nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNoRenderer)
	}
	if len(opts.Columns) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, ErrNoColumns)
	}
	sortState := SortState{Key: opts.Columns[0].Key, Direction: SortAscending}
	if opts.SortColumn != nil {
		sortState = *opts.SortColumn
	}
	if columnByKey(opts.Columns, sortState.Key) == nil {
		return nil, fmt.Errorf("%w: %w %q", ErrConfiguration, ErrUnknownSortColumn, sortState.Key)
	}
	pageSize := opts.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	showSearch := len(opts.Data) > 0
	if opts.ShowSearch != nil {
		showSearch = *opts.ShowSearch
	}
	t := &Table{
		title:            opts.Title,
		columns:          opts.Columns,
		pageSize:         pageSize,
		showSearch:       showSearch,
		renderer:         opts.Renderer,
		onRenderComplete: opts.OnRenderComplete,
		initialSort:      sortState,
	}
	t.reset(opts.Data)
	t.render()
	return t, nil
}

// reset replaces the source records and re-initializes
// the derived state like New does.
func (t *Table) reset(data []Record) {
	t.searchTerm = ""
	t.sortState = t.initialSort
	t.currentPage = 1
	t.sourceData = SortRecords(data, t.sortState)
	t.filteredData = t.sourceData
}

// Search recomputes the filtered records for the passed term
// and resets to the first page. The sort order of the source
// records is inherited, no re-sort happens.
func (t *Table) Search(term string) {
	t.searchTerm = term
	t.filteredData = FilterRecords(t.sourceData, term, t.columns)
	t.currentPage = 1
	t.render()
}

// SortBy sorts by the column with the passed key.
// Requesting the active sort column toggles its direction,
// a different column becomes the sort key in ascending direction.
// Either way the view resets to the first page.
//
// Keys of unknown or filter-excluded columns are ignored,
// such headers carry no sort affordance.
func (t *Table) SortBy(key string) {
	column := columnByKey(t.columns, key)
	if column == nil || !column.Sortable() {
		return
	}
	if t.sortState.Key == key {
		t.sortState.Direction = t.sortState.Direction.Toggled()
	} else {
		t.sortState = SortState{Key: key, Direction: SortAscending}
	}
	t.sourceData = SortRecords(t.sourceData, t.sortState)
	t.filteredData = FilterRecords(t.sourceData, t.searchTerm, t.columns)
	t.currentPage = 1
	t.render()
}

// SetPage changes the current page without touching filter or sort.
// An out of range page is not an error, it renders an empty page.
func (t *Table) SetPage(page int) {
	t.currentPage = page
	t.render()
}

// ReplaceData swaps in a new set of source records and fully
// resets search term, sort state and page like New does.
// It enables dynamic dataset swaps, e.g. after an async fetch
// completed elsewhere.
func (t *Table) ReplaceData(records []Record) {
	t.reset(records)
	t.render()
}

// SearchTerm returns the current search term.
func (t *Table) SearchTerm() string { return t.searchTerm }

// SortState returns the active sort column and direction.
func (t *Table) SortState() SortState { return t.sortState }

// CurrentPage returns the current 1-based page number.
func (t *Table) CurrentPage() int { return t.currentPage }

// Columns returns the configured column schema.
func (t *Table) Columns() []Column { return t.columns }

// CurrentSnapshot returns the snapshot of the last state transition.
func (t *Table) CurrentSnapshot() *Snapshot { return t.lastSnapshot }

func (t *Table) render() {
	t.lastSnapshot = t.snapshot()
	t.renderer.RenderTable(t.lastSnapshot)
	if t.onRenderComplete != nil {
		t.onRenderComplete()
	}
}

func (t *Table) snapshot() *Snapshot {
	pageRecords := Page(t.filteredData, t.currentPage, t.pageSize)

	headers := make([]Header, len(t.columns))
	for i := range t.columns {
		column := &t.columns[i]
		headers[i] = Header{
			Key:        column.Key,
			Title:      column.Title,
			Sortable:   column.Sortable(),
			Sorted:     column.Key == t.sortState.Key,
			Descending: column.Key == t.sortState.Key && t.sortState.Direction == SortDescending,
		}
	}

	rows := make([][]string, len(pageRecords))
	for i, record := range pageRecords {
		cells := make([]string, len(t.columns))
		for col := range t.columns {
			cells[col] = t.columns[col].CellValue(record)
		}
		rows[i] = cells
	}

	rangeStart, rangeEnd := 0, 0
	if len(pageRecords) > 0 {
		rangeStart = t.pageSize*(t.currentPage-1) + 1
		rangeEnd = rangeStart + len(pageRecords) - 1
	}

	totalPages := TotalPages(len(t.filteredData), t.pageSize)
	prev, next := PrevNext(t.currentPage, totalPages)

	return &Snapshot{
		Title:       t.title,
		Headers:     headers,
		Rows:        rows,
		Empty:       len(t.filteredData) == 0,
		TotalItems:  len(t.filteredData),
		RangeStart:  rangeStart,
		RangeEnd:    rangeEnd,
		CurrentPage: t.currentPage,
		TotalPages:  totalPages,
		Tokens:      PageWindow(t.currentPage, totalPages, DefaultWindowRadius),
		Prev:        prev,
		Next:        next,
		ShowSearch:  t.showSearch,
		SearchTerm:  t.searchTerm,
	}
}
