package tableview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRenderer records every snapshot it receives.
type captureRenderer struct {
	snapshots []*Snapshot
}

func (r *captureRenderer) RenderTable(snapshot *Snapshot) {
	r.snapshots = append(r.snapshots, snapshot)
}

func (r *captureRenderer) last() *Snapshot {
	return r.snapshots[len(r.snapshots)-1]
}

var testColumns = []Column{
	{Key: "name", Title: "Name"},
	{Key: "group", Title: "Group"},
	{Key: "actions", Title: "Actions", IgnoreFiltering: true},
}

// groupedRecords returns n records where the first matching
// ones carry group "match" and the rest group "other".
func groupedRecords(n, matching int) []Record {
	records := make([]Record, n)
	for i := range records {
		group := "other"
		if i < matching {
			group = "match"
		}
		records[i] = Record{"name": fmt.Sprintf("row%02d", i), "group": group}
	}
	return records
}

func TestNewConfigurationErrors(t *testing.T) {
	_, err := New(Options{Columns: testColumns})
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, err, ErrNoRenderer)

	_, err = New(Options{Renderer: new(captureRenderer)})
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, err, ErrNoColumns)

	_, err = New(Options{
		Renderer:   new(captureRenderer),
		Columns:    testColumns,
		SortColumn: &SortState{Key: "nonexistent"},
	})
	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, err, ErrUnknownSortColumn)
}

func TestNewRendersInitialSnapshot(t *testing.T) {
	renderer := new(captureRenderer)
	table, err := New(Options{
		Title:    "People",
		Data:     groupedRecords(5, 0),
		Columns:  testColumns,
		PageSize: 10,
		Renderer: renderer,
	})
	require.NoError(t, err)
	require.Len(t, renderer.snapshots, 1)

	snapshot := renderer.last()
	assert.Equal(t, "People", snapshot.Title)
	assert.Equal(t, 5, snapshot.TotalItems)
	assert.Equal(t, 1, snapshot.RangeStart)
	assert.Equal(t, 5, snapshot.RangeEnd)
	assert.Equal(t, 1, snapshot.TotalPages)
	assert.Empty(t, snapshot.Tokens, "one page needs no pagination window")
	assert.True(t, snapshot.ShowSearch, "search defaults to shown for non-empty data")
	assert.False(t, snapshot.Empty)
	require.Len(t, snapshot.Headers, 3)
	assert.True(t, snapshot.Headers[0].Sorted, "first column is the default sort column")
	assert.False(t, snapshot.Headers[0].Descending)
	assert.False(t, snapshot.Headers[2].Sortable, "filter-excluded columns are not sortable")
	assert.Same(t, snapshot, table.CurrentSnapshot())
}

func TestEmptyData(t *testing.T) {
	renderer := new(captureRenderer)
	_, err := New(Options{Columns: testColumns, Renderer: renderer})
	require.NoError(t, err)

	snapshot := renderer.last()
	assert.True(t, snapshot.Empty)
	assert.Empty(t, snapshot.Rows)
	assert.Empty(t, snapshot.Tokens)
	assert.Zero(t, snapshot.TotalItems)
	assert.False(t, snapshot.ShowSearch, "search defaults to hidden for empty data")
	assert.Equal(t, "no entries", snapshot.RangeCaption())
}

func TestSearchPagination(t *testing.T) {
	// 25 records, pageSize 10, a term matching exactly 12
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:     groupedRecords(25, 12),
		Columns:  testColumns,
		PageSize: 10,
		Renderer: renderer,
	})
	require.NoError(t, err)

	table.Search("match")
	snapshot := renderer.last()
	assert.Equal(t, 12, snapshot.TotalItems)
	assert.Equal(t, 2, snapshot.TotalPages)
	assert.Len(t, snapshot.Rows, 10)
	assert.Equal(t, 1, snapshot.RangeStart)
	assert.Equal(t, 10, snapshot.RangeEnd)
	assert.Equal(t, "1 to 10 of 12", snapshot.RangeCaption())

	table.SetPage(2)
	snapshot = renderer.last()
	assert.Len(t, snapshot.Rows, 2)
	assert.Equal(t, 11, snapshot.RangeStart)
	assert.Equal(t, 12, snapshot.RangeEnd)
	assert.Equal(t, "match", snapshot.SearchTerm)

	// searching again resets to page 1
	table.Search("match")
	assert.Equal(t, 1, table.CurrentPage())
}

func TestSearchEmptyResult(t *testing.T) {
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:     groupedRecords(5, 0),
		Columns:  testColumns,
		PageSize: 10,
		Renderer: renderer,
	})
	require.NoError(t, err)

	table.Search("no such record")
	snapshot := renderer.last()
	assert.True(t, snapshot.Empty, "zero filtered rows must render as the empty state")
	assert.Empty(t, snapshot.Rows)
	assert.Empty(t, snapshot.Tokens)

	table.Search("")
	assert.False(t, renderer.last().Empty, "clearing the term restores all records")
	assert.Equal(t, 5, renderer.last().TotalItems)
}

func TestSortByTogglesAndResets(t *testing.T) {
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:     groupedRecords(25, 25),
		Columns:  testColumns,
		PageSize: 10,
		Renderer: renderer,
	})
	require.NoError(t, err)
	table.SetPage(3)

	table.SortBy("group")
	assert.Equal(t, SortState{Key: "group", Direction: SortAscending}, table.SortState(),
		"a new column sorts ascending")
	assert.Equal(t, 1, table.CurrentPage(), "sorting resets to page 1")

	table.SortBy("group")
	assert.Equal(t, SortDescending, table.SortState().Direction, "same column toggles direction")
	table.SortBy("group")
	assert.Equal(t, SortAscending, table.SortState().Direction)

	header := renderer.last().Headers[1]
	assert.True(t, header.Sorted)
	assert.False(t, header.Descending)
}

func TestSortByIgnoredOrUnknownColumn(t *testing.T) {
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:     groupedRecords(5, 0),
		Columns:  testColumns,
		Renderer: renderer,
	})
	require.NoError(t, err)
	rendered := len(renderer.snapshots)
	state := table.SortState()

	table.SortBy("actions")
	table.SortBy("bogus")

	assert.Equal(t, state, table.SortState())
	assert.Len(t, renderer.snapshots, rendered, "ignored sort requests must not re-render")
}

func TestSortOrderSurvivesSearch(t *testing.T) {
	renderer := new(captureRenderer)
	data := []Record{
		{"name": "delta", "group": "match"},
		{"name": "alpha", "group": "match"},
		{"name": "charlie", "group": "other"},
		{"name": "bravo", "group": "match"},
	}
	table, err := New(Options{
		Data:       data,
		Columns:    testColumns,
		SortColumn: &SortState{Key: "group"},
		Renderer:   renderer,
	})
	require.NoError(t, err)

	table.SortBy("name")
	table.Search("match")
	snapshot := renderer.last()
	require.Len(t, snapshot.Rows, 3)
	assert.Equal(t, "alpha", snapshot.Rows[0][0])
	assert.Equal(t, "bravo", snapshot.Rows[1][0])
	assert.Equal(t, "delta", snapshot.Rows[2][0],
		"filtering derives from the sorted source records")
}

func TestReplaceDataResetsEverything(t *testing.T) {
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:     groupedRecords(5, 5),
		Columns:  testColumns,
		PageSize: 2,
		Renderer: renderer,
	})
	require.NoError(t, err)

	table.Search("match")
	table.SortBy("group")
	table.SetPage(2)

	table.ReplaceData(groupedRecords(30, 0))
	snapshot := renderer.last()
	assert.Equal(t, "", table.SearchTerm())
	assert.Equal(t, SortState{Key: "name", Direction: SortAscending}, table.SortState())
	assert.Equal(t, 1, table.CurrentPage())
	assert.Equal(t, 30, snapshot.TotalItems)
	assert.Equal(t, 15, snapshot.TotalPages)
}

func TestOutOfRangePage(t *testing.T) {
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:     groupedRecords(5, 0),
		Columns:  testColumns,
		PageSize: 2,
		Renderer: renderer,
	})
	require.NoError(t, err)

	table.SetPage(99)
	snapshot := renderer.last()
	assert.Empty(t, snapshot.Rows, "out of range pages yield an empty slice, not an error")
	assert.Zero(t, snapshot.RangeStart)
	assert.Zero(t, snapshot.RangeEnd)
	assert.False(t, snapshot.Empty, "out of range is not the empty result state")
	assert.Equal(t, 99, snapshot.CurrentPage)
}

func TestOnRenderComplete(t *testing.T) {
	var calls int
	renderer := new(captureRenderer)
	table, err := New(Options{
		Data:             groupedRecords(3, 0),
		Columns:          testColumns,
		Renderer:         renderer,
		OnRenderComplete: func() { calls++ },
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls, "construction renders once")

	table.Search("row")
	table.SetPage(1)
	table.ReplaceData(nil)
	assert.Equal(t, 4, calls)
}

func TestCellRenderer(t *testing.T) {
	renderer := new(captureRenderer)
	columns := []Column{
		{Key: "name", Title: "Name"},
		{
			Key:   "age",
			Title: "Age",
			CellRenderer: func(record Record) string {
				return fmt.Sprintf("%v years", record["age"])
			},
		},
	}
	_, err := New(Options{
		Data:     []Record{{"name": "Alice", "age": 30}},
		Columns:  columns,
		Renderer: renderer,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "30 years"}, renderer.last().Rows[0])
}

func TestTableDoesNotMutateCallerData(t *testing.T) {
	data := []Record{
		{"name": "c"},
		{"name": "a"},
		{"name": "b"},
	}
	renderer := new(captureRenderer)
	table, err := New(Options{Data: data, Columns: testColumns, Renderer: renderer})
	require.NoError(t, err)
	table.SortBy("name")
	table.SortBy("name")

	assert.Equal(t, []string{"c", "a", "b"}, names(data),
		"the caller owned slice must never be reordered")
}
