// Package tableview derives searchable, sortable, paginated views
// from in-memory tabular data.
//
// The package is built around the Table type which owns the canonical
// view state (source records, search term, sort state, current page)
// and recomputes a render-ready Snapshot on every state transition.
// Rendering itself is out of scope: a Snapshot is handed to a Renderer
// implementation which turns it into presentation primitives
// (HTML, a terminal UI, ...).
//
// All derivation steps are exposed as pure functions
// (FilterRecords, SortRecords, Page, PageWindow) so they can be
// used and tested independently of the stateful Table.
package tableview

// Renderer consumes the render-ready result of a Table state transition.
//
// Implementations must not retain or mutate the Snapshot's slices.
// RenderTable is called synchronously from the Table operation that
// triggered the transition.
type Renderer interface {
	RenderTable(snapshot *Snapshot)
}

// RendererFunc implements Renderer for a function.
type RendererFunc func(snapshot *Snapshot)

func (f RendererFunc) RenderTable(snapshot *Snapshot) { f(snapshot) }
