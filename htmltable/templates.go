package htmltable

import (
	"html/template"

	"github.com/domonda/go-tableview"
)

var (
	SearchTemplate = template.Must(template.New("search").Parse(
		"{{if .Snapshot.ShowSearch}}" +
			"<form class='tableview-search' method='get'>" +
			"<input type='search' name='search' value='{{.Snapshot.SearchTerm}}' placeholder='Search'>" +
			"</form>\n" +
			"{{end}}",
	))

	TableHeadTemplate = template.Must(template.New("tablehead").Parse(
		"<table{{if .TableClass}} class='{{.TableClass}}'{{end}}>\n" +
			"{{if .Snapshot.Title}}  <caption>{{.Snapshot.Title}}</caption>\n{{end}}" +
			"  <tr>{{range $h := .Snapshot.Headers}}" +
			"<th{{if $h.Sorted}} aria-sort='{{if $h.Descending}}descending{{else}}ascending{{end}}'{{end}}>" +
			"{{if $h.Sortable}}" +
			"<button data-sort-key='{{$h.Key}}'>{{$h.Title}}{{if $h.Sorted}}{{if $h.Descending}} &#9660;{{else}} &#9650;{{end}}{{end}}</button>" +
			"{{else}}{{$h.Title}}{{end}}" +
			"</th>{{end}}</tr>\n",
	))

	RowTemplate = template.Must(template.New("row").Parse(
		"  <tr>{{range $cell := .Cells}}<td>{{$cell}}</td>{{end}}</tr>\n",
	))

	TableFootTemplate = template.Must(template.New("tablefoot").Parse(
		"</table>\n",
	))

	EmptyTemplate = template.Must(template.New("empty").Parse(
		"<p class='tableview-empty'>{{.EmptyText}}</p>\n",
	))

	FooterTemplate = template.Must(template.New("footer").Parse(
		"<p class='tableview-caption'>{{.Snapshot.RangeCaption}}</p>\n" +
			"{{if .Snapshot.Tokens}}" +
			"<nav class='tableview-pagination'>" +
			"<button data-page='{{.Snapshot.Prev.Page}}'{{if .Snapshot.Prev.Disabled}} disabled{{end}}>&laquo;</button>" +
			"{{range $t := .Snapshot.Tokens}}" +
			"{{if $t.Ellipsis}}<span>&hellip;</span>" +
			"{{else if eq $t.Page $.Snapshot.CurrentPage}}<button data-page='{{$t.Page}}' aria-current='page'>{{$t.Page}}</button>" +
			"{{else}}<button data-page='{{$t.Page}}'>{{$t.Page}}</button>{{end}}" +
			"{{end}}" +
			"<button data-page='{{.Snapshot.Next.Page}}'{{if .Snapshot.Next.Disabled}} disabled{{end}}>&raquo;</button>" +
			"</nav>\n" +
			"{{end}}",
	))
)

// TemplateContext is the data passed to all snapshot templates.
type TemplateContext struct {
	TableClass string
	EmptyText  string
	Snapshot   *tableview.Snapshot
}

// RowTemplateContext is the data passed to the row template.
type RowTemplateContext struct {
	TemplateContext

	RowIndex int
	Cells    []template.HTML
}
