// Package tui is an interactive terminal render adapter for tableview.
//
// It wraps a tableview.Table in a bubbletea model: typing in the search
// box filters, number keys sort by column, arrow keys page. The model
// renders the latest snapshot with lipgloss.
package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/domonda/go-tableview"
)

// styles
var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	headerStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("8"))
	activePageStyle = lipgloss.NewStyle().Bold(true).Reverse(true)
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	emptyStyle      = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("9"))
)

// snapshotHolder captures the latest snapshot pushed by the Table.
type snapshotHolder struct {
	snapshot *tableview.Snapshot
}

func (h *snapshotHolder) RenderTable(snapshot *tableview.Snapshot) {
	h.snapshot = snapshot
}

// Model is a bubbletea model presenting one tableview.Table.
type Model struct {
	table  *tableview.Table
	holder *snapshotHolder

	search    textinput.Model
	searching bool

	width  int
	height int
}

// NewModel creates a Model for the passed table options.
// Options.Renderer is set by the model and must be nil.
func NewModel(opts tableview.Options) (Model, error) {
	holder := new(snapshotHolder)
	opts.Renderer = holder
	table, err := tableview.New(opts)
	if err != nil {
		return Model{}, err
	}

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search"
	search.CharLimit = 64

	return Model{table: table, holder: holder, search: search}, nil
}

// Table returns the wrapped tableview.Table.
func (m Model) Table() *tableview.Table { return m.table }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		return m.updateTable(msg)
	}
	return m, nil
}

func (m Model) updateTable(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snapshot := m.holder.snapshot
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		if snapshot.ShowSearch {
			m.searching = true
			m.search.Focus()
			return m, textinput.Blink
		}
	case "left", "h":
		if !snapshot.Prev.Disabled {
			m.table.SetPage(snapshot.Prev.Page)
		}
	case "right", "l":
		if !snapshot.Next.Disabled {
			m.table.SetPage(snapshot.Next.Page)
		}
	case "g", "home":
		m.table.SetPage(1)
	case "G", "end":
		if snapshot.TotalPages > 0 {
			m.table.SetPage(snapshot.TotalPages)
		}
	default:
		if key := m.sortKeyForDigit(msg.String()); key != "" {
			m.table.SortBy(key)
		}
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	case "esc":
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.table.Search("")
		return m, nil
	}
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.table.Search(m.search.Value())
	return m, cmd
}

// sortKeyForDigit maps "1".."9" to the key of the
// corresponding sortable column, or "".
func (m Model) sortKeyForDigit(key string) string {
	if len(key) != 1 || key[0] < '1' || key[0] > '9' {
		return ""
	}
	columns := m.table.Columns()
	index := int(key[0] - '1')
	if index >= len(columns) || !columns[index].Sortable() {
		return ""
	}
	return columns[index].Key
}

func (m Model) View() string {
	snapshot := m.holder.snapshot
	var b strings.Builder

	if snapshot.Title != "" {
		b.WriteString(titleStyle.Render(snapshot.Title))
		b.WriteByte('\n')
	}
	if snapshot.ShowSearch {
		b.WriteString(m.search.View())
		b.WriteByte('\n')
	}

	if snapshot.Empty {
		b.WriteString(emptyStyle.Render("no matching entries"))
		b.WriteByte('\n')
	} else {
		widths := columnWidths(snapshot)
		b.WriteString(headerStyle.Render(headerLine(snapshot, widths)))
		b.WriteByte('\n')
		for _, row := range snapshot.Rows {
			b.WriteString(rowLine(row, widths))
			b.WriteByte('\n')
		}
	}

	b.WriteString(dimStyle.Render(snapshot.RangeCaption()))
	b.WriteByte('\n')
	if pagination := paginationLine(snapshot); pagination != "" {
		b.WriteString(pagination)
		b.WriteByte('\n')
	}
	b.WriteString(dimStyle.Render("/ search · 1-9 sort · ←/→ page · q quit"))
	return b.String()
}

// columnWidths returns the display width of every column as the
// maximum rune width of its header and visible cells.
func columnWidths(snapshot *tableview.Snapshot) []int {
	widths := make([]int, len(snapshot.Headers))
	for i, header := range snapshot.Headers {
		widths[i] = runewidth.StringWidth(headerTitle(header))
	}
	for _, row := range snapshot.Rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// headerTitle returns the header text with its sort indicator.
func headerTitle(header tableview.Header) string {
	if !header.Sorted {
		return header.Title
	}
	if header.Descending {
		return header.Title + " ↓"
	}
	return header.Title + " ↑"
}

func headerLine(snapshot *tableview.Snapshot, widths []int) string {
	cells := make([]string, len(snapshot.Headers))
	for i, header := range snapshot.Headers {
		cells[i] = runewidth.FillRight(headerTitle(header), widths[i])
	}
	return strings.Join(cells, "  ")
}

func rowLine(row []string, widths []int) string {
	cells := make([]string, len(row))
	for i, cell := range row {
		cells[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.Join(cells, "  ")
}

// paginationLine renders the pagination window of the snapshot,
// like "« 1 … 4 [5] 6 … 10 »", or "" with one page or less.
func paginationLine(snapshot *tableview.Snapshot) string {
	if len(snapshot.Tokens) == 0 {
		return ""
	}
	parts := make([]string, 0, len(snapshot.Tokens)+2)
	if snapshot.Prev.Disabled {
		parts = append(parts, dimStyle.Render("«"))
	} else {
		parts = append(parts, "«")
	}
	for _, token := range snapshot.Tokens {
		switch {
		case token.Ellipsis:
			parts = append(parts, dimStyle.Render("…"))
		case token.Page == snapshot.CurrentPage:
			parts = append(parts, activePageStyle.Render(strconv.Itoa(token.Page)))
		default:
			parts = append(parts, strconv.Itoa(token.Page))
		}
	}
	if snapshot.Next.Disabled {
		parts = append(parts, dimStyle.Render("»"))
	} else {
		parts = append(parts, "»")
	}
	return strings.Join(parts, " ")
}
