// Command tableview presents a CSV file as a searchable,
// sortable, paginated table in the terminal.
//
// Usage:
//
//	tableview [-page-size n] [-title t] file.csv
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	fs "github.com/ungerik/go-fs"

	"github.com/domonda/go-tableview"
	"github.com/domonda/go-tableview/csvtable"
	"github.com/domonda/go-tableview/tui"
)

func main() {
	pageSize := flag.Int("page-size", tableview.DefaultPageSize, "records per page")
	title := flag.String("title", "", "table title, file name by default")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: tableview [-page-size n] [-title t] file.csv")
		os.Exit(2)
	}

	err := run(context.Background(), fs.File(flag.Arg(0)), *pageSize, *title)
	if err != nil {
		fmt.Fprintln(os.Stderr, "tableview:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, file fs.File, pageSize int, title string) error {
	columns, records, _, err := csvtable.ReadFile(ctx, file)
	if err != nil {
		return err
	}
	if title == "" {
		title = file.Name()
	}

	model, err := tui.NewModel(tableview.Options{
		Title:    title,
		Data:     records,
		Columns:  columns,
		PageSize: pageSize,
	})
	if err != nil {
		return err
	}

	_, err = tea.NewProgram(model, tea.WithContext(ctx)).Run()
	return err
}
