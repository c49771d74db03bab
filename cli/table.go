package cli

import (
	"io"
	"os"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// Table render rows in box style
type Table interface {
	SetHeader(v ...interface{}) Table
	AddRow(v ...interface{}) Table
	SetOutput(w io.Writer) Table
	Render() string
}

type table struct {
	tw   gotable.Writer
	rows []gotable.Row
}

// NewTable write to stdout
func NewTable() Table {
	t := &table{
		tw: gotable.NewWriter(),
	}
	style := gotable.StyleLight
	style.Format.Header = text.FormatDefault
	t.tw.SetStyle(style)
	t.tw.SetOutputMirror(os.Stdout)
	return t
}

func (t *table) SetOutput(w io.Writer) Table {
	t.tw.SetOutputMirror(w)
	return t
}

func (t *table) SetHeader(v ...interface{}) Table {
	t.tw.AppendHeader(gotable.Row(v))
	return t
}

func (t *table) AddRow(cells ...interface{}) Table {
	t.rows = append(t.rows, gotable.Row(cells))
	return t
}

// Render to output and return rendered text
func (t *table) Render() string {
	t.tw.AppendRows(t.rows)
	t.rows = nil
	return t.tw.Render()
}
