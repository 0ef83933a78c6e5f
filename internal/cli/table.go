package cli

import (
	"io"

	gotable "github.com/jedib0t/go-pretty/table"
	"github.com/jedib0t/go-pretty/text"
)

// Table collect rows and render them as a light box table
type Table interface {
	SetHeader(v ...interface{}) Table
	AddRow(v ...interface{}) Table
	Render() string
}

type table struct {
	tw gotable.Writer
}

// NewTable render to w when w is not nil, Render always return the text
func NewTable(w io.Writer) Table {
	tw := gotable.NewWriter()
	style := gotable.StyleLight
	style.Format.Header = text.FormatDefault
	tw.SetStyle(style)
	if w != nil {
		tw.SetOutputMirror(w)
	}
	return &table{tw: tw}
}

func (t *table) SetHeader(v ...interface{}) Table {
	t.tw.AppendHeader(gotable.Row(v))
	return t
}

func (t *table) AddRow(cells ...interface{}) Table {
	t.tw.AppendRow(gotable.Row(cells))
	return t
}

func (t *table) Render() string {
	return t.tw.Render()
}
