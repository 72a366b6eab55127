package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// outputMode controls how tables are rendered.
type outputMode int

const (
	modeASCII    outputMode = iota // fixed-width terminal tables
	modeMarkdown                   // GitHub-flavoured Markdown tables
)

// tableBuilder wraps a go-pretty writer so callers only deal in rows.
type tableBuilder struct {
	writer table.Writer
	mode   outputMode
}

func newTable(m outputMode) *tableBuilder {
	w := table.NewWriter()
	if m == modeASCII {
		w.SetStyle(table.StyleLight)
	}
	return &tableBuilder{writer: w, mode: m}
}

func (t *tableBuilder) header(cols ...any) {
	t.writer.AppendHeader(table.Row(cols))
}

func (t *tableBuilder) row(vals ...any) {
	t.writer.AppendRow(table.Row(vals))
}

// alignRight right-aligns the given 1-based columns.
func (t *tableBuilder) alignRight(cols ...int) {
	cfgs := make([]table.ColumnConfig, 0, len(cols))
	for _, n := range cols {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	t.writer.SetColumnConfigs(cfgs)
}

func (t *tableBuilder) String() string {
	if t.mode == modeMarkdown {
		return t.writer.RenderMarkdown()
	}
	return t.writer.Render()
}

// shiftTable renders Caesar candidates, one row per shift.
func shiftTable(cands []shiftCandidate, m outputMode) string {
	t := newTable(m)
	t.header("Shift", "Score", "Plaintext")
	t.alignRight(1, 2)
	for _, c := range cands {
		t.row(c.shift, c.score, c.plaintext)
	}
	return t.String()
}

// mappingTable renders a substitution key as 26 cipher -> plain rows.
func mappingTable(k keyMap, m outputMode) string {
	t := newTable(m)
	t.header("Cipher", "Plain")
	for c, p := range k {
		t.row(string(rune('a'+c)), string(rune('a'+p)))
	}
	return t.String()
}
