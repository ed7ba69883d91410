// Package table parses the raw pipe-delimited rows buffered by an open
// table block into a validated table structure. Parsing happens once, when
// the block closes; a failure is a signal for the caller to demote the rows
// to a plain paragraph, never a rendering error.
package table

import (
	"errors"
	"regexp"
	"strings"
)

// Sentinel errors for the failure modes that demote a table to a paragraph.
var (
	// ErrTooFewRows indicates fewer than the required header and
	// separator rows.
	ErrTooFewRows = errors.New("table: need header and separator rows")

	// ErrColumnMismatch indicates a separator or body row whose cell
	// count differs from the header's.
	ErrColumnMismatch = errors.New("table: column count mismatch")
)

// Alignment is a per-column text alignment selected by the separator row.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Table is a validated pipe table: one header row, per-column alignments,
// and zero or more body rows, all in encounter order.
type Table struct {
	ID     string
	Header []string
	Aligns []Alignment
	Rows   [][]string
}

var idCellRe = regexp.MustCompile(`^\{([^{}]+)\}$`)

// Parse validates raw rows (each still pipe-prefixed) into a Table. The
// first row is the header, the second the alignment separator. An optional
// trailing {id} cell on the header is stripped and becomes the table's
// element id. Cell counts of the separator and every body row must match
// the header's.
func Parse(rows []string) (*Table, error) {
	if len(rows) < 2 {
		return nil, ErrTooFewRows
	}
	t := &Table{Header: splitCells(rows[0])}
	if n := len(t.Header); n > 0 {
		if m := idCellRe.FindStringSubmatch(strings.TrimSpace(t.Header[n-1])); m != nil {
			t.ID = m[1]
			t.Header = t.Header[:n-1]
		}
	}
	seps := splitCells(rows[1])
	if len(seps) != len(t.Header) {
		return nil, ErrColumnMismatch
	}
	t.Aligns = make([]Alignment, len(seps))
	for i, c := range seps {
		t.Aligns[i] = parseAlign(strings.TrimSpace(c))
	}
	for _, r := range rows[2:] {
		cells := splitCells(r)
		if len(cells) != len(t.Header) {
			return nil, ErrColumnMismatch
		}
		t.Rows = append(t.Rows, cells)
	}
	return t, nil
}

// HTML renders the table as markup, one tag per line. render is applied to
// each trimmed cell; pass an identity function for raw cells.
func (t *Table) HTML(render func(string) string) string {
	var b strings.Builder
	if t.ID != "" {
		b.WriteString(`<table id="` + t.ID + `">` + "\n")
	} else {
		b.WriteString("<table>\n")
	}
	b.WriteString("<thead>\n<tr>\n")
	for i, cell := range t.Header {
		b.WriteString("<th" + styleAttr(t.Aligns[i]) + ">" + render(strings.TrimSpace(cell)) + "</th>\n")
	}
	b.WriteString("</tr>\n</thead>\n<tbody>\n")
	for _, row := range t.Rows {
		b.WriteString("<tr>\n")
		for i, cell := range row {
			b.WriteString("<td" + styleAttr(t.Aligns[i]) + ">" + render(strings.TrimSpace(cell)) + "</td>\n")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")
	return b.String()
}

func splitCells(row string) []string {
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")
	return strings.Split(row, "|")
}

// parseAlign reads a separator cell: a leading colon selects left, a
// trailing colon right, both center, neither the column default.
func parseAlign(cell string) Alignment {
	left := strings.HasPrefix(cell, ":")
	right := strings.HasSuffix(cell, ":") && len(cell) > 1
	switch {
	case left && right:
		return AlignCenter
	case left:
		return AlignLeft
	case right:
		return AlignRight
	}
	return AlignDefault
}

func styleAttr(a Alignment) string {
	switch a {
	case AlignLeft:
		return ` style="text-align:left"`
	case AlignRight:
		return ` style="text-align:right"`
	case AlignCenter:
		return ` style="text-align:center"`
	}
	return ""
}
