package table_test

import (
	"testing"

	"github.com/fwojciec/markright/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("header separator and body", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|a|b", "|:--|--:", "|1|2"})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, tbl.Header)
		assert.Equal(t, []table.Alignment{table.AlignLeft, table.AlignRight}, tbl.Aligns)
		require.Len(t, tbl.Rows, 1)
		assert.Equal(t, []string{"1", "2"}, tbl.Rows[0])
	})

	t.Run("fewer than two rows fails", func(t *testing.T) {
		t.Parallel()
		_, err := table.Parse([]string{"|a|b"})
		assert.ErrorIs(t, err, table.ErrTooFewRows)
	})

	t.Run("separator cell count mismatch fails", func(t *testing.T) {
		t.Parallel()
		_, err := table.Parse([]string{"|a|b", "|:--", "|1|2"})
		assert.ErrorIs(t, err, table.ErrColumnMismatch)
	})

	t.Run("body cell count mismatch fails", func(t *testing.T) {
		t.Parallel()
		_, err := table.Parse([]string{"|a|b", "|--|--", "|1|2|3"})
		assert.ErrorIs(t, err, table.ErrColumnMismatch)
	})

	t.Run("all four alignments", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|a|b|c|d", "|:--|--:|:-:|---"})
		require.NoError(t, err)
		assert.Equal(t, []table.Alignment{
			table.AlignLeft, table.AlignRight, table.AlignCenter, table.AlignDefault,
		}, tbl.Aligns)
	})

	t.Run("trailing id cell on the header names the table", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|a|b|{prices}", "|--|--", "|1|2"})
		require.NoError(t, err)
		assert.Equal(t, "prices", tbl.ID)
		assert.Equal(t, []string{"a", "b"}, tbl.Header)
	})

	t.Run("row order is preserved", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|h", "|--", "|first", "|second", "|third"})
		require.NoError(t, err)
		require.Len(t, tbl.Rows, 3)
		assert.Equal(t, "first", tbl.Rows[0][0])
		assert.Equal(t, "third", tbl.Rows[2][0])
	})
}

func TestHTML(t *testing.T) {
	t.Parallel()

	t.Run("emits aligned header and body sections", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|a|b", "|:--|--:", "|1|2"})
		require.NoError(t, err)
		got := tbl.HTML(identity)
		assert.Contains(t, got, `<th style="text-align:left">a</th>`)
		assert.Contains(t, got, `<th style="text-align:right">b</th>`)
		assert.Contains(t, got, `<td style="text-align:left">1</td>`)
		assert.Contains(t, got, `<td style="text-align:right">2</td>`)
		assert.Contains(t, got, "<thead>")
		assert.Contains(t, got, "<tbody>")
	})

	t.Run("id lands on the table element", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|a|{t1}", "|--"})
		require.NoError(t, err)
		assert.Contains(t, tbl.HTML(identity), `<table id="t1">`)
	})

	t.Run("cells pass through the render callback", func(t *testing.T) {
		t.Parallel()
		tbl, err := table.Parse([]string{"|a", "|--", "|b"})
		require.NoError(t, err)
		got := tbl.HTML(func(s string) string { return "[" + s + "]" })
		assert.Contains(t, got, "<th>[a]</th>")
		assert.Contains(t, got, "<td>[b]</td>")
	})
}
