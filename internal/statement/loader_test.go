package statement

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadTableCSV(t *testing.T) {
	csv := "Item,Amount\nCash,1200\nReceivables,80\n"
	table, err := LoadTable("balance.csv", strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, table.Columns, 2)
	assert.Equal(t, "Item", table.Columns[0].Name)
	assert.False(t, table.Columns[0].Numeric)
	assert.Equal(t, "Amount", table.Columns[1].Name)
	assert.True(t, table.Columns[1].Numeric)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Cash", "1200"}, table.Rows[0])
}

func TestLoadTableCSVHeaderOnly(t *testing.T) {
	table, err := LoadTable("empty.csv", strings.NewReader("Item,Amount\n"))
	require.NoError(t, err)
	assert.True(t, table.Empty())
	require.Len(t, table.Columns, 2)
}

func TestLoadTableCSVRowWiderThanHeader(t *testing.T) {
	csv := "Item,Amount\nCash,1200,carried over\n"
	table, err := LoadTable("wide.csv", strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, table.Columns, 3)
	assert.Equal(t, "Column3", table.Columns[2].Name)
	assert.Equal(t, []string{"Cash", "1200", "carried over"}, table.Rows[0])
	assert.Contains(t, table.Text(), "carried over")
}

func TestLoadTableCSVRaggedRows(t *testing.T) {
	csv := "Item,Amount,Note\nCash,1200\nDebt,300,long term\n"
	table, err := LoadTable("ragged.csv", strings.NewReader(csv))
	require.NoError(t, err)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, []string{"Cash", "1200", ""}, table.Rows[0])
	assert.Equal(t, []string{"Debt", "300", "long term"}, table.Rows[1])
}

func TestLoadTableXLSX(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"Item", "Amount"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"Cash", 1200}))
	require.NoError(t, f.SetSheetRow(sheet, "A3", &[]any{"Receivables", 80}))

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	table, err := LoadTable("balance.xlsx", bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)

	require.Len(t, table.Columns, 2)
	assert.True(t, table.Columns[1].Numeric)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "Cash", table.Rows[0][0])
	assert.Equal(t, "1200", table.Rows[0][1])
}

func TestLoadTableUnsupportedFormat(t *testing.T) {
	_, err := LoadTable("report.pdf", strings.NewReader("%PDF-1.4"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file format")
}

func TestLoadTableCorruptXLSX(t *testing.T) {
	_, err := LoadTable("broken.xlsx", strings.NewReader("this is not a zip archive"))
	require.Error(t, err)
}

func TestNumericDetection(t *testing.T) {
	table := newTable(
		[]string{"Label", "Mixed", "Clean", "Sparse", "Blank"},
		[][]string{
			{"a", "1", "1.5", "2", ""},
			{"b", "x", "-3", "", ""},
		},
	)

	assert.False(t, table.Columns[0].Numeric)
	assert.False(t, table.Columns[1].Numeric, "non-numeric cell disqualifies the column")
	assert.True(t, table.Columns[2].Numeric)
	assert.True(t, table.Columns[3].Numeric, "empty cells do not disqualify")
	assert.False(t, table.Columns[4].Numeric, "a column with no values is not numeric")
}
