package styles

import (
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/mosaic/internal/domain/entity"
)

// columnSpec is a column with a minimum width. Columns with grow > 0 share
// whatever the minimums leave over, in proportion to grow.
type columnSpec struct {
	title string
	min   int
	grow  int
	cell  func(entity.Company) string
}

var companyColumns = []columnSpec{
	{title: "Ticker", min: 7, cell: func(c entity.Company) string { return c.Ticker }},
	{title: "Name", min: 16, grow: 3, cell: func(c entity.Company) string { return c.Name }},
	{title: "Exchange", min: 9, cell: func(c entity.Company) string { return c.StockExchange }},
	{title: "Sector", min: 12, grow: 2, cell: func(c entity.Company) string { return c.Sector }},
	{title: "Employees", min: 10, cell: func(c entity.Company) string { return shortCount(c.Employees) }},
}

// NewStyledTable builds a focused table coloured from theme.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	st := table.DefaultStyles()
	st.Header = st.Header.
		Foreground(theme.Accent).
		Bold(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(theme.Border)
	st.Cell = st.Cell.Foreground(theme.Text)
	st.Selected = st.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithWidth(width),
		table.WithHeight(height),
		table.WithFocused(true),
		table.WithStyles(st),
	)
}

// CompanyTableColumns lays the catalog columns out across width.
func CompanyTableColumns(width int) []table.Column {
	// Each cell carries one column of padding on both sides.
	spare := width - 2*len(companyColumns)
	totalGrow := 0
	for _, col := range companyColumns {
		spare -= col.min
		totalGrow += col.grow
	}
	spare = max(spare, 0)

	columns := make([]table.Column, len(companyColumns))
	given := 0
	for i, col := range companyColumns {
		w := col.min
		if col.grow > 0 {
			extra := spare * col.grow / totalGrow
			given += extra
			w += extra
		}
		columns[i] = table.Column{Title: col.title, Width: w}
	}
	// Rounding leftovers go to the first growing column.
	for i, col := range companyColumns {
		if col.grow > 0 {
			columns[i].Width += spare - given
			break
		}
	}
	return columns
}

// CompanyRow renders c in the order of CompanyTableColumns.
func CompanyRow(c entity.Company) table.Row {
	row := make(table.Row, len(companyColumns))
	for i, col := range companyColumns {
		row[i] = col.cell(c)
	}
	return row
}

// shortCount abbreviates head counts: 950, 1.2K, 164K, 1.5M. Zero is unknown.
func shortCount(n int) string {
	if n <= 0 {
		return "-"
	}
	for _, unit := range []struct {
		size   int
		suffix string
	}{{1_000_000, "M"}, {1_000, "K"}} {
		if n < unit.size {
			continue
		}
		tenths := n * 10 / unit.size
		s := strconv.Itoa(tenths / 10)
		if tenths < 100 && tenths%10 != 0 {
			s += "." + strconv.Itoa(tenths%10)
		}
		return s + unit.suffix
	}
	return strconv.Itoa(n)
}
