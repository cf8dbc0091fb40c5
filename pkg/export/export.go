package export

// Dataset defines tabular export content with positional rows.
type Dataset struct {
	Title   string
	Columns []string
	Rows    [][]string
}

// AddRow appends a row, padding or truncating it to the column count.
func (d *Dataset) AddRow(values ...string) {
	row := make([]string, len(d.Columns))
	for i := range row {
		if i < len(values) {
			row[i] = values[i]
		}
	}
	d.Rows = append(d.Rows, row)
}
