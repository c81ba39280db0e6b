package report

// Frame is an ordered, fully string-rendered table. It is the shape handed to
// the spreadsheet publisher and to summary logging.
type Frame struct {
	Columns []string
	Rows    [][]string
}

// Empty reports whether the frame has no data rows.
func (f Frame) Empty() bool {
	return len(f.Rows) == 0
}

// ColumnIndex returns the position of the named column, or -1.
func (f Frame) ColumnIndex(name string) int {
	for i, c := range f.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Values returns the header row followed by the data rows, the layout the
// sheets API expects.
func (f Frame) Values() [][]interface{} {
	out := make([][]interface{}, 0, len(f.Rows)+1)

	header := make([]interface{}, len(f.Columns))
	for i, c := range f.Columns {
		header[i] = c
	}
	out = append(out, header)

	for _, row := range f.Rows {
		vals := make([]interface{}, len(row))
		for i, v := range row {
			vals[i] = v
		}
		out = append(out, vals)
	}
	return out
}
