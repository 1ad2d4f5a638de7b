package table

// Row is one record addressed by header name. Rows are immutable once built.
type Row struct {
	headers []string
	values  []string
}

// NewRow builds a row. Values beyond the header count are kept for output but
// cannot be addressed by name; missing trailing values read as absent.
func NewRow(headers, values []string) Row {
	return Row{
		headers: append([]string(nil), headers...),
		values:  append([]string(nil), values...),
	}
}

// Headers returns a copy of the header names.
func (r Row) Headers() []string {
	return append([]string(nil), r.headers...)
}

// Values returns a copy of the field values in column order.
func (r Row) Values() []string {
	return append([]string(nil), r.values...)
}

// Field returns the value of the first column named name. It reports false
// when no such header exists or the record is too short to hold it.
func (r Row) Field(name string) (string, bool) {
	for i, header := range r.headers {
		if header != name {
			continue
		}
		if i >= len(r.values) {
			return "", false
		}
		return r.values[i], true
	}
	return "", false
}

// Prepend returns a new row with one extra leading column.
func (r Row) Prepend(header, value string) Row {
	headers := make([]string, 0, len(r.headers)+1)
	headers = append(headers, header)
	headers = append(headers, r.headers...)
	values := make([]string, 0, len(r.values)+1)
	values = append(values, value)
	values = append(values, r.values...)
	return Row{headers: headers, values: values}
}
